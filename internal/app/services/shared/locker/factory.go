package locker

import (
	"fmt"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/constvars"
	"os"

	"go.uber.org/zap"
)

// NewLockerService returns the lock implementation for driver. redisRepo is only used by
// the redis driver and lockDir only by the file driver.
func NewLockerService(driver string, redisRepo contracts.RedisRepository, lockDir string, logger *zap.Logger) (contracts.LockerService, error) {
	switch driver {
	case constvars.LockerDriverLocal:
		return NewLocalLockService(logger), nil
	case constvars.LockerDriverFile:
		if err := os.MkdirAll(lockDir, 0o755); err != nil {
			return nil, fmt.Errorf("locker driver %s cannot use directory %s: %w", driver, lockDir, err)
		}
		return NewFileLockService(lockDir, logger), nil
	case constvars.LockerDriverRedis:
		if redisRepo == nil {
			return nil, fmt.Errorf("locker driver %s requires a redis connection", driver)
		}
		return NewLockService(redisRepo, logger), nil
	default:
		return nil, fmt.Errorf("unknown locker driver %q", driver)
	}
}
