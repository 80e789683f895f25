package locker

import (
	"context"
	"fmt"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type localLock struct {
	value     string
	expiresAt time.Time
}

// localLockService mirrors the Redis lock semantics inside a single process.
type localLockService struct {
	mu    sync.Mutex
	locks map[string]localLock
	now   func() time.Time
	Log   *zap.Logger
}

func NewLocalLockService(logger *zap.Logger) contracts.LockerService {
	return &localLockService{
		locks: make(map[string]localLock),
		now:   time.Now,
		Log:   logger,
	}
}

func (s *localLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if err := ctx.Err(); err != nil {
		return false, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if held, ok := s.locks[key]; ok && now.Before(held.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = localLock{value: lockValue, expiresAt: now.Add(expiration)}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("localLockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

func (s *localLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.locks[key]
	if !ok {
		return nil
	}
	if held.value != lockValue {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock %s not owned by this client", key))
	}
	delete(s.locks, key)
	return nil
}
