package locker

import (
	"context"
	"fmt"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var lockKeyReplacer = strings.NewReplacer(":", "_", "/", "_", "\\", "_")

type fileLock struct {
	key   string
	flock *flock.Flock
}

// fileLockService holds an OS advisory lock on <dir>/<key>.lock, so separate processes
// on one host exclude each other. The lock lasts until Unlock or process exit; expiration is ignored.
type fileLockService struct {
	dir  string
	mu   sync.Mutex
	held map[string]fileLock
	Log  *zap.Logger
}

func NewFileLockService(dir string, logger *zap.Logger) contracts.LockerService {
	return &fileLockService{
		dir:  dir,
		held: make(map[string]fileLock),
		Log:  logger,
	}
}

func (s *fileLockService) lockPath(key string) string {
	return filepath.Join(s.dir, lockKeyReplacer.Replace(key)+constvars.LockFileExtension)
}

func (s *fileLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if err := ctx.Err(); err != nil {
		return false, "", err
	}

	path := s.lockPath(key)
	// A fresh Flock per attempt opens its own descriptor, so attempts inside
	// this process contend with each other as well as with other processes.
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return false, "", exceptions.ErrFileLock(err, path)
	}
	if !locked {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.mu.Lock()
	s.held[lockValue] = fileLock{key: key, flock: lock}
	s.mu.Unlock()

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("fileLockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
		zap.String(constvars.LoggingLedgerPathKey, path),
	)
	return true, lockValue, nil
}

func (s *fileLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	held, ok := s.held[lockValue]
	if ok && held.key == key {
		delete(s.held, lockValue)
	}
	s.mu.Unlock()

	if !ok || held.key != key {
		return exceptions.ErrFileUnlock(fmt.Errorf("lock %s not owned by this client", key), s.lockPath(key))
	}
	if err := held.flock.Unlock(); err != nil {
		return exceptions.ErrFileUnlock(err, held.flock.Path())
	}
	return nil
}
