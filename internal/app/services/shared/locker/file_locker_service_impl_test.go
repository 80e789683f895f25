package locker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileLockService(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	first := NewFileLockService(dir, zap.NewNop())
	second := NewFileLockService(dir, zap.NewNop())

	acquired, owner, err := first.TryLock(ctx, "opd:ledger:lock", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.NotEmpty(t, owner)

	_, err = os.Stat(filepath.Join(dir, "opd_ledger_lock.lock"))
	require.NoError(t, err, "lock file is created next to the ledger")

	acquired, _, err = second.TryLock(ctx, "opd:ledger:lock", time.Second)
	require.NoError(t, err)
	assert.False(t, acquired, "another holder must be excluded while the file is locked")

	acquired, _, err = first.TryLock(ctx, "opd:ledger:lock", time.Second)
	require.NoError(t, err)
	assert.False(t, acquired, "the same service must not reacquire a held lock")

	acquired, otherOwner, err := second.TryLock(ctx, "opd:snapshot:leader", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "locks are independent per key")
	require.NoError(t, second.Unlock(ctx, "opd:snapshot:leader", otherOwner))

	assert.Error(t, second.Unlock(ctx, "opd:ledger:lock", owner), "only the acquiring service can release")
	assert.Error(t, first.Unlock(ctx, "opd:ledger:lock", "someone-else"))

	require.NoError(t, first.Unlock(ctx, "opd:ledger:lock", owner))
	acquired, _, err = second.TryLock(ctx, "opd:ledger:lock", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestFileLockServiceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	acquired, _, err := NewFileLockService(t.TempDir(), zap.NewNop()).TryLock(ctx, "ledger", time.Second)
	assert.False(t, acquired)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLockerService(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "locks")

	svc, err := NewLockerService("file", nil, dir, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &fileLockService{}, svc)
	assert.DirExists(t, dir)

	svc, err = NewLockerService("local", nil, "", zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &localLockService{}, svc)

	_, err = NewLockerService("redis", nil, "", zap.NewNop())
	assert.Error(t, err)

	_, err = NewLockerService("zookeeper", nil, "", zap.NewNop())
	assert.Error(t, err)
}
