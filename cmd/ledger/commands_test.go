package main

import (
	"bytes"
	"context"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/app/services/core/appointments"
	"opd-scheduler-service/internal/app/services/shared/locker"
	"opd-scheduler-service/internal/pkg/constvars"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunBookAndList(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		Locker: config.Locker{Driver: constvars.LockerDriverLocal, Expiration: time.Second, PollInterval: time.Millisecond},
	}
	repo := appointments.NewAppointmentCSVRepository(filepath.Join(t.TempDir(), "appointments.csv"), logger)
	usecase := appointments.NewAppointmentUsecase(repo, locker.NewLocalLockService(logger), nil, nil, internalConfig, logger)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, usecase, "list", nil, &out))
	assert.Equal(t, "No appointments booked yet.\n", out.String())

	out.Reset()
	require.NoError(t, run(ctx, usecase, "book", []string{"-name", "Alice", "-day", "Monday", "-hour", "9"}, &out))
	assert.Equal(t, "Appointment booked for Alice on Monday at 9:00\n", out.String())

	out.Reset()
	err := run(ctx, usecase, "book", []string{"-name", "Bob", "-day", "Monday", "-hour", "9"}, &out)
	assert.ErrorIs(t, err, models.ErrSlotConflict)
	assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, describeError(err))

	out.Reset()
	require.NoError(t, run(ctx, usecase, "list", nil, &out))
	assert.Contains(t, out.String(), "Alice")
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))

	out.Reset()
	require.NoError(t, run(ctx, usecase, "slots", []string{"-day", "Monday"}, &out))
	assert.Equal(t, 8, strings.Count(out.String(), "\n"), "header plus seven free Monday slots")

	assert.Error(t, run(ctx, usecase, "book", []string{"-name", "Carol", "-day", "Sunday", "-hour", "9"}, &out))
	assert.Error(t, run(ctx, usecase, "cancel", nil, &out))
}

func TestRealMainExitCodes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "appointments.csv")
	t.Setenv("LEDGER_DRIVER", constvars.LedgerDriverCSV)
	t.Setenv("LEDGER_CSV_PATH", path)
	t.Setenv("LOCKER_DRIVER", constvars.LockerDriverFile)
	t.Setenv("LOCKER_DIR", "")
	t.Setenv("LOGGER_LEVEL", "error")

	assert.Equal(t, 2, realMain(nil))
	assert.Equal(t, 0, realMain([]string{"book", "-name", "Alice", "-day", "Monday", "-hour", "9"}))
	assert.Equal(t, 1, realMain([]string{"book", "-name", "Bob", "-day", "Monday", "-hour", "9"}))
	assert.Equal(t, 1, realMain([]string{"cancel"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Day,Hour\nAlice,1,9\n", string(content))
	assert.FileExists(t, filepath.Join(dir, "opd_ledger_lock.lock"), "the CLI locks next to the ledger file")
}
