package appointments

import (
	"context"
	"opd-scheduler-service/internal/app/drivers/database"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/migration"
	"opd-scheduler-service/internal/pkg/constvars"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSQLiteRepository(t *testing.T) *appointmentSQLRepository {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = migration.Up(db, constvars.LedgerDriverSQLite)
	require.NoError(t, err)

	return NewAppointmentSQLiteRepository(db, zap.NewNop()).(*appointmentSQLRepository)
}

func TestAppointmentSQLiteRepository_RoundTrip(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	ledger, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, ledger)

	want := []models.Booking{
		{Name: "Zed", Day: models.Friday, Hour: 16},
		{Name: "Alice", Day: models.Monday, Hour: 9},
		{Name: "Bob", Day: models.Tuesday, Hour: 9},
	}
	require.NoError(t, repo.Persist(ctx, want))

	ledger, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, ledger, "insertion order must survive a round trip")
	assert.Equal(t, constvars.LedgerDriverSQLite, repo.Driver())
}

func TestAppointmentSQLiteRepository_DuplicateSlotRollsBack(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	original := []models.Booking{{Name: "Alice", Day: models.Monday, Hour: 9}}
	require.NoError(t, repo.Persist(ctx, original))

	err := repo.Persist(ctx, []models.Booking{
		{Name: "Alice", Day: models.Monday, Hour: 9},
		{Name: "Bob", Day: models.Monday, Hour: 9},
	})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	ledger, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, ledger)
}
