package appointments

import (
	"context"
	"errors"
	"opd-scheduler-service/internal/app/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCSVRepository(t *testing.T) (*appointmentCSVRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appointments.csv")
	return &appointmentCSVRepository{Path: path, Log: zap.NewNop()}, path
}

func TestAppointmentCSVRepository_LoadMissingFile(t *testing.T) {
	repo, _ := newTestCSVRepository(t)

	ledger, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestAppointmentCSVRepository_PersistWritesOrdinalDays(t *testing.T) {
	repo, path := newTestCSVRepository(t)

	err := repo.Persist(context.Background(), []models.Booking{{Name: "Alice", Day: models.Monday, Hour: 9}})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Day,Hour\nAlice,1,9\n", string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestAppointmentCSVRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestCSVRepository(t)
	ctx := context.Background()

	ledger := []models.Booking{
		{Name: "Alice", Day: models.Monday, Hour: 9},
		{Name: "Bob, Jr.", Day: models.Tuesday, Hour: 9},
		{Name: "Chloé", Day: models.Friday, Hour: 16},
	}
	require.NoError(t, repo.Persist(ctx, ledger))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledger, loaded)

	require.NoError(t, repo.Persist(ctx, ledger[:1]))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledger[:1], loaded)
}

func TestAppointmentCSVRepository_MalformedFile(t *testing.T) {
	cases := map[string]string{
		"wrong column count": "Name,Day,Hour\nAlice,1\n",
		"bad header":         "Patient,Day,Hour\nAlice,1,9\n",
		"non numeric day":    "Name,Day,Hour\nAlice,Monday,9\n",
		"day out of range":   "Name,Day,Hour\nAlice,6,9\n",
		"hour out of range":  "Name,Day,Hour\nAlice,1,17\n",
		"empty name":         "Name,Day,Hour\n ,1,9\n",
		"duplicate slot":     "Name,Day,Hour\nAlice,1,9\nBob,1,9\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			repo, path := newTestCSVRepository(t)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			ledger, err := repo.Load(context.Background())
			assert.Nil(t, ledger)
			assert.True(t, errors.Is(err, models.ErrStorageUnavailable))
		})
	}
}

func TestAppointmentCSVRepository_HeaderOnly(t *testing.T) {
	repo, path := newTestCSVRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("Name,Day,Hour\n"), 0o644))

	ledger, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger)
}
