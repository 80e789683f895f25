package appointments

import (
	"errors"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryBook(t *testing.T) {
	alice := models.Booking{Name: "Alice", Day: models.Monday, Hour: 9}

	t.Run("EmptyLedgerAcceptsEveryValidSlot", func(t *testing.T) {
		for _, slot := range models.AllSlots() {
			candidate := models.Booking{Name: "Patient", Day: slot.Day, Hour: slot.Hour}
			next, err := TryBook(nil, candidate)
			require.NoError(t, err)
			assert.Equal(t, []models.Booking{candidate}, next)
		}
	})

	t.Run("SlotConflictLeavesLedgerUnchanged", func(t *testing.T) {
		existing := []models.Booking{alice}
		next, err := TryBook(existing, models.Booking{Name: "Bob", Day: models.Monday, Hour: 9})
		require.Error(t, err)
		assert.Nil(t, next)
		assert.True(t, errors.Is(err, models.ErrSlotConflict))
		assert.Equal(t, []models.Booking{alice}, existing)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("DifferentDaySameHourIsFree", func(t *testing.T) {
		bob := models.Booking{Name: "Bob", Day: models.Tuesday, Hour: 9}
		next, err := TryBook([]models.Booking{alice}, bob)
		require.NoError(t, err)
		assert.Equal(t, []models.Booking{alice, bob}, next)
	})

	t.Run("BlankNameRejected", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t"} {
			next, err := TryBook([]models.Booking{alice}, models.Booking{Name: name, Day: models.Friday, Hour: 16})
			assert.Nil(t, next)
			assert.True(t, errors.Is(err, models.ErrEmptyName), "name %q", name)
		}
	})

	t.Run("ResultDoesNotAliasInput", func(t *testing.T) {
		existing := make([]models.Booking, 1, 10)
		existing[0] = alice

		next, err := TryBook(existing, models.Booking{Name: "Bob", Day: models.Tuesday, Hour: 10})
		require.NoError(t, err)
		next[0].Name = "Changed"

		assert.Equal(t, "Alice", existing[0].Name)
		assert.Len(t, existing, 1)
	})
}

func TestFreeSlots(t *testing.T) {
	ledger := []models.Booking{
		{Name: "Alice", Day: models.Monday, Hour: 9},
		{Name: "Bob", Day: models.Monday, Hour: 16},
	}

	all := FreeSlots(ledger, nil)
	assert.Len(t, all, len(models.AllSlots())-2)
	assert.NotContains(t, all, models.Slot{Day: models.Monday, Hour: 9})

	monday := models.Monday
	mondayOnly := FreeSlots(ledger, &monday)
	assert.Len(t, mondayOnly, 6)
	for _, slot := range mondayOnly {
		assert.Equal(t, models.Monday, slot.Day)
	}
}

func TestDecodeLedgerCSV_DuplicateSlot(t *testing.T) {
	ledger, err := decodeLedgerCSV(strings.NewReader("Name,Day,Hour\nAlice,1,9\nCarol,2,9\nBob,1,9\n"))
	assert.Nil(t, ledger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 4: duplicate slot Monday 09:00, already booked on row 2")
}

func TestSlotRegistry(t *testing.T) {
	slots := make(slotRegistry)
	require.NoError(t, slots.claim(models.Slot{Day: models.Friday, Hour: 16}, 0))
	require.NoError(t, slots.claim(models.Slot{Day: models.Friday, Hour: 15}, 1))
	assert.Error(t, slots.claim(models.Slot{Day: models.Friday, Hour: 16}, 2))
}
