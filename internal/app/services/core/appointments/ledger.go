package appointments

import (
	"fmt"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/exceptions"
	"strings"
)

// TryBook appends candidate to existing when its slot is free.
// The returned slice never shares a backing array with existing.
func TryBook(existing []models.Booking, candidate models.Booking) ([]models.Booking, error) {
	if strings.TrimSpace(candidate.Name) == "" {
		return nil, exceptions.ErrEmptyName(nil)
	}

	slot := candidate.Slot()
	for _, booking := range existing {
		if booking.Slot() == slot {
			return nil, exceptions.ErrSlotConflict(nil, slot)
		}
	}

	next := make([]models.Booking, 0, len(existing)+1)
	next = append(next, existing...)
	return append(next, candidate), nil
}

// FreeSlots lists the slots not taken by ledger, optionally restricted to one day.
func FreeSlots(ledger []models.Booking, day *models.Day) []models.Slot {
	taken := make(map[models.Slot]struct{}, len(ledger))
	for _, booking := range ledger {
		taken[booking.Slot()] = struct{}{}
	}

	var free []models.Slot
	for _, slot := range models.AllSlots() {
		if day != nil && slot.Day != *day {
			continue
		}
		if _, ok := taken[slot]; ok {
			continue
		}
		free = append(free, slot)
	}
	return free
}

// slotRegistry tracks the slots seen while reading a stored ledger.
type slotRegistry map[models.Slot]int

// claim records slot for row and fails when an earlier row already holds it.
func (r slotRegistry) claim(slot models.Slot, row int) error {
	if first, ok := r[slot]; ok {
		return fmt.Errorf("row %d: duplicate slot %s, already booked on row %d", row, slot.Label(), first)
	}
	r[slot] = row
	return nil
}
