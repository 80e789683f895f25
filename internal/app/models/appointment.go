package models

import (
	"fmt"
	"strings"
)

const (
	FirstSlotHour = 9
	LastSlotHour  = 16
)

// Booking is one patient's reserved slot.
type Booking struct {
	Name string `json:"name" bson:"name"`
	Day  Day    `json:"day" bson:"day"`
	Hour int    `json:"hour" bson:"hour"`
}

// Slot is the (day, hour) pair a booking occupies.
type Slot struct {
	Day  Day `json:"day" bson:"day"`
	Hour int `json:"hour" bson:"hour"`
}

func (b Booking) Slot() Slot {
	return Slot{Day: b.Day, Hour: b.Hour}
}

func (s Slot) Label() string {
	return fmt.Sprintf("%s %02d:00", s.Day, s.Hour)
}

func ValidHour(hour int) bool {
	return hour >= FirstSlotHour && hour <= LastSlotHour
}

// Validate checks a booking read from storage or built from input.
func (b Booking) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if !b.Day.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDay, int(b.Day))
	}
	if !ValidHour(b.Hour) {
		return fmt.Errorf("%w: %d", ErrInvalidHour, b.Hour)
	}
	return nil
}

// AllSlots returns every bookable slot ordered by day then hour.
func AllSlots() []Slot {
	slots := make([]Slot, 0, len(WorkingDays)*(LastSlotHour-FirstSlotHour+1))
	for _, day := range WorkingDays {
		for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
			slots = append(slots, Slot{Day: day, Hour: hour})
		}
	}
	return slots
}
