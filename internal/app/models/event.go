package models

import "time"

// AppointmentBookedEvent is published after a booking has been persisted.
type AppointmentBookedEvent struct {
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Day       string    `json:"day"`
	DayNumber int       `json:"day_number"`
	Hour      int       `json:"hour"`
	BookedAt  time.Time `json:"booked_at"`
}
