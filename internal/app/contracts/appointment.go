package contracts

import (
	"context"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"opd-scheduler-service/internal/pkg/dto/responses"
)

// LedgerRepository is the durable store behind the appointment ledger.
// Load returns an empty ledger when nothing was persisted yet; Persist replaces the whole ledger.
type LedgerRepository interface {
	Load(ctx context.Context) ([]models.Booking, error)
	Persist(ctx context.Context, ledger []models.Booking) error
	Driver() string
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error)
	ListAppointments(ctx context.Context) ([]responses.Appointment, error)
	FindAvailableSlots(ctx context.Context, request *requests.FindAvailableSlotsRequest) ([]responses.AvailableSlot, error)
	ExportSnapshot(ctx context.Context) (*responses.AppointmentSnapshot, error)
}
