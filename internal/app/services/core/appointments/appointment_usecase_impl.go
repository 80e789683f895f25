package appointments

import (
	"bytes"
	"context"
	"fmt"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"opd-scheduler-service/internal/pkg/dto/responses"
	"opd-scheduler-service/internal/pkg/exceptions"
	"opd-scheduler-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	LedgerRepository contracts.LedgerRepository
	LockService      contracts.LockerService
	EventPublisher   contracts.EventPublisher
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
	now              func() time.Time
}

// NewAppointmentUsecase wires the ledger use cases. storage may be nil when snapshots are disabled.
func NewAppointmentUsecase(
	ledgerRepository contracts.LedgerRepository,
	lockService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		LedgerRepository: ledgerRepository,
		LockService:      lockService,
		EventPublisher:   eventPublisher,
		Storage:          storage,
		InternalConfig:   internalConfig,
		Log:              logger,
		now:              time.Now,
	}
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingDayKey, request.Day),
		zap.Int(constvars.LoggingBookingHourKey, request.Hour),
	)

	day, err := models.ParseDay(request.Day)
	if err != nil {
		return nil, exceptions.ErrInvalidDayInput(err, request.Day)
	}
	if !models.ValidHour(request.Hour) {
		return nil, exceptions.ErrInvalidHourInput(nil, request.Hour)
	}

	candidate := models.Booking{
		Name: strings.TrimSpace(request.Name),
		Day:  day,
		Hour: request.Hour,
	}
	if candidate.Name == "" {
		return nil, exceptions.ErrEmptyName(nil)
	}

	err = uc.appendToLedger(ctx, candidate)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error appending to ledger",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishBooked(ctx, candidate)

	response := &responses.CreateAppointment{
		Appointment: toAppointmentResponse(candidate),
		Message:     fmt.Sprintf(constvars.CreateAppointmentSuccessMessage, candidate.Name, candidate.Day, candidate.Hour),
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventAppointmentBooked, requestID,
		zap.String(constvars.LoggingSlotKey, candidate.Slot().Label()),
	)

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingNameKey, candidate.Name),
		zap.String(constvars.LoggingBookingDayKey, candidate.Day.String()),
		zap.Int(constvars.LoggingBookingHourKey, candidate.Hour),
	)
	return response, nil
}

// appendToLedger runs load, TryBook and persist while holding the ledger lock.
func (uc *appointmentUsecase) appendToLedger(ctx context.Context, candidate models.Booking) error {
	lockValue, err := uc.acquireLedgerLock(ctx)
	if err != nil {
		return err
	}
	defer uc.releaseLedgerLock(ctx, lockValue)

	ledger, err := uc.LedgerRepository.Load(ctx)
	if err != nil {
		return err
	}

	next, err := TryBook(ledger, candidate)
	if err != nil {
		return err
	}

	return uc.LedgerRepository.Persist(ctx, next)
}

func (uc *appointmentUsecase) acquireLedgerLock(ctx context.Context) (string, error) {
	requestID := utils.GetRequestID(ctx)
	pollInterval := uc.InternalConfig.Locker.PollInterval
	if pollInterval <= 0 {
		pollInterval = 25 * time.Millisecond
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		acquired, lockValue, err := uc.LockService.TryLock(ctx, constvars.LedgerLockKey, uc.InternalConfig.Locker.Expiration)
		if err != nil {
			uc.Log.Error("appointmentUsecase.acquireLedgerLock error calling LockService.TryLock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return "", exceptions.ErrLedgerBusy(err, constvars.LedgerLockKey)
		}
		if acquired {
			return lockValue, nil
		}

		select {
		case <-ctx.Done():
			uc.Log.Warn("appointmentUsecase.acquireLedgerLock gave up waiting for lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, constvars.LedgerLockKey),
			)
			return "", exceptions.ErrLedgerBusy(ctx.Err(), constvars.LedgerLockKey)
		case <-ticker.C:
		}
	}
}

func (uc *appointmentUsecase) releaseLedgerLock(ctx context.Context, lockValue string) {
	err := uc.LockService.Unlock(context.WithoutCancel(ctx), constvars.LedgerLockKey, lockValue)
	if err != nil {
		requestID := utils.GetRequestID(ctx)
		uc.Log.Warn("appointmentUsecase.releaseLedgerLock failed to unlock ledger",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// publishBooked never fails the booking; the ledger is already persisted.
func (uc *appointmentUsecase) publishBooked(ctx context.Context, booking models.Booking) {
	if uc.EventPublisher == nil {
		return
	}

	requestID := utils.GetRequestID(ctx)
	event := models.AppointmentBookedEvent{
		EventID:   uuid.NewString(),
		Name:      booking.Name,
		Day:       booking.Day.String(),
		DayNumber: booking.Day.Number(),
		Hour:      booking.Hour,
		BookedAt:  uc.now().UTC(),
	}

	err := uc.EventPublisher.Publish(ctx, constvars.EventAppointmentBooked, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publishBooked error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, event.EventID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Debug("appointmentUsecase.publishBooked succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, constvars.EventAppointmentBooked),
		zap.String(constvars.LoggingEventIDKey, event.EventID),
	)
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ledger, err := uc.LedgerRepository.Load(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAppointments error loading ledger",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(ledger))
	for _, booking := range ledger {
		response = append(response, toAppointmentResponse(booking))
	}

	uc.Log.Info("appointmentUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLedgerLengthKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindAvailableSlots(ctx context.Context, request *requests.FindAvailableSlotsRequest) ([]responses.AvailableSlot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingDayKey, request.Day),
	)

	var dayFilter *models.Day
	if request.Day != "" {
		day, err := models.ParseDay(request.Day)
		if err != nil {
			return nil, exceptions.ErrInvalidDayInput(err, request.Day)
		}
		dayFilter = &day
	}

	ledger, err := uc.LedgerRepository.Load(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAvailableSlots error loading ledger",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	free := FreeSlots(ledger, dayFilter)
	response := make([]responses.AvailableSlot, 0, len(free))
	for _, slot := range free {
		response = append(response, responses.AvailableSlot{
			Day:       slot.Day.String(),
			DayNumber: slot.Day.Number(),
			Hour:      slot.Hour,
			SlotLabel: slot.Label(),
		})
	}

	uc.Log.Info("appointmentUsecase.FindAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLedgerLengthKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) ExportSnapshot(ctx context.Context) (*responses.AppointmentSnapshot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ExportSnapshot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.Storage == nil {
		return nil, exceptions.ErrSnapshotDisabled(nil)
	}

	ledger, err := uc.LedgerRepository.Load(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportSnapshot error loading ledger",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var buffer bytes.Buffer
	if err := encodeLedgerCSV(&buffer, ledger); err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	bucketName := uc.InternalConfig.Snapshot.BucketName
	objectName := utils.GenerateSnapshotObjectName(uc.now())
	size := int64(buffer.Len())

	storedName, err := uc.Storage.UploadObject(ctx, bucketName, objectName, &buffer, size, constvars.MIMETextCSV)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportSnapshot error uploading snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ExportSnapshot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, storedName),
	)
	return &responses.AppointmentSnapshot{
		Bucket:     bucketName,
		ObjectName: storedName,
		Records:    len(ledger),
		Size:       size,
	}, nil
}

func toAppointmentResponse(booking models.Booking) responses.Appointment {
	return responses.Appointment{
		Name:      booking.Name,
		Day:       booking.Day.String(),
		DayNumber: booking.Day.Number(),
		Hour:      booking.Hour,
		SlotLabel: booking.Slot().Label(),
	}
}
