package exceptions

import (
	"errors"
	"fmt"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidQueryParam = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLQueryParamInvalid, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
	ErrTooManyRequests = func(err error, clientIP string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, clientIP))
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanicRecovered)
	}

	// Ledger
	ErrEmptyName = func(err error) *CustomError {
		return BuildNewCustomError(wrapSentinel(err, models.ErrEmptyName), constvars.StatusBadRequest, constvars.ErrClientNameRequired, constvars.ErrDevLedgerEmptyName)
	}
	ErrSlotConflict = func(err error, slot models.Slot) *CustomError {
		return BuildNewCustomError(wrapSentinel(err, models.ErrSlotConflict), constvars.StatusConflict, constvars.ErrClientSlotAlreadyBooked, fmt.Sprintf(constvars.ErrDevLedgerSlotConflict, slot.Day.Number(), slot.Hour))
	}
	ErrInvalidDay = func(err error, value string) *CustomError {
		return BuildNewCustomError(wrapSentinel(err, models.ErrInvalidDay), constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevLedgerInvalidDay, value))
	}
	ErrInvalidDayInput = func(err error, value string) *CustomError {
		return BuildNewCustomError(wrapSentinel(err, models.ErrInvalidDay), constvars.StatusBadRequest, constvars.ErrClientInvalidDay, fmt.Sprintf(constvars.ErrDevLedgerInvalidDay, value))
	}
	ErrInvalidHourInput = func(err error, hour int) *CustomError {
		return BuildNewCustomError(wrapSentinel(err, models.ErrInvalidHour), constvars.StatusBadRequest, constvars.ErrClientInvalidHour, fmt.Sprintf(constvars.ErrDevLedgerInvalidHour, hour))
	}
	ErrStorageUnavailable = func(err error, store string) *CustomError {
		return BuildNewCustomError(wrapSentinel(err, models.ErrStorageUnavailable), constvars.StatusServiceUnavailable, constvars.ErrClientBookingNotSaved, fmt.Sprintf(constvars.ErrDevLedgerStorageUnavailable, store))
	}
	ErrLedgerBusy = func(err error, lockKey string) *CustomError {
		return BuildNewCustomError(wrapSentinel(err, models.ErrLedgerBusy), constvars.StatusServiceUnavailable, constvars.ErrClientLedgerBusy, fmt.Sprintf(constvars.ErrDevLedgerBusy, lockKey))
	}

	ErrSnapshotDisabled = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSnapshotDisabled, constvars.ErrDevSnapshotStorageDisabled)
	}

	// Database
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return ErrStorageUnavailable(fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToFindDocument, err), constvars.LedgerDriverMongo)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return ErrStorageUnavailable(fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToIterateDocuments, err), constvars.LedgerDriverMongo)
	}
	ErrMongoDBReplaceDocuments = func(err error) *CustomError {
		return ErrStorageUnavailable(fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToReplaceDocuments, err), constvars.LedgerDriverMongo)
	}
	ErrMongoDBCreateIndexes = func(err error) *CustomError {
		return ErrStorageUnavailable(fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToCreateIndexes, err), constvars.LedgerDriverMongo)
	}
	ErrSQLFindData = func(err error, driver string) *CustomError {
		return ErrStorageUnavailable(fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToFindData, err), driver)
	}
	ErrSQLReplaceData = func(err error, driver string) *CustomError {
		return ErrStorageUnavailable(fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToReplaceData, err), driver)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrFileLock = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevFileLock, path))
	}
	ErrFileUnlock = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevFileUnlock, path))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, routingKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, routingKey))
	}
)

// wrapSentinel keeps errors.Is(err, sentinel) true whether or not the cause already carries it.
func wrapSentinel(err, sentinel error) error {
	if err == nil {
		return sentinel
	}
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
