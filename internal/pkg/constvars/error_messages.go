package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"not_blank": "must not be blank",
	"min":       "must be at least %s",
	"max":       "must be at most %s",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNameRequired                  = "patient name is required"
	ErrClientSlotAlreadyBooked             = "the selected slot is already booked, please choose another day or hour"
	ErrClientInvalidDay                    = "day must be one of Monday, Tuesday, Wednesday, Thursday, Friday"
	ErrClientInvalidHour                   = "hour must be between 9 and 16"
	ErrClientBookingNotSaved               = "your appointment was not saved, please try again later"
	ErrClientLedgerBusy                    = "the schedule is busy right now, please try again"
	ErrClientSnapshotDisabled              = "ledger snapshots are not enabled"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat          = "invalid %s format"
	ErrDevValidationFailed       = "validation failed"
	ErrDevURLQueryParamInvalid   = "query parameter %s validation failed"
	ErrDevMissingRequestID       = "request id not found in context"
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevTooManyRequests        = "rate limit exceeded for %s"
	ErrDevServerPanicRecovered   = "recovered from panic while serving request"

	// Ledger
	ErrDevLedgerEmptyName          = "booking candidate has an empty name"
	ErrDevLedgerSlotConflict       = "slot day=%d hour=%d already booked"
	ErrDevLedgerInvalidDay         = "day value %q outside the Monday..Friday range"
	ErrDevLedgerInvalidHour        = "hour value %d outside the 9..16 range"
	ErrDevLedgerStorageUnavailable = "ledger store %s unavailable"
	ErrDevSnapshotStorageDisabled  = "snapshot export requested without object storage"
	ErrDevLedgerBusy               = "could not acquire ledger lock %s before deadline"

	// Database
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToReplaceDocuments = "failed to replace documents in database"
	ErrDevDBFailedToFindData         = "failed to find data in database"
	ErrDevDBFailedToReplaceData      = "failed to replace data in database"
	ErrDevDBFailedToCreateIndexes    = "failed to create indexes in database"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// File locks
	ErrDevFileLock   = "failed to acquire file lock %s"
	ErrDevFileUnlock = "failed to release file lock %s"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq with routing key '%s'"

	// API key
	ErrDevInvalidAPIKey  = "INVALID_API_KEY"
	ErrDevAPIKeyRequired = "API_KEY_REQUIRED"
)
