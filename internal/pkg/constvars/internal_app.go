package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	ResourceAppointments = "appointments"
	ResourceLoad         = "load"
	ResourceHealth       = "health"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	LedgerDriverCSV      = "csv"
	LedgerDriverSQLite   = "sqlite"
	LedgerDriverPostgres = "postgres"
	LedgerDriverMongo    = "mongo"

	LockerDriverLocal = "local"
	LockerDriverFile  = "file"
	LockerDriverRedis = "redis"
)

const (
	LedgerLockKey          = "opd:ledger:lock"
	LockFileExtension      = ".lock"
	SnapshotLeaderLockKey  = "opd:snapshot:leader"
	LoadCacheKeyFormat     = "opd:load:k:%d:seed:%d:count:%d"
	SnapshotObjectFormat   = "appointments/%s.csv"
	SnapshotTimeFormat     = "20060102T150405Z"
	EventAppointmentBooked = "appointment.booked"
)

const (
	MongoCollectionAppointments = "appointments"
)
