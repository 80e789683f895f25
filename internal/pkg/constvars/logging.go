package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorTypeKey      = "error_type"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"

	LoggingLedgerDriverKey = "ledger_driver"
	LoggingLedgerPathKey   = "ledger_path"
	LoggingLedgerLengthKey = "ledger_length"
	LoggingBookingNameKey  = "booking_name"
	LoggingBookingDayKey   = "booking_day"
	LoggingBookingHourKey  = "booking_hour"
	LoggingSlotKey         = "slot"

	LoggingRoutingKey  = "routing_key"
	LoggingEventIDKey  = "event_id"
	LoggingBucketKey   = "bucket"
	LoggingObjectKey   = "object"
	LoggingCronSpecKey = "cron_spec"

	LoggingLoadSeedKey     = "load_seed"
	LoggingLoadCountKey    = "load_count"
	LoggingLoadClustersKey = "load_clusters"
	LoggingCacheHitKey     = "cache_hit"
)
