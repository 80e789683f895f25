package config

import (
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "opd_scheduler"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Postgres: Postgres{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "opd_scheduler"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		SQLite: SQLite{
			Path: utils.GetEnvString("SQLITE_PATH", "data/appointments.db"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			RateLimitBlockTimeInSecond: utils.GetEnvInt("APP_RATE_LIMIT_BLOCK_TIME_IN_SECONDS", 30),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInKilobyte: utils.GetEnvInt64("APP_REQUEST_BODY_LIMIT_IN_KILOBYTE", 64),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
		},
		Ledger: Ledger{
			Driver:      utils.GetEnvString("LEDGER_DRIVER", constvars.LedgerDriverCSV),
			CSVPath:     utils.GetEnvString("LEDGER_CSV_PATH", "appointments.csv"),
			MigrateOnUp: utils.GetEnvBool("LEDGER_MIGRATE_ON_STARTUP", true),
		},
		Locker: Locker{
			Driver:       utils.GetEnvString("LOCKER_DRIVER", constvars.LockerDriverFile),
			Dir:          utils.GetEnvString("LOCKER_DIR", ""),
			Expiration:   utils.GetEnvDuration("LOCKER_EXPIRATION", 5*time.Second),
			PollInterval: utils.GetEnvDuration("LOCKER_POLL_INTERVAL", 25*time.Millisecond),
		},
		Load: Load{
			DefaultSeed:  utils.GetEnvInt64("LOAD_DEFAULT_SEED", 42),
			DefaultCount: utils.GetEnvInt("LOAD_DEFAULT_COUNT", 100),
			CacheEnabled: utils.GetEnvBool("LOAD_CACHE_ENABLED", false),
			CacheTTL:     utils.GetEnvDuration("LOAD_CACHE_TTL", 10*time.Minute),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:  utils.GetEnvBool("APP_RABBITMQ_ENABLED", false),
			Exchange: utils.GetEnvString("APP_RABBITMQ_EXCHANGE", "opd.appointments"),
		},
		Snapshot: Snapshot{
			Enabled:    utils.GetEnvBool("SNAPSHOT_ENABLED", false),
			BucketName: utils.GetEnvString("SNAPSHOT_BUCKET_NAME", "opd-ledger"),
			CronSpec:   utils.GetEnvString("SNAPSHOT_CRON_SPEC", "@daily"),
		},
	}
}
