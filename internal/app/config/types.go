package config

import (
	"opd-scheduler-service/internal/pkg/constvars"
	"os"
	"path/filepath"
	"time"
)

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Postgres Postgres
		SQLite   SQLite
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Postgres struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}
	SQLite struct {
		Path string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App      App
		Ledger   Ledger
		Locker   Locker
		Load     Load
		RabbitMQ AppRabbitMQ
		Snapshot Snapshot
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		MaxTimeRequestsPerSeconds  int
		RateLimitBlockTimeInSecond int
		ShutdownTimeoutInSeconds   int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInKilobyte int64
		SuperadminAPIKey           string
	}

	// Ledger selects the durable store behind the appointment ledger.
	Ledger struct {
		Driver      string
		CSVPath     string
		MigrateOnUp bool
	}

	// Locker guards the ledger read-modify-write. local covers one process,
	// file covers every process on one host, redis covers every host.
	Locker struct {
		Driver       string
		Dir          string
		Expiration   time.Duration
		PollInterval time.Duration
	}

	Load struct {
		DefaultSeed  int64
		DefaultCount int
		CacheEnabled bool
		CacheTTL     time.Duration
	}

	AppRabbitMQ struct {
		Enabled  bool
		Exchange string
	}

	// Snapshot controls CSV exports of the ledger into object storage.
	Snapshot struct {
		Enabled    bool
		BucketName string
		CronSpec   string
	}
)

// RequestTimeout bounds each use case call, defaulting to 10 seconds.
func (c *InternalConfig) RequestTimeout() time.Duration {
	if c.App.RequestTimeoutInSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.App.RequestTimeoutInSeconds) * time.Second
}

// LockDirectory is where the file locker keeps its lock files. Unless LOCKER_DIR is set
// it sits next to the file-backed ledger so every process sharing that ledger shares the lock.
func (c *InternalConfig) LockDirectory(driverConfig *DriverConfig) string {
	if c.Locker.Dir != "" {
		return c.Locker.Dir
	}
	switch c.Ledger.Driver {
	case constvars.LedgerDriverCSV:
		return filepath.Dir(c.Ledger.CSVPath)
	case constvars.LedgerDriverSQLite:
		return filepath.Dir(driverConfig.SQLite.Path)
	default:
		return os.TempDir()
	}
}
