package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/drivers/database"
	"opd-scheduler-service/internal/migration"
	"opd-scheduler-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// LedgerBackends holds the connections a ledger driver may need. Unused fields stay nil.
type LedgerBackends struct {
	SQLDB       *sql.DB
	MongoClient *mongo.Client
	MongoDBName string
	CSVPath     string
}

// NewLedgerRepository picks the LedgerRepository implementation for driver.
func NewLedgerRepository(driver string, backends LedgerBackends, logger *zap.Logger) (contracts.LedgerRepository, error) {
	switch driver {
	case constvars.LedgerDriverCSV:
		return NewAppointmentCSVRepository(backends.CSVPath, logger), nil
	case constvars.LedgerDriverSQLite:
		if backends.SQLDB == nil {
			return nil, fmt.Errorf("ledger driver %s requires a database connection", driver)
		}
		return NewAppointmentSQLiteRepository(backends.SQLDB, logger), nil
	case constvars.LedgerDriverPostgres:
		if backends.SQLDB == nil {
			return nil, fmt.Errorf("ledger driver %s requires a database connection", driver)
		}
		return NewAppointmentPostgresRepository(backends.SQLDB, logger), nil
	case constvars.LedgerDriverMongo:
		if backends.MongoClient == nil {
			return nil, fmt.Errorf("ledger driver %s requires a mongo client", driver)
		}
		return NewAppointmentMongoRepository(backends.MongoClient, backends.MongoDBName, logger), nil
	default:
		return nil, fmt.Errorf("unknown ledger driver %q", driver)
	}
}

// ConnectLedgerBackends opens only the connections the configured driver needs.
// The sqlite schema is migrated here when LEDGER_MIGRATE_ON_STARTUP is set.
func ConnectLedgerBackends(internalConfig *config.InternalConfig, driverConfig *config.DriverConfig, logger *zap.Logger) (LedgerBackends, error) {
	backends := LedgerBackends{
		CSVPath:     internalConfig.Ledger.CSVPath,
		MongoDBName: driverConfig.MongoDB.DbName,
	}

	switch internalConfig.Ledger.Driver {
	case constvars.LedgerDriverSQLite:
		db, err := database.OpenSQLite(driverConfig.SQLite.Path)
		if err != nil {
			return backends, err
		}
		backends.SQLDB = db
		if internalConfig.Ledger.MigrateOnUp {
			n, err := migration.Up(db, constvars.LedgerDriverSQLite)
			if err != nil {
				db.Close()
				return backends, err
			}
			logger.Info("Applied ledger migrations",
				zap.String(constvars.LoggingLedgerDriverKey, constvars.LedgerDriverSQLite),
				zap.Int("migrations", n))
		}
	case constvars.LedgerDriverPostgres:
		backends.SQLDB = database.NewPostgresDB(driverConfig, logger)
		if internalConfig.Ledger.MigrateOnUp {
			n, err := migration.Up(backends.SQLDB, constvars.LedgerDriverPostgres)
			if err != nil {
				backends.SQLDB.Close()
				return backends, err
			}
			logger.Info("Applied ledger migrations",
				zap.String(constvars.LoggingLedgerDriverKey, constvars.LedgerDriverPostgres),
				zap.Int("migrations", n))
		}
	case constvars.LedgerDriverMongo:
		backends.MongoClient = database.NewMongoDB(driverConfig, logger)
		ctx, cancel := context.WithTimeout(context.Background(), internalConfig.RequestTimeout())
		defer cancel()
		if err := EnsureAppointmentIndexes(ctx, backends.MongoClient, backends.MongoDBName); err != nil {
			return backends, err
		}
	}

	return backends, nil
}
