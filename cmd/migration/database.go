package main

import (
	"database/sql"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/drivers/database"
	"opd-scheduler-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func openDatabase(driver string, driverConfig *config.DriverConfig, log *zap.Logger) *sql.DB {
	switch driver {
	case constvars.LedgerDriverPostgres:
		return database.NewPostgresDB(driverConfig, log)
	case constvars.LedgerDriverSQLite:
		db, err := database.OpenSQLite(driverConfig.SQLite.Path)
		if err != nil {
			log.Fatal("Failed to open sqlite database", zap.Error(err))
		}
		return db
	default:
		log.Fatal("Unsupported migration driver", zap.String(constvars.LoggingLedgerDriverKey, driver))
		return nil
	}
}
