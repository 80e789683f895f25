package main

import (
	"flag"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/drivers/logger"
	"opd-scheduler-service/internal/migration"
	"opd-scheduler-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	driver := flag.String("driver", constvars.LedgerDriverPostgres, "ledger driver to migrate (postgres or sqlite)")
	flag.Parse()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	db := openDatabase(*driver, driverConfig, log)
	defer db.Close()

	n, err := migration.Up(db, *driver)
	if err != nil {
		log.Fatal("Error executing migration", zap.Error(err))
	}

	log.Info("Applied migrations",
		zap.String(constvars.LoggingLedgerDriverKey, *driver),
		zap.Int("migrations", n))
}
