package database

import (
	"database/sql"
	"fmt"
	"opd-scheduler-service/internal/app/config"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func NewPostgresDB(driverConfig *config.DriverConfig, log *zap.Logger) *sql.DB {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.Postgres.Host,
		driverConfig.Postgres.Port,
		driverConfig.Postgres.Username,
		driverConfig.Postgres.Password,
		driverConfig.Postgres.DBName,
		driverConfig.Postgres.SSLMode)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		log.Fatal("Failed to open postgres database connection", zap.Error(err))
	}

	err = db.Ping()
	if err != nil {
		log.Fatal("Failed to connect to postgres database", zap.Error(err))
	}

	log.Info("Successfully connected to postgres database",
		zap.String("host", driverConfig.Postgres.Host),
		zap.String("database", driverConfig.Postgres.DBName))

	return db
}
