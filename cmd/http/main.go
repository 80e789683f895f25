package main

import (
	"context"
	"net/http"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/delivery/http/controllers"
	"opd-scheduler-service/internal/app/delivery/http/middlewares"
	"opd-scheduler-service/internal/app/delivery/http/routers"
	"opd-scheduler-service/internal/app/drivers/database"
	"opd-scheduler-service/internal/app/drivers/logger"
	"opd-scheduler-service/internal/app/drivers/messaging"
	"opd-scheduler-service/internal/app/drivers/storage"
	"opd-scheduler-service/internal/app/services/core/appointments"
	"opd-scheduler-service/internal/app/services/core/load"
	"opd-scheduler-service/internal/app/services/core/snapshot"
	"opd-scheduler-service/internal/app/services/shared/events"
	"opd-scheduler-service/internal/app/services/shared/locker"
	redisRepository "opd-scheduler-service/internal/app/services/shared/redis"
	minioStorage "opd-scheduler-service/internal/app/services/shared/storage"
	"opd-scheduler-service/internal/pkg/constvars"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting OPD scheduler service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String(constvars.LoggingLedgerDriverKey, internalConfig.Ledger.Driver))

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	backends, err := appointments.ConnectLedgerBackends(internalConfig, driverConfig, log)
	if err != nil {
		log.Fatal("Failed to connect ledger store", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		SQLDB:          backends.SQLDB,
		MongoDB:        backends.MongoClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if internalConfig.Locker.Driver == constvars.LockerDriverRedis || internalConfig.Load.CacheEnabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}
	if internalConfig.Snapshot.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, log)
	}

	bootstrapingTheApp(bootstrap, backends)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, backends appointments.LedgerBackends) {
	log := bootstrap.Logger

	// Redis
	var redisRepo contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepo = redisRepository.NewRedisRepository(bootstrap.Redis)
	}

	// Locker
	lockService, err := locker.NewLockerService(bootstrap.InternalConfig.Locker.Driver, redisRepo, bootstrap.InternalConfig.LockDirectory(bootstrap.DriverConfig), log)
	if err != nil {
		log.Fatal("Failed to create locker service", zap.Error(err))
	}

	// Events
	eventPublisher := events.NewNoopPublisher(log)
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to create rabbitmq event publisher", zap.Error(err))
		}
	}
	bootstrap.PublisherClose = eventPublisher.Close

	// Storage
	var snapshotStorage contracts.Storage
	if bootstrap.Minio != nil {
		snapshotStorage = minioStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Appointments
	ledgerRepository, err := appointments.NewLedgerRepository(bootstrap.InternalConfig.Ledger.Driver, backends, log)
	if err != nil {
		log.Fatal("Failed to create ledger repository", zap.Error(err))
	}
	appointmentUsecase := appointments.NewAppointmentUsecase(
		ledgerRepository,
		lockService,
		eventPublisher,
		snapshotStorage,
		bootstrap.InternalConfig,
		log,
	)
	appointmentController := controllers.NewAppointmentController(log, appointmentUsecase, bootstrap.InternalConfig)

	// Snapshot worker
	if snapshotStorage != nil {
		worker := snapshot.NewWorker(log, bootstrap.InternalConfig, lockService, appointmentUsecase)
		worker.Start(context.Background())
		bootstrap.WorkerStop = worker.Stop
	}

	// Load
	var loadCache contracts.LoadCache
	if redisRepo != nil && bootstrap.InternalConfig.Load.CacheEnabled {
		loadCache = load.NewLoadRedisCache(redisRepo, bootstrap.InternalConfig.Load.CacheTTL)
	}
	loadUsecase := load.NewLoadUsecase(loadCache, bootstrap.InternalConfig, log)
	loadController := controllers.NewLoadController(log, loadUsecase, bootstrap.InternalConfig)

	// Health
	healthController := controllers.NewHealthController(bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentController,
		loadController,
		healthController,
	)
}
