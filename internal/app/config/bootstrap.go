package config

import (
	"context"
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the process-wide clients. Optional backends stay nil when disabled.
type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	SQLDB          *sql.DB
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
	// PublisherClose if set releases the event publisher channel
	PublisherClose func() error
}

// Shutdown releases every non-nil client. Logger must be set.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped snapshot worker")
	}

	if b.PublisherClose != nil {
		if err := b.PublisherClose(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing event publisher")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing MongoDB")
	}

	if b.SQLDB != nil {
		if err := b.SQLDB.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing SQL database")
	}

	// stdout sync fails with EINVAL on some platforms
	_ = b.Logger.Sync()

	return nil
}
