package events

import (
	"context"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// noopPublisher logs events instead of sending them when RabbitMQ is disabled.
type noopPublisher struct {
	Log *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Debug("noopPublisher.Publish dropped event",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, routingKey),
	)
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
