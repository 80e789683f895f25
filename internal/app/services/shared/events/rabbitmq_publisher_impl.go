package events

import (
	"context"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	Channel  *amqp091.Channel
	Exchange string
}

// NewRabbitMQPublisher opens a channel and declares a durable topic exchange for ledger events.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, exchange string) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		_ = channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel:  channel,
		Exchange: exchange,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, p.Exchange, routingKey, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, routingKey)
	}

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.Channel.Close()
}
