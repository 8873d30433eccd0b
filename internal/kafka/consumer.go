package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventHandler receives decoded notification events. The email sender is the
// only implementation in production.
type EventHandler interface {
	SendRegistration(ctx context.Context, event RegistrationEvent) error
	SendTicket(ctx context.Context, event TicketEvent) error
}

// Consumer reads the notifications topic and routes each event to a handler.
// The topic carries both registration and ticket events; the payload shape
// tells them apart.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := routeEvent(ctx, handler, msg.Value); err != nil {
			return err
		}
	}
}

// routeEvent decodes a notification payload by event shape. Registration
// events carry an email address, ticket events a user id. Payloads matching
// neither are logged and dropped so one bad message cannot wedge the group.
func routeEvent(ctx context.Context, handler EventHandler, value []byte) error {
	var reg RegistrationEvent
	if err := json.Unmarshal(value, &reg); err == nil && reg.Email != "" {
		return handler.SendRegistration(ctx, reg)
	}

	var ticket TicketEvent
	if err := json.Unmarshal(value, &ticket); err != nil {
		log.Printf("decode event error: %v", err)
		return nil
	}
	if ticket.UserID == "" {
		log.Printf("skipping unrecognized event: %s", string(value))
		return nil
	}
	return handler.SendTicket(ctx, ticket)
}
