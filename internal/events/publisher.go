package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"shopcore/internal/domain/model"
)

const EventOrderCreated = "order.created"

// OrderCreated is the payload written to the order events topic.
type OrderCreated struct {
	Type      string          `json:"type"`
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

// messageWriter abstracts kafka.Writer for tests.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer messageWriter
	closer func() error
}

// NewKafkaPublisher writes synchronously. Messages are keyed by order id.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
	return &KafkaPublisher{writer: w, closer: w.Close}
}

// NewKafkaPublisherWith is only for tests to inject a fake writer.
func NewKafkaPublisherWith(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, o model.Order) error {
	b, err := json.Marshal(OrderCreated{
		Type:      EventOrderCreated,
		OrderID:   o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		ItemCount: len(o.Items),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.ID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventOrderCreated)},
		},
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", EventOrderCreated, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, model.Order) error { return nil }
func (NopPublisher) Close() error                                         { return nil }
