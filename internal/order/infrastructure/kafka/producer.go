package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/order/domain"
)

// Producer emits OrderCreated events. Publishing is post-commit and best
// effort; callers decide how to treat failures.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		topic: topic,
	}
}

type orderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Price     float64   `json:"price"`
	Total     float64   `json:"total"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *Producer) PublishOrderCreated(ctx context.Context, o domain.Order) error {
	payload, err := json.Marshal(orderCreatedEvent{
		OrderID:   o.ID,
		ProductID: o.ProductID,
		Price:     o.Price,
		Total:     o.Total,
		Quantity:  o.Quantity,
		Status:    string(o.Status),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(o.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("OrderCreated")},
		},
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
