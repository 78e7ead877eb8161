package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"

	"pizza-orders/internal/domain"
)

// Producer emits order lifecycle events. Messages are keyed by order id so
// all events of one order land on the same partition, in order.
type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokersSTR, topic string) *Producer {
	brokers := strings.Split(brokersSTR, ",")

	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

func (p *Producer) Close() error {
	return p.w.Close()
}

func (p *Producer) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := []byte(strconv.Itoa(event.OrderID))
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
}
