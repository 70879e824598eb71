package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

const eventTypeOrderCreated = "order_created"

type OrderCreatedEvent struct {
	OrderID     uint               `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	Email       string             `json:"email"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Currency    string             `json:"currency"`
	Items       []OrderCreatedItem `json:"items"`
	OrderDate   time.Time          `json:"order_date"`
}

type OrderCreatedItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// KafkaNotifier publishes order-created events. Delivery is best-effort:
// the caller logs and drops failures, the order is already committed.
type KafkaNotifier struct {
	w *kafka.Writer
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
			MaxAttempts:  3,
		},
	}
}

func (n *KafkaNotifier) NotifyOrderCreated(ctx context.Context, order *model.Order) error {
	msg, err := newOrderCreatedMessage(order)
	if err != nil {
		return err
	}
	return n.w.WriteMessages(ctx, msg)
}

func newOrderCreatedMessage(order *model.Order) (kafka.Message, error) {
	evt := OrderCreatedEvent{
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		Email:       order.Customer.Email,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		Items:       make([]OrderCreatedItem, 0, len(order.Items)),
		OrderDate:   order.OrderDate,
	}
	for _, item := range order.Items {
		evt.Items = append(evt.Items, OrderCreatedItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventTypeOrderCreated)},
		},
	}, nil
}

func (n *KafkaNotifier) Close() error {
	return n.w.Close()
}
