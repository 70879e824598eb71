package notify

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/model"
)

func TestNewOrderCreatedMessage(t *testing.T) {
	order := &model.Order{
		OrderID:     7,
		OrderNumber: "ORD-1700000000000000000",
		TotalAmount: decimal.NewFromInt(20),
		Currency:    "USD",
		Customer:    model.CustomerInfo{Email: "buyer@example.com"},
		Items: []model.OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		},
	}

	msg, err := newOrderCreatedMessage(order)
	require.NoError(t, err)

	require.Equal(t, []byte(order.OrderNumber), msg.Key)
	require.Len(t, msg.Headers, 1)
	require.Equal(t, "event_type", msg.Headers[0].Key)
	require.Equal(t, []byte("order_created"), msg.Headers[0].Value)

	var evt OrderCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	require.Equal(t, uint(7), evt.OrderID)
	require.Equal(t, "buyer@example.com", evt.Email)
	require.True(t, evt.TotalAmount.Equal(decimal.NewFromInt(20)))
	require.Len(t, evt.Items, 2)
	require.Equal(t, uint(1), evt.Items[0].ProductID)
	require.Equal(t, 2, evt.Items[0].Quantity)
}
