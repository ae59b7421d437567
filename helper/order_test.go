package helper

import (
	"strings"
	"testing"
	"time"

	"cinebook/model"

	"github.com/stretchr/testify/assert"
)

func orderWithStatus(code, status string) model.Order {
	return model.Order{PublicCode: code, Status: status}
}

func TestSplitOrders(t *testing.T) {
	orders := []model.Order{
		orderWithStatus("ORD-1", model.OrderStatusConfirmed),
		orderWithStatus("ORD-2", model.OrderStatusCollected),
		orderWithStatus("ORD-3", model.OrderStatusReady),
		orderWithStatus("ORD-4", model.OrderStatusPreparing),
		orderWithStatus("ORD-5", model.OrderStatusCollected),
	}

	active, history := SplitOrders(orders)

	assert.Len(t, active, 3)
	assert.Len(t, history, 2)
	for _, order := range active {
		assert.NotEqual(t, model.OrderStatusCollected, order.Status)
	}
	for _, order := range history {
		assert.Equal(t, model.OrderStatusCollected, order.Status)
	}
	// Fetch order is preserved within each partition.
	assert.Equal(t, "ORD-1", active[0].PublicCode)
	assert.Equal(t, "ORD-2", history[0].PublicCode)
}

func TestSplitOrders_Empty(t *testing.T) {
	active, history := SplitOrders(nil)

	assert.NotNil(t, active)
	assert.NotNil(t, history)
	assert.Empty(t, active)
	assert.Empty(t, history)
}

func TestDedupeIds(t *testing.T) {
	assert.Equal(t, []uint{5, 3, 8}, DedupeIds([]uint{5, 5, 3, 8, 3}))
	assert.Equal(t, []uint{1}, DedupeIds([]uint{1}))
	assert.Empty(t, DedupeIds(nil))
}

func TestSeatLabels(t *testing.T) {
	order := model.Order{
		Seats: []model.OrderSeat{
			{SeatLabel: "A1"},
			{SeatLabel: "A2"},
		},
	}

	assert.Equal(t, []string{"A1", "A2"}, SeatLabels(order))
	assert.Empty(t, SeatLabels(model.Order{}))
}

func TestPickupPayload(t *testing.T) {
	showTime := time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)
	order := model.Order{
		PublicCode: "ORD-AB12CD34",
		PaymentRef: "pay_789",
		ShowTime:   showTime,
		Seats: []model.OrderSeat{
			{SeatLabel: "A1"},
			{SeatLabel: "A2"},
		},
	}

	payload := PickupPayload(order)
	parts := strings.Split(payload, "|")

	assert.Len(t, parts, 4)
	assert.Equal(t, "ORD-AB12CD34", parts[0])
	assert.Equal(t, "pay_789", parts[1])
	assert.Equal(t, "A1+A2", parts[2])
	assert.Equal(t, showTime.Format(time.RFC3339), parts[3])
}
