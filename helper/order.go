package helper

import (
	"cinebook/model"
	"strings"
	"time"
)

// SplitOrders partitions a customer's orders into active pickups and
// collected history with a single pass over the fetched set.
func SplitOrders(orders []model.Order) (active []model.Order, history []model.Order) {
	active = []model.Order{}
	history = []model.Order{}
	for _, order := range orders {
		if order.Status == model.OrderStatusCollected {
			history = append(history, order)
		} else {
			active = append(active, order)
		}
	}
	return active, history
}

// DedupeIds drops repeated ids, keeping first-seen order, so a request
// naming the same seat twice books it once.
func DedupeIds(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}

// SeatLabels collects the denormalized seat labels of an order in grid order.
func SeatLabels(order model.Order) []string {
	labels := make([]string, 0, len(order.Seats))
	for _, seat := range order.Seats {
		labels = append(labels, seat.SeatLabel)
	}
	return labels
}

// PickupPayload builds the scannable content for the pickup counter:
// order code, payment reference, seat labels and show time.
func PickupPayload(order model.Order) string {
	return strings.Join([]string{
		order.PublicCode,
		order.PaymentRef,
		strings.Join(SeatLabels(order), "+"),
		order.ShowTime.Format(time.RFC3339),
	}, "|")
}
