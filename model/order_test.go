package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardChain(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusConfirmed, OrderStatusPreparing))
	assert.True(t, CanTransition(OrderStatusPreparing, OrderStatusReady))
	assert.True(t, CanTransition(OrderStatusReady, OrderStatusCollected))
}

func TestCanTransition_BackwardRejected(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusPreparing, OrderStatusConfirmed))
	assert.False(t, CanTransition(OrderStatusReady, OrderStatusPreparing))
	assert.False(t, CanTransition(OrderStatusCollected, OrderStatusReady))
	assert.False(t, CanTransition(OrderStatusCollected, OrderStatusConfirmed))
}

func TestCanTransition_SameStatusIsIdempotent(t *testing.T) {
	for _, status := range []string{
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusCollected,
	} {
		assert.True(t, CanTransition(status, status), "re-applying %s must be allowed", status)
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusConfirmed, "CANCELLED"))
	assert.False(t, CanTransition("PENDING", OrderStatusPreparing))
	assert.False(t, CanTransition("", ""))
}

func TestIsKnownStatus(t *testing.T) {
	assert.True(t, IsKnownStatus(OrderStatusConfirmed))
	assert.True(t, IsKnownStatus(OrderStatusCollected))
	assert.False(t, IsKnownStatus("PAID"))
	assert.False(t, IsKnownStatus("confirmed"))
}

// Walks the full pickup workflow the way the counter staff does.
func TestStatusWorkflowScenario(t *testing.T) {
	current := OrderStatusConfirmed

	for _, next := range []string{OrderStatusPreparing, OrderStatusReady, OrderStatusCollected} {
		assert.True(t, CanTransition(current, next))
		current = next
	}
	assert.Equal(t, OrderStatusCollected, current)

	// Terminal: nothing but the idempotent no-op remains.
	assert.False(t, CanTransition(current, OrderStatusReady))
	assert.True(t, CanTransition(current, current))
}
