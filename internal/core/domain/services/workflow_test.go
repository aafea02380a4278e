package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

func TestStatusWorkflowEngine_GetWorkflow(t *testing.T) {
	engine := services.NewStatusWorkflowEngine()

	t.Run("should return the full ecommerce direct sequence", func(t *testing.T) {
		workflow := engine.GetWorkflow(order.TypeEcommerceDirect)

		assert.Equal(t, []order.Status{
			order.StatusPending,
			order.StatusConfirmed,
			order.StatusProcessing,
			order.StatusPicked,
			order.StatusPacked,
			order.StatusShipped,
			order.StatusOutForDelivery,
			order.StatusDelivered,
		}, workflow)
	})

	t.Run("should end storage orders at inventoried", func(t *testing.T) {
		workflow := engine.GetWorkflow(order.TypeThirdPartyStorage)

		assert.Equal(t, order.StatusInventoried, workflow[len(workflow)-1])
	})

	t.Run("should fall back to ecommerce direct for unregistered types", func(t *testing.T) {
		assert.Equal(t,
			engine.GetWorkflow(order.TypeEcommerceDirect),
			engine.GetWorkflow(order.Type("mystery")))
	})
}

func TestStatusWorkflowEngine_GetInitialStatus(t *testing.T) {
	engine := services.NewStatusWorkflowEngine()

	assert.Equal(t, order.StatusPending, engine.GetInitialStatus(order.TypeEcommerceDirect))
	assert.Equal(t, order.StatusPending, engine.GetInitialStatus(order.TypeManufacturingProduction))
}

func TestStatusWorkflowEngine_GetNextStatuses(t *testing.T) {
	engine := services.NewStatusWorkflowEngine()

	t.Run("should offer the next step plus cancellation", func(t *testing.T) {
		next := engine.GetNextStatuses(order.StatusPending, order.TypeEcommerceDirect)

		assert.Equal(t, []order.Status{order.StatusConfirmed, order.StatusCancelled}, next)
	})

	t.Run("should offer returns only after delivery", func(t *testing.T) {
		next := engine.GetNextStatuses(order.StatusDelivered, order.TypeEcommerceDirect)

		assert.Equal(t, []order.Status{order.StatusReturned}, next)
		assert.NotContains(t, next, order.StatusCancelled)
	})

	t.Run("should offer nothing from a status outside the workflow", func(t *testing.T) {
		next := engine.GetNextStatuses(order.StatusPreparing, order.TypeEcommerceDirect)
		assert.Empty(t, next)
	})

	t.Run("should step the manufacturing production path through approval", func(t *testing.T) {
		next := engine.GetNextStatuses(order.StatusPending, order.TypeManufacturingProduction)

		assert.Equal(t, []order.Status{order.StatusApproved, order.StatusCancelled}, next)
	})

	t.Run("pickup orders end at picked up with only cancellation left", func(t *testing.T) {
		next := engine.GetNextStatuses(order.StatusPickedUp, order.TypeFoodDeliveryPickup)

		assert.Equal(t, []order.Status{order.StatusCancelled}, next)
	})
}

func TestStatusWorkflowEngine_IsValidTransition(t *testing.T) {
	engine := services.NewStatusWorkflowEngine()

	t.Run("should allow stepping forward", func(t *testing.T) {
		assert.True(t, engine.IsValidTransition(
			order.StatusPending, order.StatusConfirmed, order.TypeEcommerceDirect))
	})

	t.Run("should reject skipping ahead to delivered", func(t *testing.T) {
		assert.False(t, engine.IsValidTransition(
			order.StatusPending, order.StatusDelivered, order.TypeEcommerceDirect))
	})

	t.Run("should allow cancelling mid-flight", func(t *testing.T) {
		assert.True(t, engine.IsValidTransition(
			order.StatusPicked, order.StatusCancelled, order.TypeEcommerceDirect))
	})

	t.Run("should reject returning an undelivered order", func(t *testing.T) {
		assert.False(t, engine.IsValidTransition(
			order.StatusShipped, order.StatusReturned, order.TypeEcommerceDirect))
	})

	t.Run("should allow returning a delivered order", func(t *testing.T) {
		assert.True(t, engine.IsValidTransition(
			order.StatusDelivered, order.StatusReturned, order.TypeEcommerceDirect))
	})

	t.Run("should honour retail inspection steps", func(t *testing.T) {
		assert.True(t, engine.IsValidTransition(
			order.StatusProcessing, order.StatusInspected, order.TypeRetailPurchaseOrder))
		assert.False(t, engine.IsValidTransition(
			order.StatusProcessing, order.StatusReceived, order.TypeRetailPurchaseOrder))
	})
}

func TestStatusWorkflowEngine_Completion(t *testing.T) {
	engine := services.NewStatusWorkflowEngine()

	t.Run("should treat terminal statuses as completed", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusDelivered,
			order.StatusCancelled,
			order.StatusReturned,
			order.StatusInventoried,
			order.StatusPickedUp,
		} {
			assert.True(t, engine.IsCompleted(s), string(s))
		}
	})

	t.Run("should treat in-flight statuses as open", func(t *testing.T) {
		assert.False(t, engine.IsCompleted(order.StatusPending))
		assert.False(t, engine.IsCompleted(order.StatusShipped))
	})

	t.Run("should enumerate all completion statuses", func(t *testing.T) {
		assert.ElementsMatch(t, []order.Status{
			order.StatusDelivered,
			order.StatusCancelled,
			order.StatusReturned,
			order.StatusInventoried,
			order.StatusPickedUp,
		}, engine.CompletionStatuses())
	})
}
