package services

import (
	"logistics/internal/core/domain/model/order"
)

// workflows maps each order type to its ordered happy-path status sequence.
// Transitions move one step forward; cancellation and returns are handled as
// cross-cutting exits in GetNextStatuses rather than appearing in the sequences.
var workflows = map[order.Type][]order.Status{
	order.TypeEcommerceDirect: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusPicked,
		order.StatusPacked,
		order.StatusShipped,
		order.StatusOutForDelivery,
		order.StatusDelivered,
	},
	order.TypeEcommerceMarketplace: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusPicked,
		order.StatusPacked,
		order.StatusShipped,
		order.StatusOutForDelivery,
		order.StatusDelivered,
	},
	order.TypeEcommerceSubscription: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusPicked,
		order.StatusPacked,
		order.StatusShipped,
		order.StatusOutForDelivery,
		order.StatusDelivered,
	},

	order.TypeRetailPurchaseOrder: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusInspected,
		order.StatusApproved,
		order.StatusReceived,
		order.StatusInventoried,
	},
	order.TypeRetailTransfer: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPicked,
		order.StatusPacked,
		order.StatusShipped,
		order.StatusReceived,
		order.StatusInventoried,
	},
	order.TypeRetailRestock: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusPicked,
		order.StatusPacked,
		order.StatusShipped,
		order.StatusReceived,
		order.StatusInventoried,
	},

	order.TypeFoodDeliveryCustomer: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPreparing,
		order.StatusReadyForPickup,
		order.StatusPickedUp,
		order.StatusOutForDelivery,
		order.StatusDelivered,
	},
	order.TypeFoodDeliveryCatering: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPreparing,
		order.StatusReadyForPickup,
		order.StatusPickedUp,
		order.StatusDelivered,
	},
	order.TypeFoodDeliveryPickup: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPreparing,
		order.StatusReadyForPickup,
		order.StatusPickedUp,
	},

	order.TypeManufacturingProduction: {
		order.StatusPending,
		order.StatusApproved,
		order.StatusMaterialsAllocated,
		order.StatusProductionStarted,
		order.StatusProductionInProgress,
		order.StatusProductionCompleted,
		order.StatusQualityChecked,
		order.StatusPackaged,
		order.StatusShipped,
	},
	order.TypeManufacturingRawMaterials: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusShipped,
		order.StatusReceived,
		order.StatusInspected,
		order.StatusApproved,
		order.StatusInventoried,
	},
	order.TypeManufacturingFinishedGoods: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPicked,
		order.StatusPacked,
		order.StatusShipped,
		order.StatusDelivered,
	},

	order.TypeThirdPartyFulfillment: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusReceived,
		order.StatusInventoried,
		order.StatusProcessing,
		order.StatusPicked,
		order.StatusPacked,
		order.StatusShipped,
		order.StatusDelivered,
	},
	order.TypeThirdPartyCrossDock: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusReceived,
		order.StatusProcessing,
		order.StatusShipped,
		order.StatusDelivered,
	},
	order.TypeThirdPartyStorage: {
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusReceived,
		order.StatusInventoried,
	},
}

// completionStatuses are terminal states across all workflows. INVENTORIED closes
// storage and receiving orders; PICKED_UP closes customer pickup orders.
var completionStatuses = map[order.Status]bool{
	order.StatusDelivered:   true,
	order.StatusCancelled:   true,
	order.StatusReturned:    true,
	order.StatusInventoried: true,
	order.StatusPickedUp:    true,
}

// StatusWorkflowEngine is a domain service answering which status transitions each
// order type allows. Each order type owns a linear happy path; cancellation is
// reachable from any non-terminal point and returns only follow delivery.
//
// Order types without a registered workflow fall back to the standard e-commerce
// direct sequence, so newly added types degrade to a sane default instead of
// rejecting every transition.
type StatusWorkflowEngine struct{}

// NewStatusWorkflowEngine creates a new StatusWorkflowEngine instance.
func NewStatusWorkflowEngine() StatusWorkflowEngine {
	return StatusWorkflowEngine{}
}

// GetWorkflow returns the ordered status sequence for the given order type. Unknown
// types receive the e-commerce direct workflow.
func (e StatusWorkflowEngine) GetWorkflow(orderType order.Type) []order.Status {
	workflow, ok := workflows[orderType]
	if !ok {
		workflow = workflows[order.TypeEcommerceDirect]
	}
	return append([]order.Status(nil), workflow...)
}

// GetInitialStatus returns the first status of the order type's workflow.
func (e StatusWorkflowEngine) GetInitialStatus(orderType order.Type) order.Status {
	workflow := e.GetWorkflow(orderType)
	if len(workflow) == 0 {
		return order.StatusPending
	}
	return workflow[0]
}

// GetNextStatuses returns the statuses reachable from the current one:
//   - the next step of the happy path, when one remains
//   - cancelled, unless the order is already delivered or cancelled
//   - returned, only from delivered
//
// A current status that does not belong to the order type's workflow yields an
// empty set; callers decide how to surface that.
func (e StatusWorkflowEngine) GetNextStatuses(current order.Status, orderType order.Type) []order.Status {
	workflow := e.GetWorkflow(orderType)

	currentIndex := -1
	for i, s := range workflow {
		if s == current {
			currentIndex = i
			break
		}
	}
	if currentIndex < 0 {
		return nil
	}

	var next []order.Status
	if currentIndex < len(workflow)-1 {
		next = append(next, workflow[currentIndex+1])
	}
	if current != order.StatusDelivered && current != order.StatusCancelled {
		next = append(next, order.StatusCancelled)
	}
	if current == order.StatusDelivered {
		next = append(next, order.StatusReturned)
	}
	return next
}

// IsValidTransition reports whether moving from current to next is allowed for the
// order type.
func (e StatusWorkflowEngine) IsValidTransition(current, next order.Status, orderType order.Type) bool {
	for _, allowed := range e.GetNextStatuses(current, orderType) {
		if allowed == next {
			return true
		}
	}
	return false
}

// CompletionStatuses returns every status that closes an order.
func (e StatusWorkflowEngine) CompletionStatuses() []order.Status {
	statuses := make([]order.Status, 0, len(completionStatuses))
	for s := range completionStatuses {
		statuses = append(statuses, s)
	}
	return statuses
}

// IsCompleted reports whether the status closes an order.
func (e StatusWorkflowEngine) IsCompleted(status order.Status) bool {
	return completionStatuses[status]
}
