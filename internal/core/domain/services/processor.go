package services

import (
	"log/slog"

	"logistics/internal/core/domain/model/order"
)

// IndustryProcessor applies vertical-specific business rules to orders: deep payload
// validation, enrichment at intake (priority escalation, delivery estimates, initial
// workflow status), and fulfillment time estimation in minutes.
//
// Processors never persist; they mutate the aggregate in memory and leave storage to
// the application layer.
type IndustryProcessor interface {
	// Category reports the vertical this processor serves.
	Category() order.IndustryCategory

	// Validate runs the vertical's deep payload checks, beyond the presence checks
	// IndustryValidator performs at intake.
	Validate(data order.IndustryData) ValidationResult

	// Process enriches a newly created order with the vertical's defaults.
	Process(o *order.Order) error

	// CalculateFulfillmentTime estimates fulfillment duration in minutes.
	CalculateFulfillmentTime(o *order.Order) int
}

// ProcessorFactory hands out the processor for a vertical or order type. Unknown
// categories fall back to the e-commerce processor with a logged warning so new
// verticals degrade instead of failing intake.
type ProcessorFactory struct {
	logger     *slog.Logger
	processors map[order.IndustryCategory]IndustryProcessor
}

// NewProcessorFactory creates a factory with all five vertical processors registered.
func NewProcessorFactory(logger *slog.Logger) *ProcessorFactory {
	workflow := NewStatusWorkflowEngine()

	return &ProcessorFactory{
		logger: logger,
		processors: map[order.IndustryCategory]IndustryProcessor{
			order.CategoryEcommerce:     NewEcommerceProcessor(logger, workflow),
			order.CategoryRetail:        NewRetailProcessor(logger, workflow),
			order.CategoryFoodDelivery:  NewFoodDeliveryProcessor(logger, workflow),
			order.CategoryManufacturing: NewManufacturingProcessor(logger, workflow),
			order.CategoryThirdParty:    NewThirdPartyProcessor(logger, workflow),
		},
	}
}

// GetProcessor returns the processor for the industry category, falling back to the
// e-commerce processor when none is registered.
func (f *ProcessorFactory) GetProcessor(category order.IndustryCategory) IndustryProcessor {
	processor, ok := f.processors[category]
	if !ok {
		f.logger.Warn("no processor registered for industry category, using e-commerce processor",
			"industry_category", string(category))
		return f.processors[order.CategoryEcommerce]
	}
	return processor
}

// GetProcessorForOrderType returns the processor for the order type's vertical.
func (f *ProcessorFactory) GetProcessorForOrderType(orderType order.Type) IndustryProcessor {
	return f.GetProcessor(order.CategoryFor(orderType))
}

// applyInitialStatus moves a freshly created order onto the first step of its
// workflow when it is still pending.
func applyInitialStatus(o *order.Order, workflow StatusWorkflowEngine) error {
	if o.Status() != order.StatusPending {
		return nil
	}
	return o.ApplyStatus(workflow.GetInitialStatus(o.OrderType()))
}
