package services

import (
	"log/slog"

	"logistics/internal/core/domain/model/order"
)

// EcommerceProcessor implements e-commerce order rules: VIP and loyal customers are
// escalated to high priority, and fulfillment time grows with line item count.
type EcommerceProcessor struct {
	logger   *slog.Logger
	workflow StatusWorkflowEngine
}

// NewEcommerceProcessor creates a new EcommerceProcessor instance.
func NewEcommerceProcessor(logger *slog.Logger, workflow StatusWorkflowEngine) *EcommerceProcessor {
	return &EcommerceProcessor{logger: logger, workflow: workflow}
}

// Category reports the vertical this processor serves.
func (p *EcommerceProcessor) Category() order.IndustryCategory {
	return order.CategoryEcommerce
}

// Validate checks the e-commerce payload beyond intake presence checks: platform
// identity and customer e-mail are required, subscription orders need a subscription
// id, and missing coordination fields produce warnings.
func (p *EcommerceProcessor) Validate(data order.IndustryData) ValidationResult {
	var result ValidationResult

	ecom, ok := data.(*order.EcommerceData)
	if !ok || ecom == nil {
		result.Errors = append(result.Errors, "E-commerce orders require ecommerce_data")
		return result
	}

	if ecom.PlatformOrderID == "" {
		result.Errors = append(result.Errors, "platform_order_id is required for e-commerce orders")
	}
	if ecom.PlatformName == "" {
		result.Errors = append(result.Errors, "platform_name is required for e-commerce orders")
	}
	if ecom.CustomerEmail == "" {
		result.Errors = append(result.Errors, "customer_email is required for e-commerce orders")
	}

	if ecom.CustomerPhone == "" {
		result.Warnings = append(result.Warnings, "customer_phone is recommended for delivery coordination")
	}
	if ecom.CustomerSegment == "" {
		result.Warnings = append(result.Warnings, "customer_segment helps with order prioritization")
	}

	if ecom.IsSubscription {
		if ecom.SubscriptionID == "" {
			result.Errors = append(result.Errors, "subscription_id required for subscription orders")
		}
		if ecom.NextDeliveryDate == nil {
			result.Warnings = append(result.Warnings, "next_delivery_date recommended for subscription orders")
		}
	}

	return result
}

// Process escalates VIP and loyal customers to high priority and applies the
// workflow's initial status.
func (p *EcommerceProcessor) Process(o *order.Order) error {
	p.logger.Info("processing e-commerce order", "order_id", o.ID().String())

	if ecom, ok := o.IndustryData().(*order.EcommerceData); ok {
		switch ecom.CustomerSegment {
		case "VIP", "loyal":
			if err := o.SetPriority(order.PriorityHigh); err != nil {
				return err
			}
		}
	}

	return applyInitialStatus(o, p.workflow)
}

// CalculateFulfillmentTime estimates 30 minutes base plus 5 minutes per line item,
// scaled by priority: urgent halves the estimate, high takes three quarters, low
// takes half again as long.
func (p *EcommerceProcessor) CalculateFulfillmentTime(o *order.Order) int {
	baseTime := 30
	itemTime := len(o.Items()) * 5

	multiplier := 1.0
	switch o.Priority() {
	case order.PriorityUrgent:
		multiplier = 0.5
	case order.PriorityHigh:
		multiplier = 0.75
	case order.PriorityLow:
		multiplier = 1.5
	}

	total := int(float64(baseTime+itemTime) * multiplier)

	p.logger.Info("e-commerce order fulfillment estimated",
		"order_id", o.ID().String(), "minutes", total)
	return total
}
