package services

import (
	"log/slog"

	"logistics/internal/core/domain/model/order"
)

// serviceTypeFulfillmentMinutes holds the default estimate per 3PL service type when
// no delivery SLA is contracted.
var serviceTypeFulfillmentMinutes = map[string]int{
	"fulfillment": 240,
	"cross_dock":  120,
	"storage":     60,
	"returns":     180,
}

// ThirdPartyProcessor implements 3PL rules: priority tracks the contracted delivery
// SLA, and fulfillment time follows the SLA or the service type default.
type ThirdPartyProcessor struct {
	logger   *slog.Logger
	workflow StatusWorkflowEngine
}

// NewThirdPartyProcessor creates a new ThirdPartyProcessor instance.
func NewThirdPartyProcessor(logger *slog.Logger, workflow StatusWorkflowEngine) *ThirdPartyProcessor {
	return &ThirdPartyProcessor{logger: logger, workflow: workflow}
}

// Category reports the vertical this processor serves.
func (p *ThirdPartyProcessor) Category() order.IndustryCategory {
	return order.CategoryThirdParty
}

// Validate checks the 3PL payload: client identity, service configuration, and
// billing model are required; per-order billing additionally requires a rate. A
// sub-hour delivery SLA produces a warning.
func (p *ThirdPartyProcessor) Validate(data order.IndustryData) ValidationResult {
	var result ValidationResult

	tpl, ok := data.(*order.ThirdPartyData)
	if !ok || tpl == nil {
		result.Errors = append(result.Errors, "3PL orders require third_party_data")
		return result
	}

	required := []struct {
		name  string
		value string
	}{
		{"client_id", tpl.ClientID},
		{"client_name", tpl.ClientName},
		{"service_type", tpl.ServiceType},
		{"fulfillment_center", tpl.FulfillmentCenter},
		{"billing_model", tpl.BillingModel},
	}
	for _, field := range required {
		if field.value == "" {
			result.Errors = append(result.Errors, field.name+" is required for 3PL orders")
		}
	}

	if tpl.SLADeliveryTimeMinutes != nil && *tpl.SLADeliveryTimeMinutes < 60 {
		result.Warnings = append(result.Warnings, "SLA delivery time less than 1 hour may be difficult to meet")
	}

	if tpl.BillingModel == "per_order" && tpl.BillingRate == nil {
		result.Errors = append(result.Errors, "billing_rate required for per_order billing model")
	}

	return result
}

// Process derives priority from the contracted delivery SLA (under 4 hours is
// urgent, under 24 hours is high, otherwise normal) and applies the workflow's
// initial status.
func (p *ThirdPartyProcessor) Process(o *order.Order) error {
	p.logger.Info("processing 3PL order", "order_id", o.ID().String())

	if tpl, ok := o.IndustryData().(*order.ThirdPartyData); ok && tpl.SLADeliveryTimeMinutes != nil {
		slaHours := float64(*tpl.SLADeliveryTimeMinutes) / 60

		priority := order.PriorityNormal
		switch {
		case slaHours < 4:
			priority = order.PriorityUrgent
		case slaHours < 24:
			priority = order.PriorityHigh
		}
		if err := o.SetPriority(priority); err != nil {
			return err
		}
	}

	return applyInitialStatus(o, p.workflow)
}

// CalculateFulfillmentTime returns the contracted SLA in minutes when one exists,
// otherwise the service type default, otherwise 4 hours.
func (p *ThirdPartyProcessor) CalculateFulfillmentTime(o *order.Order) int {
	total := 240

	if tpl, ok := o.IndustryData().(*order.ThirdPartyData); ok {
		if tpl.SLADeliveryTimeMinutes != nil {
			total = *tpl.SLADeliveryTimeMinutes
		} else if minutes, ok := serviceTypeFulfillmentMinutes[tpl.ServiceType]; ok {
			total = minutes
		}
	}

	p.logger.Info("3PL order fulfillment estimated",
		"order_id", o.ID().String(), "minutes", total)
	return total
}
