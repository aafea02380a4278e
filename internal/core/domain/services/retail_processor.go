package services

import (
	"log/slog"
	"strings"

	"logistics/internal/core/domain/model/order"
)

// RetailProcessor implements retail distribution rules: delivery terms drive
// priority escalation, and inspection or quality requirements extend fulfillment.
type RetailProcessor struct {
	logger   *slog.Logger
	workflow StatusWorkflowEngine
}

// NewRetailProcessor creates a new RetailProcessor instance.
func NewRetailProcessor(logger *slog.Logger, workflow StatusWorkflowEngine) *RetailProcessor {
	return &RetailProcessor{logger: logger, workflow: workflow}
}

// Category reports the vertical this processor serves.
func (p *RetailProcessor) Category() order.IndustryCategory {
	return order.CategoryRetail
}

// Validate checks the retail payload: purchase order identity, vendor, and payment
// and delivery terms are required. Hazmat without safety data sheets and quality
// standards without inspection produce warnings.
func (p *RetailProcessor) Validate(data order.IndustryData) ValidationResult {
	var result ValidationResult

	retail, ok := data.(*order.RetailData)
	if !ok || retail == nil {
		result.Errors = append(result.Errors, "Retail orders require retail_data")
		return result
	}

	required := []struct {
		name  string
		value string
	}{
		{"po_number", retail.PONumber},
		{"vendor_id", retail.VendorID},
		{"vendor_name", retail.VendorName},
		{"payment_terms", retail.PaymentTerms},
		{"delivery_terms", retail.DeliveryTerms},
	}
	for _, field := range required {
		if field.value == "" {
			result.Errors = append(result.Errors, field.name+" is required for retail orders")
		}
	}

	if retail.HazmatClassification != "" && !retail.SafetyDataSheetsRequired {
		result.Warnings = append(result.Warnings, "Hazmat orders typically require safety data sheets")
	}
	if len(retail.QualityStandards) > 0 && !retail.InspectionRequired {
		result.Warnings = append(result.Warnings, "Quality standards specified but inspection not required")
	}

	return result
}

// Process escalates priority from the delivery terms (URGENT or EXPEDITED markers)
// and applies the workflow's initial status.
func (p *RetailProcessor) Process(o *order.Order) error {
	p.logger.Info("processing retail order", "order_id", o.ID().String())

	if retail, ok := o.IndustryData().(*order.RetailData); ok {
		terms := strings.ToUpper(retail.DeliveryTerms)
		switch {
		case strings.Contains(terms, "URGENT"):
			if err := o.SetPriority(order.PriorityUrgent); err != nil {
				return err
			}
		case strings.Contains(terms, "EXPEDITED"):
			if err := o.SetPriority(order.PriorityHigh); err != nil {
				return err
			}
		}
	}

	return applyInitialStatus(o, p.workflow)
}

// CalculateFulfillmentTime estimates 4 hours base for B2B handling, plus 2 hours
// when inspection is required and 1 hour when quality standards apply.
func (p *RetailProcessor) CalculateFulfillmentTime(o *order.Order) int {
	total := 240

	if retail, ok := o.IndustryData().(*order.RetailData); ok {
		if retail.InspectionRequired {
			total += 120
		}
		if len(retail.QualityStandards) > 0 {
			total += 60
		}
	}

	p.logger.Info("retail order fulfillment estimated",
		"order_id", o.ID().String(), "minutes", total)
	return total
}
