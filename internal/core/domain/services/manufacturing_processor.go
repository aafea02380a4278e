package services

import (
	"log/slog"

	"logistics/internal/core/domain/model/order"
)

// ManufacturingProcessor implements manufacturing rules: production orders run high
// priority, and fulfillment time follows the scheduled production window when one
// is set.
type ManufacturingProcessor struct {
	logger   *slog.Logger
	workflow StatusWorkflowEngine
}

// NewManufacturingProcessor creates a new ManufacturingProcessor instance.
func NewManufacturingProcessor(logger *slog.Logger, workflow StatusWorkflowEngine) *ManufacturingProcessor {
	return &ManufacturingProcessor{logger: logger, workflow: workflow}
}

// Category reports the vertical this processor serves.
func (p *ManufacturingProcessor) Category() order.IndustryCategory {
	return order.CategoryManufacturing
}

// Validate checks the manufacturing payload: a production order id is required and
// the production window must not end before it starts. Missing quality control
// points, missing inspection requirements, and traceability without a batch number
// produce warnings.
func (p *ManufacturingProcessor) Validate(data order.IndustryData) ValidationResult {
	var result ValidationResult

	mfg, ok := data.(*order.ManufacturingData)
	if !ok || mfg == nil {
		result.Errors = append(result.Errors, "Manufacturing orders require manufacturing_data")
		return result
	}

	if mfg.ProductionOrderID == "" {
		result.Errors = append(result.Errors, "production_order_id is required for manufacturing orders")
	}

	if mfg.ProductionStartDate != nil && mfg.ProductionEndDate != nil {
		if mfg.ProductionEndDate.Before(*mfg.ProductionStartDate) {
			result.Errors = append(result.Errors, "Production end date cannot be before start date")
		}
	}

	if len(mfg.QualityControlPoints) == 0 {
		result.Warnings = append(result.Warnings, "No quality control points specified")
	}
	if len(mfg.InspectionRequirements) == 0 {
		result.Warnings = append(result.Warnings, "No inspection requirements specified")
	}
	if mfg.TraceabilityRequired && mfg.ProductionBatchNumber == "" {
		result.Warnings = append(result.Warnings, "Traceability required but no batch number specified")
	}

	return result
}

// Process marks the order high priority and applies the workflow's initial status.
func (p *ManufacturingProcessor) Process(o *order.Order) error {
	p.logger.Info("processing manufacturing order", "order_id", o.ID().String())

	if err := o.SetPriority(order.PriorityHigh); err != nil {
		return err
	}

	return applyInitialStatus(o, p.workflow)
}

// CalculateFulfillmentTime follows the scheduled production window in minutes when
// both boundary dates are set, falling back to 24 hours.
func (p *ManufacturingProcessor) CalculateFulfillmentTime(o *order.Order) int {
	if mfg, ok := o.IndustryData().(*order.ManufacturingData); ok {
		if mfg.ProductionStartDate != nil && mfg.ProductionEndDate != nil {
			return int(mfg.ProductionEndDate.Sub(*mfg.ProductionStartDate).Minutes())
		}
	}

	p.logger.Info("manufacturing order using default fulfillment time",
		"order_id", o.ID().String())
	return 1440
}
