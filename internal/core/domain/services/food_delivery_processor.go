package services

import (
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/order"
)

const (
	// defaultPrepTimeMinutes applies when a food order carries no preparation time.
	defaultPrepTimeMinutes = 25

	// averageDeliveryMinutes is the flat last-mile delivery estimate.
	averageDeliveryMinutes = 20
)

// FoodDeliveryProcessor implements food delivery rules: every order is high
// priority, and delivery estimates derive from restaurant preparation time plus a
// flat last-mile window.
type FoodDeliveryProcessor struct {
	logger   *slog.Logger
	workflow StatusWorkflowEngine
}

// NewFoodDeliveryProcessor creates a new FoodDeliveryProcessor instance.
func NewFoodDeliveryProcessor(logger *slog.Logger, workflow StatusWorkflowEngine) *FoodDeliveryProcessor {
	return &FoodDeliveryProcessor{logger: logger, workflow: workflow}
}

// Category reports the vertical this processor serves.
func (p *FoodDeliveryProcessor) Category() order.IndustryCategory {
	return order.CategoryFoodDelivery
}

// Validate checks the food payload: restaurant identity, customer phone, and
// preparation time are required. Delivery windows under 15 minutes or over an hour,
// missing temperature requirements, and allergen info without dietary requirements
// produce warnings.
func (p *FoodDeliveryProcessor) Validate(data order.IndustryData) ValidationResult {
	var result ValidationResult

	food, ok := data.(*order.FoodDeliveryData)
	if !ok || food == nil {
		result.Errors = append(result.Errors, "Food delivery orders require food_delivery_data")
		return result
	}

	if food.RestaurantID == "" {
		result.Errors = append(result.Errors, "restaurant_id is required for food delivery orders")
	}
	if food.RestaurantName == "" {
		result.Errors = append(result.Errors, "restaurant_name is required for food delivery orders")
	}
	if food.CustomerPhone == "" {
		result.Errors = append(result.Errors, "customer_phone is required for food delivery orders")
	}
	if food.PreparationTimeMinutes <= 0 {
		result.Errors = append(result.Errors, "preparation_time_minutes is required for food delivery orders")
	}

	if food.DeliveryWindowStart != nil && food.DeliveryWindowEnd != nil {
		window := food.DeliveryWindowEnd.Sub(*food.DeliveryWindowStart)
		if window < 15*time.Minute {
			result.Warnings = append(result.Warnings, "Delivery window is very tight (< 15 minutes)")
		} else if window > time.Hour {
			result.Warnings = append(result.Warnings, "Delivery window is quite wide (> 1 hour)")
		}
	}

	if food.TemperatureRequirements == "" {
		result.Warnings = append(result.Warnings, "Temperature requirements not specified")
	}
	if len(food.AllergenInfo) > 0 && len(food.SpecialDietaryRequirements) == 0 {
		result.Warnings = append(result.Warnings, "Allergen info provided but dietary requirements not specified")
	}

	return result
}

// Process marks the order high priority, computes the estimated delivery date from
// preparation time plus the last-mile window, and applies the workflow's initial
// status.
func (p *FoodDeliveryProcessor) Process(o *order.Order) error {
	p.logger.Info("processing food delivery order", "order_id", o.ID().String())

	if err := o.SetPriority(order.PriorityHigh); err != nil {
		return err
	}

	if food, ok := o.IndustryData().(*order.FoodDeliveryData); ok {
		prep := food.PreparationTimeMinutes
		if prep <= 0 {
			prep = defaultPrepTimeMinutes
		}
		estimate := time.Now().UTC().Add(time.Duration(prep+averageDeliveryMinutes) * time.Minute)
		o.SetEstimatedDeliveryDate(estimate)
	}

	return applyInitialStatus(o, p.workflow)
}

// CalculateFulfillmentTime estimates preparation time plus 20 minutes delivery,
// or 45 minutes when no payload is attached.
func (p *FoodDeliveryProcessor) CalculateFulfillmentTime(o *order.Order) int {
	total := 45

	if food, ok := o.IndustryData().(*order.FoodDeliveryData); ok {
		prep := food.PreparationTimeMinutes
		if prep <= 0 {
			prep = defaultPrepTimeMinutes
		}
		total = prep + averageDeliveryMinutes
	}

	p.logger.Info("food delivery order fulfillment estimated",
		"order_id", o.ID().String(), "minutes", total)
	return total
}
