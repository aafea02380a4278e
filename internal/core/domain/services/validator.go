package services

import (
	"logistics/internal/core/domain/model/order"
)

// ValidationResult separates blocking problems from advisory ones. An order with a
// non-empty Errors slice must be rejected; Warnings are returned to the caller but
// do not block intake.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// IsValid reports whether the payload passed validation.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// IndustryValidator is a domain service checking that an order carries the vertical
// payload its order type requires, with that payload's mandatory fields populated.
type IndustryValidator struct{}

// NewIndustryValidator creates a new IndustryValidator instance.
func NewIndustryValidator() IndustryValidator {
	return IndustryValidator{}
}

// Validate checks the vertical payload against the order type's requirements.
// A nil payload is an error for every vertical; beyond presence, each vertical
// mandates its identifying fields (platform order id and email for e-commerce,
// PO number and vendor for retail, and so on). A food order without a preparation
// time passes with a warning since a default applies downstream.
func (v IndustryValidator) Validate(orderType order.Type, data order.IndustryData) ValidationResult {
	var result ValidationResult

	switch order.CategoryFor(orderType) {
	case order.CategoryEcommerce:
		ecom, ok := data.(*order.EcommerceData)
		if !ok || ecom == nil {
			result.Errors = append(result.Errors, "E-commerce orders require ecommerce_data")
			break
		}
		if ecom.PlatformOrderID == "" {
			result.Errors = append(result.Errors, "E-commerce orders require platform_order_id")
		}
		if ecom.CustomerEmail == "" {
			result.Errors = append(result.Errors, "E-commerce orders require customer_email")
		}

	case order.CategoryRetail:
		retail, ok := data.(*order.RetailData)
		if !ok || retail == nil {
			result.Errors = append(result.Errors, "Retail orders require retail_data")
			break
		}
		if retail.PONumber == "" {
			result.Errors = append(result.Errors, "Retail orders require po_number")
		}
		if retail.VendorID == "" {
			result.Errors = append(result.Errors, "Retail orders require vendor_id")
		}

	case order.CategoryFoodDelivery:
		food, ok := data.(*order.FoodDeliveryData)
		if !ok || food == nil {
			result.Errors = append(result.Errors, "Food delivery orders require food_delivery_data")
			break
		}
		if food.RestaurantID == "" {
			result.Errors = append(result.Errors, "Food delivery orders require restaurant_id")
		}
		if food.CustomerPhone == "" {
			result.Errors = append(result.Errors, "Food delivery orders require customer_phone")
		}
		if food.PreparationTimeMinutes <= 0 {
			result.Warnings = append(result.Warnings, "No preparation time specified, using default")
		}

	case order.CategoryManufacturing:
		mfg, ok := data.(*order.ManufacturingData)
		if !ok || mfg == nil {
			result.Errors = append(result.Errors, "Manufacturing orders require manufacturing_data")
			break
		}
		if mfg.ProductionOrderID == "" {
			result.Errors = append(result.Errors, "Manufacturing orders require production_order_id")
		}

	case order.CategoryThirdParty:
		tpl, ok := data.(*order.ThirdPartyData)
		if !ok || tpl == nil {
			result.Errors = append(result.Errors, "3PL orders require third_party_data")
			break
		}
		if tpl.ClientID == "" {
			result.Errors = append(result.Errors, "3PL orders require client_id")
		}
		if tpl.ServiceType == "" {
			result.Errors = append(result.Errors, "3PL orders require service_type")
		}
	}

	return result
}

// RequiredFields lists the fields an order of the given type must provide, in
// dotted-path form for the vertical payload fields.
func (v IndustryValidator) RequiredFields(orderType order.Type) []string {
	base := []string{"order_id", "customer_id", "items", "delivery_address"}

	switch orderType {
	case order.TypeEcommerceDirect:
		return append(base,
			"ecommerce_data.platform_order_id",
			"ecommerce_data.customer_email")
	case order.TypeRetailPurchaseOrder:
		return append(base,
			"retail_data.po_number",
			"retail_data.vendor_id",
			"retail_data.payment_terms")
	case order.TypeFoodDeliveryCustomer:
		return append(base,
			"food_delivery_data.restaurant_id",
			"food_delivery_data.customer_phone",
			"food_delivery_data.preparation_time_minutes")
	case order.TypeManufacturingProduction:
		return append(base,
			"manufacturing_data.production_order_id",
			"manufacturing_data.production_start_date")
	case order.TypeThirdPartyFulfillment:
		return append(base,
			"third_party_data.client_id",
			"third_party_data.service_type",
			"third_party_data.billing_model")
	}
	return base
}
