package http

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// Error is the uniform error body for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one line item in an order creation request.
type ItemRequest struct {
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	BatchNumber string `json:"batch_number,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// CreateOrderRequest is the body for POST /api/v1/orders. Exactly one of the five
// vertical payload fields may be set, matching the order type's vertical.
type CreateOrderRequest struct {
	CustomerID            string            `json:"customer_id"`
	OrderType             string            `json:"order_type"`
	OrderSource           string            `json:"order_source"`
	Items                 []ItemRequest     `json:"items"`
	DeliveryAddress       map[string]string `json:"delivery_address"`
	DeliveryInstructions  string            `json:"delivery_instructions,omitempty"`
	RequestedDeliveryDate *time.Time        `json:"requested_delivery_date,omitempty"`
	Notes                 string            `json:"notes,omitempty"`
	Tags                  []string          `json:"tags,omitempty"`

	EcommerceData     *order.EcommerceData     `json:"ecommerce_data,omitempty"`
	RetailData        *order.RetailData        `json:"retail_data,omitempty"`
	FoodDeliveryData  *order.FoodDeliveryData  `json:"food_delivery_data,omitempty"`
	ManufacturingData *order.ManufacturingData `json:"manufacturing_data,omitempty"`
	ThirdPartyData    *order.ThirdPartyData    `json:"third_party_data,omitempty"`
}

var errMultiplePayloads = errors.New("at most one industry payload may be provided")

// industryData extracts the single vertical payload from the request, nil when
// none was provided.
func (r CreateOrderRequest) industryData() (order.IndustryData, error) {
	var data order.IndustryData
	count := 0

	if r.EcommerceData != nil {
		data, count = r.EcommerceData, count+1
	}
	if r.RetailData != nil {
		data, count = r.RetailData, count+1
	}
	if r.FoodDeliveryData != nil {
		data, count = r.FoodDeliveryData, count+1
	}
	if r.ManufacturingData != nil {
		data, count = r.ManufacturingData, count+1
	}
	if r.ThirdPartyData != nil {
		data, count = r.ThirdPartyData, count+1
	}

	if count > 1 {
		return nil, errMultiplePayloads
	}
	return data, nil
}

// items converts the request's line items into domain items.
func (r CreateOrderRequest) items() ([]order.Item, error) {
	items := make([]order.Item, 0, len(r.Items))
	for _, req := range r.Items {
		unitPrice, err := kernel.NewMoneyFromString(req.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(req.SKU, req.ProductName, req.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		if req.BatchNumber != "" {
			item = item.WithBatchNumber(req.BatchNumber)
		}
		if req.Notes != "" {
			item = item.WithNotes(req.Notes)
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateOrderResponse is the body returned by POST /api/v1/orders.
type CreateOrderResponse struct {
	OrderID          string   `json:"order_id"`
	Status           string   `json:"status"`
	IndustryCategory string   `json:"industry_category"`
	Warnings         []string `json:"warnings,omitempty"`
}

// UpdateStatusRequest is the body for POST /api/v1/orders/:orderID/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest is the body for POST /api/v1/orders/:orderID/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ValidateOrderRequest is the body for POST /api/v1/orders/validate.
type ValidateOrderRequest struct {
	OrderType string `json:"order_type"`

	EcommerceData     *order.EcommerceData     `json:"ecommerce_data,omitempty"`
	RetailData        *order.RetailData        `json:"retail_data,omitempty"`
	FoodDeliveryData  *order.FoodDeliveryData  `json:"food_delivery_data,omitempty"`
	ManufacturingData *order.ManufacturingData `json:"manufacturing_data,omitempty"`
	ThirdPartyData    *order.ThirdPartyData    `json:"third_party_data,omitempty"`
}

func (r ValidateOrderRequest) industryData() (order.IndustryData, error) {
	return CreateOrderRequest{
		EcommerceData:     r.EcommerceData,
		RetailData:        r.RetailData,
		FoodDeliveryData:  r.FoodDeliveryData,
		ManufacturingData: r.ManufacturingData,
		ThirdPartyData:    r.ThirdPartyData,
	}.industryData()
}

// ValidateOrderResponse is the body returned by POST /api/v1/orders/validate.
type ValidateOrderResponse struct {
	Valid          bool     `json:"valid"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
	RequiredFields []string `json:"required_fields"`
}
