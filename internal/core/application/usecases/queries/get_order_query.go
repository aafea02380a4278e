// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database into response structs, bypassing
// the aggregate layer.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderQueryResponse is the read model for a single order.
type GetOrderQueryResponse struct {
	ID               string     `json:"order_id"`
	CustomerID       string     `json:"customer_id"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	OrderType        string     `json:"order_type"`
	OrderSource      string     `json:"order_source"`
	IndustryCategory string     `json:"industry_category"`
	SubtotalAmount   string     `json:"subtotal"`
	TotalAmount      string     `json:"total_amount"`
	WarehouseID      string     `json:"warehouse_id,omitempty"`
	AssignedDriver   string     `json:"assigned_driver,omitempty"`
	TrackingNumber   string     `json:"tracking_number,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
