package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var ErrGetUnroutedOrdersQueryIsNotConstructed = errors.New(
	"GetUnroutedOrdersQuery must be created via NewGetUnroutedOrdersQuery constructor",
)

// GetUnroutedOrdersQuery retrieves every open order with no warehouse assigned.
// The routing job and the operations dashboard both drain this set.
//
// Example:
//
//	query := NewGetUnroutedOrdersQuery()
//	handler := NewGetUnroutedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unrouted orders: %w", err)
//	}
//	fmt.Printf("%d orders awaiting routing\n", len(orders))
type GetUnroutedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnroutedOrdersQuery creates a query to retrieve unrouted orders.
// This is a parameterless query that fetches all open unassigned orders.
func NewGetUnroutedOrdersQuery() GetUnroutedOrdersQuery {
	return GetUnroutedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnroutedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnroutedOrdersQueryIsNotConstructed)
}

// GetUnroutedOrdersQueryResponse represents one order awaiting routing.
type GetUnroutedOrdersQueryResponse struct {
	ID               string    `json:"order_id"`
	CustomerID       string    `json:"customer_id"`
	OrderType        string    `json:"order_type"`
	IndustryCategory string    `json:"industry_category"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	CreatedAt        time.Time `json:"created_at"`
}
