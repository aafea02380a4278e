package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository provides persistence operations for Order aggregates.
// It abstracts the underlying storage mechanism and ensures proper
// domain object reconstruction.
//
// All write methods participate in the ambient unit of work when one is open, so a
// use case can persist an order and its side effects atomically.
type OrderRepository interface {
	// Add persists a new order aggregate to the repository.
	Add(ctx context.Context, o *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, o *order.Order) error

	// Get retrieves an order by its unique identifier. Returns an
	// ObjectNotFoundError when no order with that id exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllUnrouted retrieves orders that have no warehouse assigned and are not
	// yet in a terminal status, oldest first. The routing job drains this set.
	GetAllUnrouted(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves every order placed by the given customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
}
