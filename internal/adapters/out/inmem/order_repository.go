// Package inmem provides in-memory implementations of the persistence ports for
// tests and local development. The repository stores aggregate snapshots, so
// callers never share mutable aggregate state with the store.
package inmem

import (
	"context"
	"sort"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// OrderRepository is a thread-safe in-memory order store.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]order.Snapshot
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]order.Snapshot),
	}
}

// Add stores a new order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.ID().String()] = aggregate.Snapshot()
	return nil
}

// Update replaces a stored order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, ok := r.orders[key]; !ok {
		return errs.NewObjectNotFoundError("order", key)
	}
	r.orders[key] = aggregate.Snapshot()
	return nil
}

// Get retrieves an order by its identifier.
func (r *OrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snapshot), nil
}

// GetAllUnrouted retrieves open orders with no warehouse assigned, oldest first.
func (r *OrderRepository) GetAllUnrouted(_ context.Context) ([]*order.Order, error) {
	terminal := map[order.Status]bool{
		order.StatusDelivered:   true,
		order.StatusCancelled:   true,
		order.StatusReturned:    true,
		order.StatusInventoried: true,
		order.StatusPickedUp:    true,
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*order.Order
	for _, snapshot := range r.orders {
		if snapshot.WarehouseID == "" && !terminal[snapshot.Status] {
			orders = append(orders, order.RestoreOrder(snapshot))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
	return orders, nil
}

// GetAllByCustomer retrieves every order placed by the given customer, newest first.
func (r *OrderRepository) GetAllByCustomer(_ context.Context, customerID string) ([]*order.Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*order.Order
	for _, snapshot := range r.orders {
		if snapshot.CustomerID == customerID {
			orders = append(orders, order.RestoreOrder(snapshot))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

var _ ports.OrderRepository = (*OrderRepository)(nil)
