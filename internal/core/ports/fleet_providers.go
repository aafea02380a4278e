package ports

import (
	"context"

	"logistics/internal/core/domain/model/fleet"
)

// WarehouseProvider supplies the fulfillment facilities available for routing.
// Implementations may back onto a fleet management system or a static catalog.
type WarehouseProvider interface {
	// GetAvailableWarehouses returns every warehouse currently accepting orders.
	GetAvailableWarehouses(ctx context.Context) ([]fleet.Warehouse, error)
}

// DriverProvider supplies the delivery drivers available for assignment.
type DriverProvider interface {
	// GetAvailableDrivers returns the drivers that can pick up from the given
	// warehouse and still have delivery capacity.
	GetAvailableDrivers(ctx context.Context, warehouseID string) ([]fleet.Driver, error)
}
