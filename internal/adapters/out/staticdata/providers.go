// Package staticdata supplies a fixed catalog of warehouses and drivers for
// routing. Production deployments replace these providers with adapters onto the
// fleet management system; the catalog mirrors its reference data shape.
package staticdata

import (
	"context"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/ports"
)

// WarehouseProvider serves the static warehouse catalog.
type WarehouseProvider struct {
	warehouses []fleet.Warehouse
}

// NewWarehouseProvider creates a provider with the default facility catalog.
func NewWarehouseProvider() *WarehouseProvider {
	return &WarehouseProvider{
		warehouses: []fleet.Warehouse{
			{
				ID:             "WH-001",
				Name:           "Main Distribution Center",
				City:           "Los Angeles",
				State:          "CA",
				Capabilities:   []string{"ecommerce", "retail", "3pl"},
				OperatingHours: "24/7",
			},
			{
				ID:                    "WH-002",
				Name:                  "Food Hub",
				City:                  "San Francisco",
				State:                 "CA",
				Capabilities:          []string{"food_delivery"},
				OperatingHours:        "6am-10pm",
				TemperatureControlled: true,
			},
			{
				ID:             "WH-003",
				Name:           "Manufacturing Facility",
				City:           "San Jose",
				State:          "CA",
				Capabilities:   []string{"manufacturing"},
				OperatingHours: "Mon-Fri 8am-6pm",
			},
		},
	}
}

// GetAvailableWarehouses returns the full catalog.
func (p *WarehouseProvider) GetAvailableWarehouses(_ context.Context) ([]fleet.Warehouse, error) {
	return append([]fleet.Warehouse(nil), p.warehouses...), nil
}

// DriverProvider serves the static driver roster.
type DriverProvider struct {
	drivers []fleet.Driver
}

// NewDriverProvider creates a provider with the default driver roster.
func NewDriverProvider() *DriverProvider {
	return &DriverProvider{
		drivers: []fleet.Driver{
			{
				ID:              "DRV-001",
				Name:            "John Doe",
				VehicleType:     "van",
				Certifications:  []string{"food_safety", "hazmat"},
				Specializations: []string{"food_delivery", "ecommerce"},
				CurrentLoad:     3,
				MaxLoad:         15,
				Rating:          4.8,
			},
			{
				ID:              "DRV-002",
				Name:            "Jane Smith",
				VehicleType:     "truck",
				Certifications:  []string{"forklift", "hazmat"},
				Specializations: []string{"retail", "manufacturing"},
				CurrentLoad:     5,
				MaxLoad:         25,
				Rating:          4.9,
			},
		},
	}
}

// GetAvailableDrivers returns the full roster. The static roster is not segmented
// by warehouse, so the warehouse id is ignored.
func (p *DriverProvider) GetAvailableDrivers(_ context.Context, _ string) ([]fleet.Driver, error) {
	return append([]fleet.Driver(nil), p.drivers...), nil
}

var (
	_ ports.WarehouseProvider = (*WarehouseProvider)(nil)
	_ ports.DriverProvider    = (*DriverProvider)(nil)
)
