package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

func testDrivers() []fleet.Driver {
	return []fleet.Driver{
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
	}
}

func TestDriverAssigner_Assign(t *testing.T) {
	assigner := services.NewDriverAssigner(discardLogger())

	t.Run("should prefer food safety certified drivers for food orders", func(t *testing.T) {
		o := buildOrder(t, order.TypeFoodDeliveryCustomer, order.SourceUberEats, 1, nil)

		assignment := assigner.Assign(o, testDrivers())

		assert.True(t, assignment.IsAssigned())
		assert.Equal(t, "DRV-001", assignment.DriverID)
		assert.Equal(t, "Food safety certified, lowest current load", assignment.Reason)
		assert.Equal(t, 10, assignment.EstimatedPickupMinutes)
	})

	t.Run("should fall back to any driver with capacity for food orders", func(t *testing.T) {
		o := buildOrder(t, order.TypeFoodDeliveryCustomer, order.SourceUberEats, 1, nil)
		drivers := []fleet.Driver{
			{ID: "DRV-010", Name: "Pat Lee", VehicleType: "car", CurrentLoad: 2, MaxLoad: 8, Rating: 4.2},
		}

		assignment := assigner.Assign(o, drivers)

		assert.Equal(t, "DRV-010", assignment.DriverID)
		assert.Equal(t, "Available driver with capacity", assignment.Reason)
	})

	t.Run("should require hazmat certification for hazmat retail orders", func(t *testing.T) {
		o := buildOrder(t, order.TypeRetailPurchaseOrder, order.SourceVendorPortal, 1,
			&order.RetailData{
				PONumber:             "PO-100",
				VendorID:             "VEND-1",
				VendorName:           "Acme Chemicals",
				PaymentTerms:         "Net 30",
				DeliveryTerms:        "FOB Destination",
				HazmatClassification: "Class 3",
			})

		assignment := assigner.Assign(o, testDrivers())

		assert.Equal(t, "DRV-001", assignment.DriverID)
		assert.Equal(t, "Hazmat certified for retail delivery", assignment.Reason)
		assert.Equal(t, 30, assignment.EstimatedPickupMinutes)
	})

	t.Run("should prefer truck drivers for plain retail orders", func(t *testing.T) {
		o := buildOrder(t, order.TypeRetailPurchaseOrder, order.SourceVendorPortal, 1, nil)

		assignment := assigner.Assign(o, testDrivers())

		assert.Equal(t, "DRV-002", assignment.DriverID)
		assert.Equal(t, "Truck driver for retail delivery", assignment.Reason)
	})

	t.Run("should prefer manufacturing specialists", func(t *testing.T) {
		o := buildOrder(t, order.TypeManufacturingProduction, order.SourceERPSystem, 1, nil)

		assignment := assigner.Assign(o, testDrivers())

		assert.Equal(t, "DRV-002", assignment.DriverID)
		assert.Equal(t, "Manufacturing logistics specialist", assignment.Reason)
		assert.Equal(t, 60, assignment.EstimatedPickupMinutes)
	})

	t.Run("should report no suitable drivers for manufacturing without trucks", func(t *testing.T) {
		o := buildOrder(t, order.TypeManufacturingProduction, order.SourceERPSystem, 1, nil)
		drivers := []fleet.Driver{
			{ID: "DRV-010", Name: "Pat Lee", VehicleType: "car", CurrentLoad: 2, MaxLoad: 8, Rating: 4.2},
		}

		assignment := assigner.Assign(o, drivers)

		assert.False(t, assignment.IsAssigned())
		assert.Equal(t, "No suitable drivers", assignment.Reason)
	})

	t.Run("should score ecommerce drivers on capacity and rating", func(t *testing.T) {
		o := buildOrder(t, order.TypeEcommerceDirect, order.SourceShopify, 1, nil)
		drivers := []fleet.Driver{
			{ID: "DRV-020", Name: "Busy Driver", VehicleType: "van", CurrentLoad: 9, MaxLoad: 10, Rating: 5.0},
			{ID: "DRV-021", Name: "Free Driver", VehicleType: "van", CurrentLoad: 1, MaxLoad: 10, Rating: 4.0},
		}

		assignment := assigner.Assign(o, drivers)

		assert.Equal(t, "DRV-021", assignment.DriverID)
		assert.Equal(t, "Best available (Rating: 4.0, Load: 1/10)", assignment.Reason)
		assert.Equal(t, 20, assignment.EstimatedPickupMinutes)
	})

	t.Run("should break load ties in favour of the first candidate", func(t *testing.T) {
		o := buildOrder(t, order.TypeFoodDeliveryCustomer, order.SourceDoorDash, 1, nil)
		drivers := []fleet.Driver{
			{ID: "DRV-030", Name: "First", Certifications: []string{"food_safety"}, CurrentLoad: 2, MaxLoad: 10},
			{ID: "DRV-031", Name: "Second", Certifications: []string{"food_safety"}, CurrentLoad: 2, MaxLoad: 10},
		}

		assignment := assigner.Assign(o, drivers)

		assert.Equal(t, "DRV-030", assignment.DriverID)
	})

	t.Run("should report when no drivers are available", func(t *testing.T) {
		o := buildOrder(t, order.TypeEcommerceDirect, order.SourceShopify, 1, nil)

		assignment := assigner.Assign(o, nil)

		assert.False(t, assignment.IsAssigned())
		assert.Equal(t, "No drivers available", assignment.Reason)
	})
}
