package services

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/order"
)

// DriverAssignment is the outcome of driver selection for one order. DriverID is
// empty when no driver could be assigned; Reason explains either outcome.
type DriverAssignment struct {
	DriverID              string `json:"driver_id"`
	DriverName            string `json:"driver_name,omitempty"`
	Reason                string `json:"assignment_reason"`
	EstimatedPickupMinutes int   `json:"estimated_pickup_time,omitempty"`
}

// IsAssigned reports whether a driver was selected.
func (a DriverAssignment) IsAssigned() bool {
	return a.DriverID != ""
}

// DriverAssigner is a domain service selecting the delivery driver for an order.
// Food orders prefer food-safety certified drivers, hazmat retail orders require
// hazmat certification, manufacturing orders prefer logistics specialists. Ties
// break on lowest current load; the default path scores drivers on free capacity
// and rating.
type DriverAssigner struct {
	logger *slog.Logger
}

// NewDriverAssigner creates a new DriverAssigner instance.
func NewDriverAssigner(logger *slog.Logger) DriverAssigner {
	return DriverAssigner{logger: logger}
}

// Assign selects the driver for the order from the given candidates.
func (a DriverAssigner) Assign(o *order.Order, drivers []fleet.Driver) DriverAssignment {
	if len(drivers) == 0 {
		a.logger.Warn("no available drivers for order", "order_id", o.ID().String())
		return DriverAssignment{Reason: "No drivers available"}
	}

	var assignment DriverAssignment
	switch o.IndustryCategory() {
	case order.CategoryFoodDelivery:
		assignment = a.selectFoodDeliveryDriver(drivers)
	case order.CategoryRetail:
		assignment = a.selectRetailDriver(o, drivers)
	case order.CategoryManufacturing:
		assignment = a.selectManufacturingDriver(drivers)
	default:
		assignment = a.selectDefaultDriver(drivers)
	}

	if assignment.IsAssigned() {
		a.logger.Info("order assigned to driver",
			"order_id", o.ID().String(),
			"driver_id", assignment.DriverID,
			"industry", o.IndustryCategory().DisplayName())
	}
	return assignment
}

func (a DriverAssigner) selectFoodDeliveryDriver(drivers []fleet.Driver) DriverAssignment {
	var foodCertified []fleet.Driver
	for _, d := range drivers {
		if d.HasCertification("food_safety") || d.HasSpecialization("food_delivery") {
			foodCertified = append(foodCertified, d)
		}
	}

	if len(foodCertified) > 0 {
		best := lowestLoad(foodCertified)
		return DriverAssignment{
			DriverID:               best.ID,
			DriverName:             best.Name,
			Reason:                 "Food safety certified, lowest current load",
			EstimatedPickupMinutes: 10,
		}
	}

	best := lowestLoad(drivers)
	return DriverAssignment{
		DriverID:               best.ID,
		DriverName:             best.Name,
		Reason:                 "Available driver with capacity",
		EstimatedPickupMinutes: 10,
	}
}

func (a DriverAssigner) selectRetailDriver(o *order.Order, drivers []fleet.Driver) DriverAssignment {
	retail, _ := o.IndustryData().(*order.RetailData)
	if retail != nil && retail.HazmatClassification != "" {
		var hazmatDrivers []fleet.Driver
		for _, d := range drivers {
			if d.HasCertification("hazmat") {
				hazmatDrivers = append(hazmatDrivers, d)
			}
		}
		if len(hazmatDrivers) > 0 {
			best := lowestLoad(hazmatDrivers)
			return DriverAssignment{
				DriverID:               best.ID,
				DriverName:             best.Name,
				Reason:                 "Hazmat certified for retail delivery",
				EstimatedPickupMinutes: 30,
			}
		}
	}

	var truckDrivers []fleet.Driver
	for _, d := range drivers {
		if d.VehicleType == "truck" {
			truckDrivers = append(truckDrivers, d)
		}
	}
	if len(truckDrivers) > 0 {
		best := lowestLoad(truckDrivers)
		return DriverAssignment{
			DriverID:               best.ID,
			DriverName:             best.Name,
			Reason:                 "Truck driver for retail delivery",
			EstimatedPickupMinutes: 30,
		}
	}

	best := lowestLoad(drivers)
	return DriverAssignment{
		DriverID:               best.ID,
		DriverName:             best.Name,
		Reason:                 "Available driver",
		EstimatedPickupMinutes: 30,
	}
}

func (a DriverAssigner) selectManufacturingDriver(drivers []fleet.Driver) DriverAssignment {
	var specialists []fleet.Driver
	for _, d := range drivers {
		if d.HasSpecialization("manufacturing") {
			specialists = append(specialists, d)
		}
	}
	if len(specialists) > 0 {
		best := lowestLoad(specialists)
		return DriverAssignment{
			DriverID:               best.ID,
			DriverName:             best.Name,
			Reason:                 "Manufacturing logistics specialist",
			EstimatedPickupMinutes: 60,
		}
	}

	var truckDrivers []fleet.Driver
	for _, d := range drivers {
		if d.VehicleType == "truck" {
			truckDrivers = append(truckDrivers, d)
		}
	}
	if len(truckDrivers) > 0 {
		best := lowestLoad(truckDrivers)
		return DriverAssignment{
			DriverID:               best.ID,
			DriverName:             best.Name,
			Reason:                 "Available truck driver",
			EstimatedPickupMinutes: 60,
		}
	}

	return DriverAssignment{Reason: "No suitable drivers"}
}

// selectDefaultDriver scores each driver on free capacity (weight 0.6) and rating
// normalized to 5.0 (weight 0.4), taking the highest score.
func (a DriverAssigner) selectDefaultDriver(drivers []fleet.Driver) DriverAssignment {
	best := drivers[0]
	bestScore := driverScore(best)
	for _, d := range drivers[1:] {
		if score := driverScore(d); score > bestScore {
			best, bestScore = d, score
		}
	}

	return DriverAssignment{
		DriverID:   best.ID,
		DriverName: best.Name,
		Reason: fmt.Sprintf("Best available (Rating: %.1f, Load: %d/%d)",
			best.Rating, best.CurrentLoad, best.MaxLoad),
		EstimatedPickupMinutes: 20,
	}
}

func driverScore(d fleet.Driver) float64 {
	maxLoad := d.MaxLoad
	if maxLoad <= 0 {
		maxLoad = 10
	}
	loadScore := 1 - float64(d.CurrentLoad)/float64(maxLoad)
	ratingScore := d.Rating / 5.0
	return loadScore*0.6 + ratingScore*0.4
}

// lowestLoad returns the driver with the fewest active deliveries, first wins ties.
func lowestLoad(drivers []fleet.Driver) fleet.Driver {
	best := drivers[0]
	for _, d := range drivers[1:] {
		if d.CurrentLoad < best.CurrentLoad {
			best = d
		}
	}
	return best
}
