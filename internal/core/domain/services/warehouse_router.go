package services

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/order"
)

// ManualAssignmentID is the sentinel warehouse id returned when no facility can
// serve the order and an operator must route it by hand.
const ManualAssignmentID = "MANUAL"

// RoutingDecision is the outcome of warehouse routing for one order.
type RoutingDecision struct {
	WarehouseID            string `json:"warehouse_id"`
	WarehouseName          string `json:"warehouse_name"`
	Reason                 string `json:"routing_reason"`
	FulfillmentTimeMinutes int    `json:"estimated_fulfillment_time"`
}

// IsManual reports whether the decision requires operator routing.
func (d RoutingDecision) IsManual() bool {
	return d.WarehouseID == ManualAssignmentID
}

// WarehouseRouter is a domain service selecting the fulfillment warehouse for an
// order. Each vertical filters warehouses by capability and takes the first match;
// 3PL orders go straight to the client-designated fulfillment center when the
// payload names one. When no capable warehouse exists the router degrades to the
// first warehouse overall, and to a manual-assignment sentinel when the list is
// empty.
type WarehouseRouter struct {
	logger *slog.Logger
}

// NewWarehouseRouter creates a new WarehouseRouter instance.
func NewWarehouseRouter(logger *slog.Logger) WarehouseRouter {
	return WarehouseRouter{logger: logger}
}

// Route selects the warehouse for the order from the given facilities.
func (r WarehouseRouter) Route(o *order.Order, warehouses []fleet.Warehouse) RoutingDecision {
	var decision RoutingDecision

	switch o.IndustryCategory() {
	case order.CategoryEcommerce:
		decision = r.routeByCapability(warehouses, "ecommerce",
			"Fastest e-commerce fulfillment", 45)
	case order.CategoryRetail:
		decision = r.routeByCapability(warehouses, "retail",
			"Retail compliance and inspection capabilities", 240)
	case order.CategoryFoodDelivery:
		decision = r.routeByCapability(warehouses, "food_delivery",
			"Temperature-controlled facility with fast delivery", 35)
	case order.CategoryManufacturing:
		decision = r.routeByCapability(warehouses, "manufacturing",
			"Production facility with QC capabilities", 1440)
	case order.CategoryThirdParty:
		decision = r.routeThirdParty(o, warehouses)
	default:
		decision = r.routeDefault(warehouses)
	}

	r.logger.Info("order routed to warehouse",
		"order_id", o.ID().String(),
		"warehouse_id", decision.WarehouseID,
		"industry", o.IndustryCategory().DisplayName())
	return decision
}

// routeByCapability takes the first warehouse serving the vertical, falling back to
// the first warehouse overall, then to manual assignment.
func (r WarehouseRouter) routeByCapability(
	warehouses []fleet.Warehouse,
	capability string,
	reason string,
	fulfillmentMinutes int,
) RoutingDecision {
	for _, w := range warehouses {
		if w.HasCapability(capability) {
			return RoutingDecision{
				WarehouseID:            w.ID,
				WarehouseName:          w.Name,
				Reason:                 reason,
				FulfillmentTimeMinutes: fulfillmentMinutes,
			}
		}
	}
	return r.routeDefault(warehouses)
}

// routeThirdParty honors the client-designated fulfillment center, then falls back
// to 3PL-capable warehouses.
func (r WarehouseRouter) routeThirdParty(o *order.Order, warehouses []fleet.Warehouse) RoutingDecision {
	if tpl, ok := o.IndustryData().(*order.ThirdPartyData); ok && tpl.FulfillmentCenter != "" {
		fulfillment := 240
		if tpl.SLADeliveryTimeMinutes != nil {
			fulfillment = *tpl.SLADeliveryTimeMinutes
		}
		return RoutingDecision{
			WarehouseID:            tpl.FulfillmentCenter,
			WarehouseName:          fmt.Sprintf("Client Fulfillment Center (%s)", tpl.ClientName),
			Reason:                 "Client-designated facility",
			FulfillmentTimeMinutes: fulfillment,
		}
	}

	for _, w := range warehouses {
		if w.HasCapability("3pl") {
			return RoutingDecision{
				WarehouseID:            w.ID,
				WarehouseName:          w.Name,
				Reason:                 "3PL fulfillment facility",
				FulfillmentTimeMinutes: 240,
			}
		}
	}
	return r.routeDefault(warehouses)
}

func (r WarehouseRouter) routeDefault(warehouses []fleet.Warehouse) RoutingDecision {
	if len(warehouses) > 0 {
		return RoutingDecision{
			WarehouseID:            warehouses[0].ID,
			WarehouseName:          warehouses[0].Name,
			Reason:                 "Default warehouse assignment",
			FulfillmentTimeMinutes: 60,
		}
	}
	return RoutingDecision{
		WarehouseID:   ManualAssignmentID,
		WarehouseName: "Manual Assignment",
		Reason:        "Manual routing required",
	}
}
