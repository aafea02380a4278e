package order

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// Snapshot carries every persisted field of an order for reconstruction. Repositories
// build a Snapshot from their storage representation and hand it to RestoreOrder.
type Snapshot struct {
	ID         kernel.OrderID
	CustomerID string

	Status           Status
	Priority         Priority
	OrderType        Type
	OrderSource      Source
	IndustryCategory IndustryCategory

	Items          []Item
	TaxAmount      kernel.Money
	ShippingCost   kernel.Money
	DiscountAmount kernel.Money

	DeliveryAddress       Address
	DeliveryInstructions  string
	RequestedDeliveryDate *time.Time
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time

	PaymentMethod    string
	PaymentStatus    PaymentStatus
	PaymentReference string

	WarehouseID    string
	AssignedDriver string
	RouteID        string
	TrackingNumber string

	IndustryData IndustryData

	Notes string
	Tags  []string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

// RestoreOrder reconstructs an order from persistence without re-running creation
// rules. Monetary totals are re-derived from the restored items and charges.
func RestoreOrder(s Snapshot) *Order {
	o := &Order{
		id:               s.ID,
		customerID:       s.CustomerID,
		status:           s.Status,
		priority:         s.Priority,
		orderType:        s.OrderType,
		orderSource:      s.OrderSource,
		industryCategory: s.IndustryCategory,

		items:          append([]Item(nil), s.Items...),
		taxAmount:      s.TaxAmount,
		shippingCost:   s.ShippingCost,
		discountAmount: s.DiscountAmount,

		deliveryAddress:       s.DeliveryAddress,
		deliveryInstructions:  s.DeliveryInstructions,
		requestedDeliveryDate: s.RequestedDeliveryDate,
		estimatedDeliveryDate: s.EstimatedDeliveryDate,
		actualDeliveryDate:    s.ActualDeliveryDate,

		paymentMethod:    s.PaymentMethod,
		paymentStatus:    s.PaymentStatus,
		paymentReference: s.PaymentReference,

		warehouseID:    s.WarehouseID,
		assignedDriver: s.AssignedDriver,
		routeID:        s.RouteID,
		trackingNumber: s.TrackingNumber,

		industryData: s.IndustryData,

		notes: s.Notes,
		tags:  append([]string(nil), s.Tags...),

		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		shippedAt:   s.ShippedAt,
		deliveredAt: s.DeliveredAt,

		isConstructed: true,
	}
	o.calculateTotals()

	return o
}

// Snapshot extracts the full persisted state of the order for storage mapping.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:         o.id,
		CustomerID: o.customerID,

		Status:           o.status,
		Priority:         o.priority,
		OrderType:        o.orderType,
		OrderSource:      o.orderSource,
		IndustryCategory: o.industryCategory,

		Items:          append([]Item(nil), o.items...),
		TaxAmount:      o.taxAmount,
		ShippingCost:   o.shippingCost,
		DiscountAmount: o.discountAmount,

		DeliveryAddress:       o.deliveryAddress,
		DeliveryInstructions:  o.deliveryInstructions,
		RequestedDeliveryDate: o.requestedDeliveryDate,
		EstimatedDeliveryDate: o.estimatedDeliveryDate,
		ActualDeliveryDate:    o.actualDeliveryDate,

		PaymentMethod:    o.paymentMethod,
		PaymentStatus:    o.paymentStatus,
		PaymentReference: o.paymentReference,

		WarehouseID:    o.warehouseID,
		AssignedDriver: o.assignedDriver,
		RouteID:        o.routeID,
		TrackingNumber: o.trackingNumber,

		IndustryData: o.industryData,

		Notes: o.notes,
		Tags:  append([]string(nil), o.tags...),

		CreatedAt:   o.createdAt,
		UpdatedAt:   o.updatedAt,
		ShippedAt:   o.shippedAt,
		DeliveredAt: o.deliveredAt,
	}
}
