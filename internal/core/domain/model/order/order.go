package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPayloadCategoryMismatch is returned when the attached vertical payload does not
	// belong to the vertical derived from the order type.
	ErrPayloadCategoryMismatch = errors.New(
		"industry payload category does not match the order type's industry category")
)

// Address is the structured delivery destination of an order.
// Typical keys: street, city, state, zip, country.
type Address map[string]string

// Order is the aggregate root for a logistics order. It carries identity, line items,
// derived monetary totals, delivery information, fulfillment assignments, and at most
// one vertical-specific payload whose category agrees with the order type.
//
// Order uses private fields so its invariants can only be changed through validated
// methods. Status changes applied through ApplyStatus are not workflow-checked; the
// status update entry point must consult the workflow engine first.
type Order struct {
	id         kernel.OrderID
	customerID string

	status           Status
	priority         Priority
	orderType        Type
	orderSource      Source
	industryCategory IndustryCategory

	items          []Item
	subtotal       kernel.Money
	taxAmount      kernel.Money
	shippingCost   kernel.Money
	discountAmount kernel.Money
	totalAmount    kernel.Money

	deliveryAddress       Address
	deliveryInstructions  string
	requestedDeliveryDate *time.Time
	estimatedDeliveryDate *time.Time
	actualDeliveryDate    *time.Time

	paymentMethod    string
	paymentStatus    PaymentStatus
	paymentReference string

	warehouseID    string
	assignedDriver string
	routeID        string
	trackingNumber string

	industryData IndustryData

	notes string
	tags  []string

	createdAt   time.Time
	updatedAt   time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a new order in pending status. The industry category is derived
// from the order type; when a vertical payload is provided its category must match.
// Items may be empty at construction and added later through AddItem.
func NewOrder(
	id kernel.OrderID,
	customerID string,
	orderType Type,
	source Source,
	items []Item,
	deliveryAddress Address,
	data IndustryData,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	category := CategoryFor(orderType)
	if data != nil && data.Category() != category {
		return nil, fmt.Errorf("%w: payload is %s, order type %s belongs to %s",
			ErrPayloadCategoryMismatch, data.Category(), orderType, category)
	}

	now := time.Now().UTC()
	o := &Order{
		id:               id,
		customerID:       customerID,
		status:           StatusPending,
		priority:         PriorityNormal,
		orderType:        orderType,
		orderSource:      source,
		industryCategory: category,
		items:            append([]Item(nil), items...),
		taxAmount:        kernel.ZeroMoney(),
		shippingCost:     kernel.ZeroMoney(),
		discountAmount:   kernel.ZeroMoney(),
		deliveryAddress:  deliveryAddress,
		paymentStatus:    PaymentPending,
		industryData:     data,
		createdAt:        now,
		updatedAt:        now,
		isConstructed:    true,
	}
	o.calculateTotals()

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory
// function. Call this when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID { return o.id }

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string { return o.customerID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Priority returns the current fulfillment priority.
func (o *Order) Priority() Priority { return o.priority }

// OrderType returns the fine-grained classification within the vertical.
func (o *Order) OrderType() Type { return o.orderType }

// OrderSource returns the originating platform or channel.
func (o *Order) OrderSource() Source { return o.orderSource }

// IndustryCategory returns the vertical this order belongs to.
func (o *Order) IndustryCategory() IndustryCategory { return o.industryCategory }

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }

// Subtotal returns the sum of all line item totals.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// TaxAmount returns the tax charged on the order.
func (o *Order) TaxAmount() kernel.Money { return o.taxAmount }

// ShippingCost returns the shipping charge.
func (o *Order) ShippingCost() kernel.Money { return o.shippingCost }

// DiscountAmount returns the discount applied.
func (o *Order) DiscountAmount() kernel.Money { return o.discountAmount }

// TotalAmount returns subtotal + tax + shipping - discount.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() Address { return o.deliveryAddress }

// DeliveryInstructions returns free-form delivery instructions.
func (o *Order) DeliveryInstructions() string { return o.deliveryInstructions }

// RequestedDeliveryDate returns the customer's requested delivery time, when set.
func (o *Order) RequestedDeliveryDate() *time.Time { return o.requestedDeliveryDate }

// EstimatedDeliveryDate returns the system's delivery estimate, when computed.
func (o *Order) EstimatedDeliveryDate() *time.Time { return o.estimatedDeliveryDate }

// ActualDeliveryDate returns when the order was actually delivered, when known.
func (o *Order) ActualDeliveryDate() *time.Time { return o.actualDeliveryDate }

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// PaymentStatus returns the payment lifecycle state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// PaymentReference returns the external payment reference.
func (o *Order) PaymentReference() string { return o.paymentReference }

// WarehouseID returns the assigned warehouse, empty when unrouted.
func (o *Order) WarehouseID() string { return o.warehouseID }

// AssignedDriver returns the assigned driver, empty when unassigned.
func (o *Order) AssignedDriver() string { return o.assignedDriver }

// RouteID returns the delivery route the order is part of, when any.
func (o *Order) RouteID() string { return o.routeID }

// TrackingNumber returns the carrier tracking number, when any.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// IndustryData returns the attached vertical payload, nil when none.
func (o *Order) IndustryData() IndustryData { return o.industryData }

// HasIndustryData reports whether a vertical payload is attached.
func (o *Order) HasIndustryData() bool { return o.industryData != nil }

// Notes returns operator notes attached to the order.
func (o *Order) Notes() string { return o.notes }

// Tags returns a copy of the order's tags.
func (o *Order) Tags() []string { return append([]string(nil), o.tags...) }

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// ShippedAt returns when the order first reached shipped status, when it has.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// DeliveredAt returns when the order first reached delivered status, when it has.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// TotalItems returns the summed quantity across all line items.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.items {
		total += item.quantity
	}
	return total
}

// AddItem appends a line item and recomputes the order totals.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.calculateTotals()
	o.touch()
	return nil
}

// RemoveItem removes every line item with the given SKU and recomputes totals.
func (o *Order) RemoveItem(sku string) {
	kept := o.items[:0]
	for _, item := range o.items {
		if item.sku != sku {
			kept = append(kept, item)
		}
	}
	o.items = kept
	o.calculateTotals()
	o.touch()
}

// SetCharges sets tax, shipping, and discount and recomputes the total.
func (o *Order) SetCharges(tax, shipping, discount kernel.Money) {
	o.taxAmount = tax
	o.shippingCost = shipping
	o.discountAmount = discount
	o.calculateTotals()
	o.touch()
}

// ApplyStatus sets the order status directly, recording shipped/delivered timestamps
// the first time those statuses are reached. It does not consult the workflow engine;
// production status updates must validate the transition first. Direct application
// exists for system use and for processors assigning the initial workflow status.
func (o *Order) ApplyStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.touch()

	now := time.Now().UTC()
	switch newStatus {
	case StatusShipped:
		if o.shippedAt == nil {
			o.shippedAt = &now
		}
	case StatusDelivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
			o.actualDeliveryDate = &now
		}
	}
	return nil
}

// SetPriority changes the fulfillment priority.
func (o *Order) SetPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.priority = p
	o.touch()
	return nil
}

// SetEstimatedDeliveryDate records the computed delivery estimate.
func (o *Order) SetEstimatedDeliveryDate(t time.Time) {
	o.estimatedDeliveryDate = &t
	o.touch()
}

// SetRequestedDeliveryDate records the customer's requested delivery time.
func (o *Order) SetRequestedDeliveryDate(t time.Time) {
	o.requestedDeliveryDate = &t
	o.touch()
}

// SetDeliveryInstructions attaches free-form delivery instructions.
func (o *Order) SetDeliveryInstructions(instructions string) {
	o.deliveryInstructions = instructions
	o.touch()
}

// AssignWarehouse records the warehouse selected for fulfillment.
func (o *Order) AssignWarehouse(warehouseID string) error {
	if warehouseID == "" {
		return errs.NewValueIsRequiredError("warehouseID")
	}
	o.warehouseID = warehouseID
	o.touch()
	return nil
}

// AssignDriver records the driver selected for delivery.
func (o *Order) AssignDriver(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}
	o.assignedDriver = driverID
	o.touch()
	return nil
}

// SetRoute records the delivery route the order was placed on.
func (o *Order) SetRoute(routeID string) {
	o.routeID = routeID
	o.touch()
}

// SetTrackingNumber records the carrier tracking number.
func (o *Order) SetTrackingNumber(trackingNumber string) {
	o.trackingNumber = trackingNumber
	o.touch()
}

// SetNotes replaces the operator notes on the order.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
	o.touch()
}

// AddTag appends a tag when not already present.
func (o *Order) AddTag(tag string) {
	for _, existing := range o.tags {
		if existing == tag {
			return
		}
	}
	o.tags = append(o.tags, tag)
	o.touch()
}

// SetPayment records payment method, status, and reference.
func (o *Order) SetPayment(method string, status PaymentStatus, reference string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	o.paymentStatus = status
	o.paymentReference = reference
	o.touch()
	return nil
}

// CanBeCancelled reports whether the order is early enough in its lifecycle for the
// quick cancellation path (pending, confirmed, or processing).
func (o *Order) CanBeCancelled() bool {
	switch o.status {
	case StatusPending, StatusConfirmed, StatusProcessing:
		return true
	}
	return false
}

// IsTimeSensitive reports whether the order has time-critical delivery requirements.
// Food delivery orders always are; manufacturing orders are when a production start
// is scheduled; otherwise a requested-vs-estimated window under two hours qualifies.
func (o *Order) IsTimeSensitive() bool {
	if o.industryCategory == CategoryFoodDelivery {
		return true
	}

	if o.industryCategory == CategoryManufacturing {
		if data, ok := o.industryData.(*ManufacturingData); ok && data.ProductionStartDate != nil {
			return true
		}
	}

	if o.requestedDeliveryDate != nil && o.estimatedDeliveryDate != nil {
		diff := o.estimatedDeliveryDate.Sub(*o.requestedDeliveryDate)
		if diff < 0 {
			diff = -diff
		}
		return diff < 2*time.Hour
	}

	return false
}

// RequiresSpecialHandling reports whether the order carries requirements that need
// operator attention: temperature or allergen constraints, hazmat or inspection
// flags, quality control points, or an explicit 3PL special-handling flag.
func (o *Order) RequiresSpecialHandling() bool {
	switch data := o.industryData.(type) {
	case *FoodDeliveryData:
		return data.TemperatureRequirements != "" || len(data.AllergenInfo) > 0
	case *RetailData:
		return data.HazmatClassification != "" || data.InspectionRequired
	case *ManufacturingData:
		return len(data.QualityControlPoints) > 0
	case *ThirdPartyData:
		return data.SpecialHandlingRequired
	}
	return false
}

// calculateTotals re-derives subtotal and total from the current items and charges.
func (o *Order) calculateTotals() {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.totalPrice)
	}
	o.subtotal = subtotal
	o.totalAmount = subtotal.Add(o.taxAmount).Add(o.shippingCost).Sub(o.discountAmount)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
