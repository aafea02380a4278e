package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired      = errors.New("customer id is required")
	ErrItemsAreRequired          = errors.New("at least one item is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CreateOrderCommand represents a request to register a new logistics order.
// Encapsulates the customer, order classification, line items, destination, and the
// optional vertical payload.
//
// Example:
//
//	orderID := kernel.NewOrderID()
//	cmd, err := NewCreateOrderCommand(orderID, "CUST-42", order.TypeEcommerceDirect,
//	    order.SourceShopify, items, address, payload)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, validator, processors)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerID      string
	orderType       order.Type
	orderSource     order.Source
	items           []order.Item
	deliveryAddress order.Address
	industryData    order.IndustryData

	deliveryInstructions  string
	requestedDeliveryDate *time.Time
	notes                 string
	tags                  []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates order id, customer, classification, items, and destination; the
// vertical payload may be nil, its deep validation happens in the handler.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	customerID string,
	orderType order.Type,
	orderSource order.Source,
	items []order.Item,
	deliveryAddress order.Address,
	industryData order.IndustryData,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setOrderType(orderType),
		cmd.setOrderSource(orderSource),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.industryData = industryData
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.OrderID { return c.orderID }

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() string { return c.customerID }

// OrderType returns the fine-grained order classification.
func (c CreateOrderCommand) OrderType() order.Type { return c.orderType }

// OrderSource returns the originating platform or channel.
func (c CreateOrderCommand) OrderSource() order.Source { return c.orderSource }

// Items returns the line items to place on the order.
func (c CreateOrderCommand) Items() []order.Item { return c.items }

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() order.Address { return c.deliveryAddress }

// IndustryData returns the vertical payload, nil when none was supplied.
func (c CreateOrderCommand) IndustryData() order.IndustryData { return c.industryData }

// DeliveryInstructions returns optional free-form delivery instructions.
func (c CreateOrderCommand) DeliveryInstructions() string { return c.deliveryInstructions }

// RequestedDeliveryDate returns the customer's requested delivery time, when set.
func (c CreateOrderCommand) RequestedDeliveryDate() *time.Time { return c.requestedDeliveryDate }

// Notes returns optional operator notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// Tags returns optional order tags.
func (c CreateOrderCommand) Tags() []string { return c.tags }

// WithDeliveryInstructions attaches delivery instructions to the command.
func (c CreateOrderCommand) WithDeliveryInstructions(instructions string) CreateOrderCommand {
	c.deliveryInstructions = instructions
	return c
}

// WithRequestedDeliveryDate attaches the requested delivery time to the command.
func (c CreateOrderCommand) WithRequestedDeliveryDate(t time.Time) CreateOrderCommand {
	c.requestedDeliveryDate = &t
	return c
}

// WithNotes attaches operator notes to the command.
func (c CreateOrderCommand) WithNotes(notes string) CreateOrderCommand {
	c.notes = notes
	return c
}

// WithTags attaches tags to the command.
func (c CreateOrderCommand) WithTags(tags []string) CreateOrderCommand {
	c.tags = tags
	return c
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setOrderSource(orderSource order.Source) error {
	if err := orderSource.Validate(); err != nil {
		return err
	}

	c.orderSource = orderSource
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address order.Address) error {
	if len(address) == 0 {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}
