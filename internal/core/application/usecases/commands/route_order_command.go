package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRouteOrderCommandIsNotConstructed = errors.New(
	"RouteOrderCommand must be created via NewRouteOrderCommand constructor",
)

// RouteOrderCommand represents a request to run automated routing for an order:
// warehouse selection followed by driver assignment.
type RouteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewRouteOrderCommand creates a command to route an order.
func NewRouteOrderCommand(orderID kernel.OrderID) (RouteOrderCommand, error) {
	cmd := RouteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RouteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RouteOrderCommand) Validate() error {
	return c.guard.Validate(ErrRouteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to route.
func (c RouteOrderCommand) OrderID() kernel.OrderID { return c.orderID }

func (c *RouteOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
