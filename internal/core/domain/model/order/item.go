package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item on an order. Its total price is always derived from the unit
// price and quantity and can never be set independently.
type Item struct {
	sku         string
	productName string
	quantity    int
	unitPrice   kernel.Money
	totalPrice  kernel.Money
	batchNumber string
	notes       string

	isConstructed bool
}

// NewItem creates a validated line item. Quantity must be positive; unit price is
// a non-negative Money by construction.
func NewItem(sku, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	if sku == "" {
		return Item{}, errs.NewValueIsRequiredError("sku")
	}
	if productName == "" {
		productName = sku
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		sku:           sku,
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		totalPrice:    unitPrice.MulInt(quantity),
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// SKU returns the stock keeping unit of the line item.
func (i Item) SKU() string {
	return i.sku
}

// ProductName returns the display name of the product.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unit price times quantity.
func (i Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

// BatchNumber returns the batch this item was picked from, when tracked.
func (i Item) BatchNumber() string {
	return i.batchNumber
}

// Notes returns free-form notes attached to the line item.
func (i Item) Notes() string {
	return i.notes
}

// WithBatchNumber returns a copy of the item tagged with a batch number.
func (i Item) WithBatchNumber(batch string) Item {
	i.batchNumber = batch
	return i
}

// WithNotes returns a copy of the item carrying the given notes.
func (i Item) WithNotes(notes string) Item {
	i.notes = notes
	return i
}
