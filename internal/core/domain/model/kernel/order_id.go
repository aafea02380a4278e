package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through one of
// the constructor functions. This error is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// orderIDPrefix is the display prefix carried by every order identifier.
const orderIDPrefix = "ORD-"

// OrderID is a value object identifying an order aggregate. Identifiers have the form
// "ORD-XXXXXXXX" where the suffix is the first eight hex digits of a random UUID,
// uppercased. The zero value is invalid and must be constructed via NewOrderID or
// OrderIDFromString.
//
// OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g. "ORD-1A2B3C4D"
type OrderID struct {
	value string
}

// NewOrderID generates a new random order identifier.
func NewOrderID() OrderID {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return OrderID{value: orderIDPrefix + suffix}
}

// OrderIDFromString reconstructs an OrderID from its string representation.
// The string must carry the "ORD-" prefix followed by a non-empty suffix.
// This is typically used when rehydrating orders from persistence or parsing
// identifiers from external systems.
func OrderIDFromString(s string) (OrderID, error) {
	if !strings.HasPrefix(s, orderIDPrefix) || len(s) <= len(orderIDPrefix) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%q does not match the ORD-XXXXXXXX format", s))
	}
	return OrderID{value: s}, nil
}

// String returns the identifier in its "ORD-XXXXXXXX" form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsNotConstructed for a zero-value OrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
