package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority reflects how urgently an order should be fulfilled. Processors may
// escalate it according to vertical-specific rules.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func getValidPriorities() map[Priority]struct{} {
	return map[Priority]struct{}{
		PriorityLow: {}, PriorityNormal: {}, PriorityHigh: {}, PriorityUrgent: {},
	}
}

// ParsePriority converts a wire/storage value into a Priority, rejecting unknown values.
func ParsePriority(s string) (Priority, error) {
	priority := Priority(s)
	if err := priority.Validate(); err != nil {
		return "", err
	}
	return priority, nil
}

// Validate checks that the priority is one of the four known levels.
func (p Priority) Validate() error {
	if _, ok := getValidPriorities()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%q is not a valid priority", string(p)))
	}
	return nil
}

func (p Priority) String() string {
	return string(p)
}

// PaymentStatus tracks the payment lifecycle independently from fulfillment status.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentCaptured   PaymentStatus = "captured"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// Validate checks that the payment status is a known value.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentAuthorized, PaymentCaptured, PaymentFailed, PaymentRefunded:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", string(p)))
}

func (p PaymentStatus) String() string {
	return string(p)
}
