package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The full enumeration is shared across
// all verticals; each vertical's workflow (see the services package) steps through
// an ordered subsequence of these values.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"

	// E-commerce and general fulfillment statuses.
	StatusPicked         Status = "picked"
	StatusPacked         Status = "packed"
	StatusShipped        Status = "shipped"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusReturned       Status = "returned"

	// Retail-specific statuses.
	StatusInspected   Status = "inspected"
	StatusApproved    Status = "approved"
	StatusReceived    Status = "received"
	StatusInventoried Status = "inventoried"

	// Food delivery-specific statuses.
	StatusPreparing      Status = "preparing"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusPickedUp       Status = "picked_up"

	// Manufacturing-specific statuses.
	StatusMaterialsAllocated   Status = "materials_allocated"
	StatusProductionStarted    Status = "production_started"
	StatusProductionInProgress Status = "production_in_progress"
	StatusProductionCompleted  Status = "production_completed"
	StatusQualityChecked       Status = "quality_checked"
	StatusQualityFailed        Status = "quality_failed"
	StatusPackaged             Status = "packaged"
)

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending: {}, StatusConfirmed: {}, StatusProcessing: {},
		StatusPicked: {}, StatusPacked: {}, StatusShipped: {}, StatusOutForDelivery: {},
		StatusDelivered: {}, StatusCancelled: {}, StatusReturned: {},
		StatusInspected: {}, StatusApproved: {}, StatusReceived: {}, StatusInventoried: {},
		StatusPreparing: {}, StatusReadyForPickup: {}, StatusPickedUp: {},
		StatusMaterialsAllocated: {}, StatusProductionStarted: {},
		StatusProductionInProgress: {}, StatusProductionCompleted: {},
		StatusQualityChecked: {}, StatusQualityFailed: {}, StatusPackaged: {},
	}
}

// ParseStatus converts a wire/storage value into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is a member of the shared enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
