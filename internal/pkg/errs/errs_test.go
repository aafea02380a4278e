package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"logistics/internal/pkg/errs"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("should format message with param name", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerID")
		assert.Equal(t, "value is required: customerID", err.Error())
	})

	t.Run("should include cause when present", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("customerID", errors.New("empty string"))
		assert.Equal(t, "value is required: customerID (cause: empty string)", err.Error())
	})

	t.Run("should unwrap to the sentinel", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerID")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("should format message with param name and cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New(`"flying" is not a valid order status`))
		assert.Equal(t, `value is invalid: status (cause: "flying" is not a valid order status)`, err.Error())
	})

	t.Run("should unwrap to the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	})

	t.Run("should collapse newlines in the cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("payload", errors.New("line one\nline two"))
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

	assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should format message with id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "ORD-1A2B3C4D")
		assert.Equal(t, "object not found: ORD-1A2B3C4D", err.Error())
	})

	t.Run("should include param and cause when present", func(t *testing.T) {
		err := errs.NewObjectNotFoundErrorWithCause("orderID", "ORD-1A2B3C4D", errors.New("record not found"))
		assert.Equal(t,
			"object not found: param is: orderID, ID is: ORD-1A2B3C4D (cause: record not found)",
			err.Error())
	})

	t.Run("should unwrap to the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, errs.NewObjectNotFoundError("orderID", "x"), errs.ErrObjectNotFound)
	})
}

func TestWorkflowViolationError(t *testing.T) {
	err := errs.NewWorkflowViolationError("pending", "delivered", "E-commerce")

	assert.Equal(t,
		"workflow violation: cannot transition from pending to delivered for E-commerce orders",
		err.Error())
	assert.ErrorIs(t, err, errs.ErrWorkflowViolation)
}
