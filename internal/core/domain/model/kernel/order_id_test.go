package kernel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create id with ORD prefix and 8 hex characters", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.True(t, strings.HasPrefix(id.String(), "ORD-"))
		assert.Len(t, id.String(), 12)

		suffix := strings.TrimPrefix(id.String(), "ORD-")
		assert.Equal(t, strings.ToUpper(suffix), suffix)
		for _, r := range suffix {
			assert.Contains(t, "0123456789ABCDEF", string(r))
		}
	})

	t.Run("should create unique ids", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewOrderID()
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should accept well-formed id", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-1A2B3C4D")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "ORD-1A2B3C4D", id.String())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")
		require.Error(t, err)
	})

	t.Run("should reject id without prefix", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("1A2B3C4D")
		require.Error(t, err)
	})

	t.Run("should reject bare prefix", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("ORD-")
		require.Error(t, err)
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value should not validate", func(t *testing.T) {
		var id kernel.OrderID
		require.Error(t, id.Validate())
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.OrderIDFromString("ORD-00000001")
	require.NoError(t, err)
	b, err := kernel.OrderIDFromString("ORD-00000001")
	require.NoError(t, err)
	c := kernel.NewOrderID()

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
