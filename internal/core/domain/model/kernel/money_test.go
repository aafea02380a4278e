package kernel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept positive amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(19.99))

		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("120.50")

		require.NoError(t, err)
		assert.Equal(t, "120.50", m.String())
	})

	t.Run("should reject malformed string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve")
		require.Error(t, err)
	})

	t.Run("should reject negative string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.00")
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	ten, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)
	three, err := kernel.NewMoneyFromString("3.25")
	require.NoError(t, err)

	t.Run("should add amounts", func(t *testing.T) {
		assert.Equal(t, "13.25", ten.Add(three).String())
	})

	t.Run("should subtract amounts", func(t *testing.T) {
		assert.Equal(t, "6.75", ten.Sub(three).String())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "9.75", three.MulInt(3).String())
	})

	t.Run("should compare by numeric value", func(t *testing.T) {
		other, err := kernel.NewMoneyFromString("10")
		require.NoError(t, err)
		assert.True(t, ten.IsEqual(other))
		assert.False(t, ten.IsEqual(three))
	})
}
