package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/order"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		orderType order.Type
		want      order.IndustryCategory
	}{
		{order.TypeEcommerceDirect, order.CategoryEcommerce},
		{order.TypeEcommerceB2B, order.CategoryEcommerce},
		{order.TypeRetailPurchaseOrder, order.CategoryRetail},
		{order.TypeRetailReturn, order.CategoryRetail},
		{order.TypeFoodDeliveryCustomer, order.CategoryFoodDelivery},
		{order.TypeFoodDeliveryGrocery, order.CategoryFoodDelivery},
		{order.TypeManufacturingProduction, order.CategoryManufacturing},
		{order.TypeManufacturingTransfer, order.CategoryManufacturing},
		{order.TypeThirdPartyFulfillment, order.CategoryThirdParty},
		{order.TypeThirdPartyCrossDock, order.CategoryThirdParty},
	}

	for _, tt := range tests {
		t.Run(string(tt.orderType), func(t *testing.T) {
			assert.Equal(t, tt.want, order.CategoryFor(tt.orderType))
		})
	}

	t.Run("unmapped type defaults to ecommerce", func(t *testing.T) {
		assert.Equal(t, order.CategoryEcommerce, order.CategoryFor(order.Type("mystery")))
	})
}

func TestType_Validate(t *testing.T) {
	require.NoError(t, order.TypeThirdPartyStorage.Validate())
	require.Error(t, order.Type("mystery").Validate())
}

func TestSource_Validate(t *testing.T) {
	require.NoError(t, order.SourceShopify.Validate())
	require.NoError(t, order.SourceManualEntry.Validate())
	require.Error(t, order.Source("fax").Validate())
}

func TestIndustryCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "E-commerce", order.CategoryEcommerce.DisplayName())
	assert.Equal(t, "3PL Services", order.CategoryThirdParty.DisplayName())
	assert.Equal(t, "General", order.IndustryCategory("other").DisplayName())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse known status", func(t *testing.T) {
		s, err := order.ParseStatus("ready_for_pickup")

		require.NoError(t, err)
		assert.Equal(t, order.StatusReadyForPickup, s)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.ParseStatus("levitating")
		require.Error(t, err)
	})
}

func TestParsePriority(t *testing.T) {
	t.Run("should parse known priority", func(t *testing.T) {
		p, err := order.ParsePriority("urgent")

		require.NoError(t, err)
		assert.Equal(t, order.PriorityUrgent, p)
	})

	t.Run("should reject unknown priority", func(t *testing.T) {
		_, err := order.ParsePriority("whenever")
		require.Error(t, err)
	})
}
