package orderrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromString("12.50")
	require.NoError(t, err)
	item, err := order.NewItem("MEAL-1", "Pad Thai", 2, price)
	require.NoError(t, err)
	item = item.WithNotes("extra spicy")

	o, err := order.NewOrder(
		kernel.NewOrderID(),
		"CUST-001",
		order.TypeFoodDeliveryCustomer,
		order.SourceUberEats,
		[]order.Item{item},
		order.Address{"street": "123 Main St", "city": "San Francisco"},
		&order.FoodDeliveryData{
			RestaurantID:            "REST-1",
			RestaurantName:          "Thai Palace",
			CustomerPhone:           "+15550001111",
			PreparationTimeMinutes:  30,
			TemperatureRequirements: "hot",
			AllergenInfo:            []string{"peanuts"},
		},
	)
	require.NoError(t, err)
	return o
}

func TestOrderDTO_RoundTrip(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.ApplyStatus(order.StatusConfirmed))
	tax, err := kernel.NewMoneyFromString("2.10")
	require.NoError(t, err)
	o.SetCharges(tax, kernel.ZeroMoney(), kernel.ZeroMoney())
	require.NoError(t, o.AssignWarehouse("WH-002"))
	o.AddTag("allergy")

	dto, err := fromDomain(o)
	require.NoError(t, err)
	assert.Equal(t, o.ID().String(), dto.ID)
	assert.Equal(t, "food_delivery", dto.IndustryCategory)
	assert.NotEmpty(t, dto.IndustryData)

	restored, err := toDomain(dto)
	require.NoError(t, err)

	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, order.StatusConfirmed, restored.Status())
	assert.Equal(t, "WH-002", restored.WarehouseID())
	assert.True(t, restored.TotalAmount().IsEqual(o.TotalAmount()))
	assert.Equal(t, []string{"allergy"}, restored.Tags())

	food, ok := restored.IndustryData().(*order.FoodDeliveryData)
	require.True(t, ok)
	assert.Equal(t, "Thai Palace", food.RestaurantName)
	assert.Equal(t, 30, food.PreparationTimeMinutes)
	assert.Equal(t, []string{"peanuts"}, food.AllergenInfo)

	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "extra spicy", items[0].Notes())
	assert.Equal(t, "25.00", items[0].TotalPrice().String())
}

func TestDecodeIndustryData(t *testing.T) {
	t.Run("should restore nil payload from empty bytes", func(t *testing.T) {
		data, err := decodeIndustryData(order.CategoryEcommerce, nil)

		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("should reject an unknown category with a stored payload", func(t *testing.T) {
		_, err := decodeIndustryData(order.IndustryCategory("drones"), []byte(`{}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown industry category")
	})

	t.Run("should decode the payload type named by the category", func(t *testing.T) {
		raw := []byte(`{"client_id":"CLIENT-1","client_name":"Brand Co","service_type":"storage"}`)

		data, err := decodeIndustryData(order.CategoryThirdParty, raw)

		require.NoError(t, err)
		tpl, ok := data.(*order.ThirdPartyData)
		require.True(t, ok)
		assert.Equal(t, "CLIENT-1", tpl.ClientID)
		assert.Equal(t, "storage", tpl.ServiceType)
	})
}
