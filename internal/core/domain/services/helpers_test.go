package services_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItems(t *testing.T, count int) []order.Item {
	t.Helper()
	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	items := make([]order.Item, 0, count)
	for i := 0; i < count; i++ {
		item, err := order.NewItem(string(rune('A'+i))+"-SKU", "", 1, price)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func buildOrder(t *testing.T, orderType order.Type, source order.Source, itemCount int, data order.IndustryData) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewOrderID(),
		"CUST-001",
		orderType,
		source,
		testItems(t, itemCount),
		order.Address{"street": "1 Test Way", "city": "Los Angeles"},
		data,
	)
	require.NoError(t, err)
	return o
}
