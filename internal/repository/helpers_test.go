package repository_test

import (
	"sort"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomOrder() domain.Order {
	var items []domain.Item
	for i := 0; i < gofakeit.Number(1, 5); i++ {
		items = append(items, randomItem())
	}

	// BSON datetimes keep milliseconds only
	createdAt := gofakeit.DateRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	).UTC().Truncate(time.Millisecond)

	order := domain.Order{
		UserID:    "u" + gofakeit.DigitN(5),
		Items:     items,
		Status:    domain.OrderStatus(gofakeit.RandomString([]string{"Pending", "Processing", "Shipped"})),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	order.TotalPrice = order.ItemsSubtotal().InexactFloat64()

	return order
}

func randomItem() domain.Item {
	return domain.Item{
		ProductID: "p" + gofakeit.DigitN(3),
		Name:      gofakeit.ProductName(),
		Price:     gofakeit.Price(1, 2000),
		Quantity:  gofakeit.Number(1, 10),
	}
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	// Treat empty slices as equal to nil
	opts := cmp.Options{
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.NotNil(t, actual.Items)
	assert.Equal(t, time.UTC, actual.CreatedAt.Location())
	assert.False(t, actual.UpdatedAt.Before(actual.CreatedAt))
	assert.NotEqual(t, domain.NilOrderID, actual.ID)
}

func assertOrders(t *testing.T, expected, actual []domain.Order) {
	t.Helper()

	sortOrders := func(orders []domain.Order) {
		sort.Slice(orders, func(i, j int) bool {
			return orders[i].ID.Hex() < orders[j].ID.Hex()
		})
	}

	sortOrders(expected)
	sortOrders(actual)

	require.Equal(t, len(expected), len(actual))

	for i := range expected {
		assertOrder(t, expected[i], actual[i])
	}
}
