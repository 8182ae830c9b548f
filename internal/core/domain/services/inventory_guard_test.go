package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(t *testing.T, stocks map[int64]int64) map[kernel.ProductID]*product.Product {
	t.Helper()
	products := make(map[kernel.ProductID]*product.Product, len(stocks))
	for id, stock := range stocks {
		p, err := product.NewProduct(kernel.ProductID(id), "product", decimal.NewFromInt(10), stock)
		require.NoError(t, err)
		products[kernel.ProductID(id)] = p
	}
	return products
}

func items(t *testing.T, lines ...[2]int64) []order.Item {
	t.Helper()
	result := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(kernel.ProductID(line[0]), line[1])
		require.NoError(t, err)
		result = append(result, item)
	}
	return result
}

func TestInventoryGuard_Reserve(t *testing.T) {
	guard := services.NewInventoryGuard()

	t.Run("decrements_every_line", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 5, 2: 15})

		err := guard.Reserve(products, items(t, [2]int64{1, 1}, [2]int64{2, 1}))

		require.NoError(t, err)
		assert.Equal(t, int64(4), products[1].Stock())
		assert.Equal(t, int64(14), products[2].Stock())
	})

	t.Run("insufficient_stock_leaves_everything_untouched", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 5, 2: 15, 3: 0})

		err := guard.Reserve(products, items(t, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1}))

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, int64(5), products[1].Stock())
		assert.Equal(t, int64(15), products[2].Stock())
		assert.Equal(t, int64(0), products[3].Stock())
	})

	t.Run("unknown_product_leaves_everything_untouched", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 5})

		err := guard.Reserve(products, items(t, [2]int64{1, 2}, [2]int64{9, 1}))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, int64(5), products[1].Stock())
	})

	t.Run("duplicate_lines_for_one_product_are_summed", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 5})

		err := guard.Reserve(products, items(t, [2]int64{1, 3}, [2]int64{1, 3}))

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, int64(5), products[1].Stock())
	})

	t.Run("exact_stock_is_reservable", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 5})

		require.NoError(t, guard.Reserve(products, items(t, [2]int64{1, 5})))
		assert.Equal(t, int64(0), products[1].Stock())
	})
}

func TestInventoryGuard_Release(t *testing.T) {
	guard := services.NewInventoryGuard()

	t.Run("restores_reserved_quantities", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 5, 2: 15})
		orderItems := items(t, [2]int64{1, 2}, [2]int64{2, 4})

		require.NoError(t, guard.Reserve(products, orderItems))
		require.NoError(t, guard.Release(products, orderItems))

		assert.Equal(t, int64(5), products[1].Stock())
		assert.Equal(t, int64(15), products[2].Stock())
	})

	t.Run("release_is_unconditional", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 0})

		require.NoError(t, guard.Release(products, items(t, [2]int64{1, 3})))
		assert.Equal(t, int64(3), products[1].Stock())
	})
}

func TestInventoryGuard_OrderTotal(t *testing.T) {
	guard := services.NewInventoryGuard()

	t.Run("sums_price_times_quantity", func(t *testing.T) {
		laptop, err := product.NewProduct(kernel.ProductID(1), "Laptop",
			decimal.RequireFromString("999.99"), 5)
		require.NoError(t, err)
		headphones, err := product.NewProduct(kernel.ProductID(2), "Wireless Headphones",
			decimal.RequireFromString("129.99"), 15)
		require.NoError(t, err)

		products := map[kernel.ProductID]*product.Product{1: laptop, 2: headphones}

		total, err := guard.OrderTotal(products, items(t, [2]int64{1, 1}, [2]int64{2, 1}))
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("1129.98")), "got %s", total)
		assert.Equal(t, int64(1129), total.Floor().IntPart())
	})

	t.Run("unknown_product_fails", func(t *testing.T) {
		products := catalog(t, map[int64]int64{1: 5})
		_, err := guard.OrderTotal(products, items(t, [2]int64{9, 1}))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
