package memstore_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/memstore"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_Lifecycle(t *testing.T) {
	ctx := t.Context()

	t.Run("begin_commit", func(t *testing.T) {
		uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))
	})

	t.Run("begin_is_idempotent", func(t *testing.T) {
		uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))
	})

	t.Run("commit_without_begin_fails", func(t *testing.T) {
		uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
		require.ErrorIs(t, uow.Commit(ctx), memstore.ErrNoActiveUnitOfWork)
	})

	t.Run("rollback_without_begin_is_a_noop", func(t *testing.T) {
		uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
		require.NoError(t, uow.Rollback(ctx))
	})

	t.Run("rollback_after_commit_is_a_noop", func(t *testing.T) {
		uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))
		require.NoError(t, uow.Rollback(ctx))
	})

	t.Run("operations_are_serialized", func(t *testing.T) {
		store := memstore.NewStore()
		factory := memstore.NewUnitOfWorkFactory(store)

		first := factory.Create()
		require.NoError(t, first.Begin(ctx))

		acquired := make(chan struct{})
		go func() {
			second := factory.Create()
			_ = second.Begin(ctx)
			close(acquired)
			_ = second.Commit(ctx)
		}()

		select {
		case <-acquired:
			t.Fatal("second unit of work entered the critical section concurrently")
		case <-time.After(50 * time.Millisecond):
		}

		require.NoError(t, first.Commit(ctx))
		<-acquired
	})
}

func TestRepositories_CopySemantics(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	factory := memstore.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	t.Run("customer_mutations_require_update", func(t *testing.T) {
		repo := uow.CustomerRepository()

		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		c, err := customer.NewCustomer(id, "Alice")
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, c))

		// Mutating the caller's copy must not leak into the store.
		require.NoError(t, c.AddLoyaltyPoints(500))
		stored, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored.LoyaltyPoints())

		require.NoError(t, repo.Update(ctx, c))
		stored, err = repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(500), stored.LoyaltyPoints())
	})

	t.Run("product_mutations_require_update", func(t *testing.T) {
		repo := uow.ProductRepository()

		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		p, err := product.NewProduct(id, "Laptop", decimal.RequireFromString("999.99"), 5)
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, p))

		require.NoError(t, p.AdjustStock(-5))
		stored, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(5), stored.Stock())

		require.NoError(t, repo.Update(ctx, p))
		stored, err = repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored.Stock())
	})

	t.Run("order_mutations_require_update", func(t *testing.T) {
		repo := uow.OrderRepository()

		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		item, err := order.NewItem(kernel.ProductID(1), 1)
		require.NoError(t, err)
		o, err := order.NewOrder(id, kernel.CustomerID(1), []order.Item{item}, time.Now())
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, o))

		require.NoError(t, o.Process())
		stored, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, order.Pending, stored.Status())

		require.NoError(t, repo.Update(ctx, o))
		stored, err = repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, order.Processing, stored.Status())
	})
}

func TestRepositories_NotFound(t *testing.T) {
	ctx := t.Context()
	uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.CustomerRepository().Get(ctx, kernel.CustomerID(1))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = uow.ProductRepository().Get(ctx, kernel.ProductID(1))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = uow.OrderRepository().Get(ctx, kernel.OrderID(1))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	c, err := customer.NewCustomer(kernel.CustomerID(9), "Ghost")
	require.NoError(t, err)
	require.ErrorIs(t, uow.CustomerRepository().Update(ctx, c), errs.ErrObjectNotFound)
}

func TestRepositories_Sequences(t *testing.T) {
	ctx := t.Context()
	uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	t.Run("each_entity_type_counts_from_one", func(t *testing.T) {
		customerID, err := uow.CustomerRepository().NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, kernel.CustomerID(1), customerID)

		productID, err := uow.ProductRepository().NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, kernel.ProductID(1), productID)

		orderID, err := uow.OrderRepository().NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, kernel.OrderID(1), orderID)
	})

	t.Run("identifiers_are_never_reused", func(t *testing.T) {
		first, err := uow.OrderRepository().NextID(ctx)
		require.NoError(t, err)
		second, err := uow.OrderRepository().NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, first+1, second)
	})
}

func TestProductRepository_GetMany(t *testing.T) {
	ctx := t.Context()
	uow := memstore.NewUnitOfWorkFactory(memstore.NewStore()).Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.ProductRepository()
	for _, name := range []string{"Laptop", "Smartphone"} {
		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		p, err := product.NewProduct(id, name, decimal.NewFromInt(100), 10)
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, p))
	}

	t.Run("returns_all_requested", func(t *testing.T) {
		products, err := repo.GetMany(ctx, []kernel.ProductID{1, 2})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Laptop", products[1].Name())
		assert.Equal(t, "Smartphone", products[2].Name())
	})

	t.Run("duplicate_ids_collapse", func(t *testing.T) {
		products, err := repo.GetMany(ctx, []kernel.ProductID{1, 1})
		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("any_unknown_id_fails_the_whole_lookup", func(t *testing.T) {
		_, err := repo.GetMany(ctx, []kernel.ProductID{1, 9})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
