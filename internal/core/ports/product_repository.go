package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product records.
type ProductRepository interface {
	// Add stores a new product under a freshly issued identifier.
	Add(ctx context.Context, p *product.Product) error

	// Update persists changes to an existing product, including stock levels.
	Update(ctx context.Context, p *product.Product) error

	// Get retrieves a product by identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no record exists.
	Get(ctx context.Context, id kernel.ProductID) (*product.Product, error)

	// GetMany retrieves the products for a set of identifiers.
	// Returns errs.ErrObjectNotFound (wrapped) when any identifier is unknown;
	// in that case no products are returned.
	GetMany(ctx context.Context, ids []kernel.ProductID) (map[kernel.ProductID]*product.Product, error)

	// NextID issues the next product identifier, starting at 1.
	NextID(ctx context.Context) (kernel.ProductID, error)
}
