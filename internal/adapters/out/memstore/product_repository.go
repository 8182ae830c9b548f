package memstore

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// ProductRepository implements ports.ProductRepository over the in-memory store.
type ProductRepository struct {
	store *Store
}

// Add stores a new product record.
func (r *ProductRepository) Add(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	clone := *p
	r.store.products[p.ID()] = &clone
	return nil
}

// Update overwrites an existing product record, including its stock level.
func (r *ProductRepository) Update(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if _, ok := r.store.products[p.ID()]; !ok {
		return errs.NewObjectNotFoundError("productId", p.ID().String())
	}

	clone := *p
	r.store.products[p.ID()] = &clone
	return nil
}

// Get retrieves a copy of a product record by identifier.
func (r *ProductRepository) Get(_ context.Context, id kernel.ProductID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p, ok := r.store.products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("productId", id.String())
	}

	clone := *p
	return &clone, nil
}

// GetMany retrieves copies of the products for a set of identifiers.
// Fails without returning anything when any identifier is unknown, so callers
// can validate a whole order's product references in one step.
func (r *ProductRepository) GetMany(ctx context.Context, ids []kernel.ProductID) (map[kernel.ProductID]*product.Product, error) {
	products := make(map[kernel.ProductID]*product.Product, len(ids))
	for _, id := range ids {
		if _, ok := products[id]; ok {
			continue
		}

		p, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		products[id] = p
	}
	return products, nil
}

// NextID issues the next product identifier.
func (r *ProductRepository) NextID(_ context.Context) (kernel.ProductID, error) {
	return kernel.ProductID(r.store.productSeq.Next()), nil
}
