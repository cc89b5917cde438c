package ports

import (
	"context"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// ProductRepository defines read access to the product catalog. The catalog
// is mutated only by the admin CRUD surface, never by order entry.
type ProductRepository interface {
	// FindByIDs batch-fetches products by id. Ids absent from the catalog
	// are simply missing from the result; the caller decides whether that
	// is an error.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	// List returns the full catalog sorted by name.
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
}
