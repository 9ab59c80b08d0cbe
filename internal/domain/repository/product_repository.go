package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// ProductFilterParams holds filtering options for product listings
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *enum.ProductCategory
	LowStock   bool
}

// ProductRepository handles product persistence. All queries are scoped to
// the tenant carried in the request context.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
