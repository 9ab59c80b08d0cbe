package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// SaleFilterParams holds filtering options for sale listings
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.SaleStatus
}

// SaleRepository handles sale persistence. CreateWithItems runs the whole
// sale-creation flow (header, items, stock decrements) in one database
// transaction; products whose stock would go negative abort it.
type SaleRepository interface {
	// CreateWithItems atomically inserts the sale and its items and
	// decrements each referenced product's stock. It returns the IDs of
	// products with insufficient stock; when non-empty, nothing was
	// persisted.
	CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) ([]uuid.UUID, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// UpdateStatus transitions a sale from one status to another. It
	// reports false when the sale does not exist in-tenant or is no longer
	// in the expected source status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.SaleStatus) (bool, error)
}
