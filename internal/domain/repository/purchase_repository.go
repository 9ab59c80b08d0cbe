package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// PurchaseFilterParams holds filtering options for purchase listings
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.PurchaseStatus
}

// PurchaseRepository handles purchase persistence. MarkDelivered performs
// the status change and the stock credits in one transaction, guarded so a
// purchase can only be delivered from the pending state.
type PurchaseRepository interface {
	CreateWithItems(ctx context.Context, purchase *entity.Purchase, items []entity.PurchaseItem) error
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
	// MarkDelivered transitions a pending purchase to delivered and
	// increments each referenced product's stock by the purchased amount,
	// exactly once. It reports false when the purchase does not exist
	// in-tenant or is not pending.
	MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error)
	// UpdateStatus transitions a purchase without stock side effects
	// (pending -> cancelled). It reports false when the purchase does not
	// exist in-tenant or is not in the expected source status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.PurchaseStatus) (bool, error)
}
