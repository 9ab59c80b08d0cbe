package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// AccountFilterParams holds filtering options for receivable/payable listings
type AccountFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.AccountStatus
}

// AccountReceivableRepository handles receivable entries, tenant-scoped
type AccountReceivableRepository interface {
	Create(ctx context.Context, account *entity.AccountReceivable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountReceivable, error)
	List(ctx context.Context, params *AccountFilterParams) ([]entity.AccountReceivable, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.AccountStatus) (bool, error)
}

// AccountPayableRepository handles payable entries, tenant-scoped
type AccountPayableRepository interface {
	Create(ctx context.Context, account *entity.AccountPayable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountPayable, error)
	List(ctx context.Context, params *AccountFilterParams) ([]entity.AccountPayable, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.AccountStatus) (bool, error)
}
