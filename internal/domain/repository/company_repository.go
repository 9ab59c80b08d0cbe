package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
)

// CompanyRepository handles company (tenant) persistence. These operations
// are not tenant-scoped: they back authentication and the system-admin
// surface.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	ListAll(ctx context.Context) ([]entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Company, error)
}

// CompanyUserRepository handles sub-user accounts. Lookups other than
// GetByEmail are keyed by (id, companyID) so a user can never be addressed
// through another company.
type CompanyUserRepository interface {
	Create(ctx context.Context, user *entity.CompanyUser) error
	GetByID(ctx context.Context, id, companyID uuid.UUID) (*entity.CompanyUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.CompanyUser, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.CompanyUser, error)
	SetActive(ctx context.Context, id, companyID uuid.UUID, active bool) (*entity.CompanyUser, error)
	Delete(ctx context.Context, id, companyID uuid.UUID) error
}
