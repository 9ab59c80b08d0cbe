package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/pkg/apperror"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name  string
	CNPJ  *string
	Email *string
	Phone *string
}

// CreateSupplier creates a new supplier for the authenticated company
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	companyID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	supplier := &entity.Supplier{
		CompanyID: companyID,
		Name:      input.Name,
		CNPJ:      input.CNPJ,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with search and pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	return s.supplierRepo.List(ctx, params, search)
}

// UpdateSupplierInput represents the update supplier input. Nil fields are
// left unchanged.
type UpdateSupplierInput struct {
	Name  *string
	CNPJ  *string
	Email *string
	Phone *string
}

// UpdateSupplier updates an existing supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.CNPJ != nil {
		supplier.CNPJ = input.CNPJ
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier soft-deletes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.supplierRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Supplier")
	}
	return nil
}
