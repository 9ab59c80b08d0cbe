package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/pkg/apperror"
)

// AccountService handles accounts receivable and payable
type AccountService struct {
	receivableRepo repository.AccountReceivableRepository
	payableRepo    repository.AccountPayableRepository
}

// NewAccountService creates a new account service
func NewAccountService(
	receivableRepo repository.AccountReceivableRepository,
	payableRepo repository.AccountPayableRepository,
) *AccountService {
	return &AccountService{
		receivableRepo: receivableRepo,
		payableRepo:    payableRepo,
	}
}

// CreateReceivableInput represents the create receivable input
type CreateReceivableInput struct {
	SaleID      *uuid.UUID
	Description string
	Amount      float64
	DueDate     time.Time
}

// CreateReceivable creates a pending accounts receivable entry
func (s *AccountService) CreateReceivable(ctx context.Context, input *CreateReceivableInput) (*entity.AccountReceivable, error) {
	companyID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	account := &entity.AccountReceivable{
		CompanyID:   companyID,
		SaleID:      input.SaleID,
		Description: input.Description,
		Amount:      int64(input.Amount*100 + 0.5),
		DueDate:     input.DueDate,
		Status:      enum.AccountStatusPending,
	}

	if err := s.receivableRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ListReceivables lists receivables with filtering and pagination
func (s *AccountService) ListReceivables(ctx context.Context, params *repository.AccountFilterParams) ([]entity.AccountReceivable, int64, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, 0, apperror.NewBadRequestError("Invalid account status")
	}
	return s.receivableRepo.List(ctx, params)
}

// UpdateReceivableStatus transitions a receivable to a new status
func (s *AccountService) UpdateReceivableStatus(ctx context.Context, id uuid.UUID, target enum.AccountStatus) (*entity.AccountReceivable, error) {
	if !target.Valid() {
		return nil, apperror.NewBadRequestError("Invalid account status")
	}

	account, err := s.receivableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Receivable")
	}

	if !account.Status.CanTransitionTo(target) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot transition receivable from %s to %s", account.Status, target))
	}

	updated, err := s.receivableRepo.UpdateStatus(ctx, id, account.Status, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot transition receivable from %s to %s", account.Status, target))
	}

	account.Status = target
	return account, nil
}

// CreatePayableInput represents the create payable input
type CreatePayableInput struct {
	SupplierID  *uuid.UUID
	Description string
	Amount      float64
	DueDate     time.Time
}

// CreatePayable creates a pending accounts payable entry
func (s *AccountService) CreatePayable(ctx context.Context, input *CreatePayableInput) (*entity.AccountPayable, error) {
	companyID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	account := &entity.AccountPayable{
		CompanyID:   companyID,
		SupplierID:  input.SupplierID,
		Description: input.Description,
		Amount:      int64(input.Amount*100 + 0.5),
		DueDate:     input.DueDate,
		Status:      enum.AccountStatusPending,
	}

	if err := s.payableRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ListPayables lists payables with filtering and pagination
func (s *AccountService) ListPayables(ctx context.Context, params *repository.AccountFilterParams) ([]entity.AccountPayable, int64, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, 0, apperror.NewBadRequestError("Invalid account status")
	}
	return s.payableRepo.List(ctx, params)
}

// UpdatePayableStatus transitions a payable to a new status
func (s *AccountService) UpdatePayableStatus(ctx context.Context, id uuid.UUID, target enum.AccountStatus) (*entity.AccountPayable, error) {
	if !target.Valid() {
		return nil, apperror.NewBadRequestError("Invalid account status")
	}

	account, err := s.payableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Payable")
	}

	if !account.Status.CanTransitionTo(target) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot transition payable from %s to %s", account.Status, target))
	}

	updated, err := s.payableRepo.UpdateStatus(ctx, id, account.Status, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot transition payable from %s to %s", account.Status, target))
	}

	account.Status = target
	return account, nil
}
