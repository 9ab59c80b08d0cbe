package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	domainRepo "github.com/barpoint/barpoint-api/internal/domain/repository"
)

type accountReceivableRepository struct {
	db *gorm.DB
}

// NewAccountReceivableRepository creates a new receivable repository
func NewAccountReceivableRepository(db *gorm.DB) domainRepo.AccountReceivableRepository {
	return &accountReceivableRepository{db: db}
}

func (r *accountReceivableRepository) Create(ctx context.Context, account *entity.AccountReceivable) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountReceivableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountReceivable, error) {
	var account entity.AccountReceivable
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountReceivableRepository) List(ctx context.Context, params *domainRepo.AccountFilterParams) ([]entity.AccountReceivable, int64, error) {
	var accounts []entity.AccountReceivable
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AccountReceivable{}).Scopes(TenantScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("due_date ASC").
		Find(&accounts).Error

	return accounts, total, err
}

func (r *accountReceivableRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.AccountStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.AccountReceivable{}).
		Scopes(TenantScope(ctx)).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type accountPayableRepository struct {
	db *gorm.DB
}

// NewAccountPayableRepository creates a new payable repository
func NewAccountPayableRepository(db *gorm.DB) domainRepo.AccountPayableRepository {
	return &accountPayableRepository{db: db}
}

func (r *accountPayableRepository) Create(ctx context.Context, account *entity.AccountPayable) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountPayableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountPayable, error) {
	var account entity.AccountPayable
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountPayableRepository) List(ctx context.Context, params *domainRepo.AccountFilterParams) ([]entity.AccountPayable, int64, error) {
	var accounts []entity.AccountPayable
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AccountPayable{}).Scopes(TenantScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("due_date ASC").
		Find(&accounts).Error

	return accounts, total, err
}

func (r *accountPayableRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.AccountStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.AccountPayable{}).
		Scopes(TenantScope(ctx)).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
