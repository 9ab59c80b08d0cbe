package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	domainRepo "github.com/barpoint/barpoint-api/internal/domain/repository"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) ListAll(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Company, error) {
	result := r.db.WithContext(ctx).Model(&entity.Company{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

type companyUserRepository struct {
	db *gorm.DB
}

// NewCompanyUserRepository creates a new company user repository
func NewCompanyUserRepository(db *gorm.DB) domainRepo.CompanyUserRepository {
	return &companyUserRepository{db: db}
}

func (r *companyUserRepository) Create(ctx context.Context, user *entity.CompanyUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *companyUserRepository) GetByID(ctx context.Context, id, companyID uuid.UUID) (*entity.CompanyUser, error) {
	var user entity.CompanyUser
	err := r.db.WithContext(ctx).
		First(&user, "id = ? AND company_id = ?", id, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *companyUserRepository) GetByEmail(ctx context.Context, email string) (*entity.CompanyUser, error) {
	var user entity.CompanyUser
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *companyUserRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.CompanyUser, error) {
	var users []entity.CompanyUser
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *companyUserRepository) SetActive(ctx context.Context, id, companyID uuid.UUID, active bool) (*entity.CompanyUser, error) {
	result := r.db.WithContext(ctx).Model(&entity.CompanyUser{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("active", active)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id, companyID)
}

func (r *companyUserRepository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.CompanyUser{}, "id = ? AND company_id = ?", id, companyID).Error
}
