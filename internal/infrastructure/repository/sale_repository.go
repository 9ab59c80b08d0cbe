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

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CreateWithItems inserts the sale header, its items and the stock
// decrements in a single transaction. Each decrement is conditional:
// UPDATE products SET quantity = quantity - n WHERE id = ? AND quantity >= n.
// A decrement that matches no row means insufficient stock; the whole
// transaction rolls back and the failing product IDs are returned.
func (r *saleRepository) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) ([]uuid.UUID, error) {
	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].SaleID = sale.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND company_id = ? AND quantity >= ?",
					item.ProductID, sale.CompanyID, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))

			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, item.ProductID)
			}
		}

		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}
		return nil
	})

	// Rolled back due to insufficient stock; the caller maps the IDs to a
	// validation error.
	if errors.Is(err, gorm.ErrInvalidTransaction) && len(failedIDs) > 0 {
		return failedIDs, nil
	}

	sale.Items = items
	return nil, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Items").
		Preload("Items.Product").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Scopes(TenantScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

// UpdateStatus transitions a sale only when it is still in the expected
// source status. Cancelling a sale never restores stock.
func (r *saleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.SaleStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Scopes(TenantScope(ctx)).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
