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

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) CreateWithItems(ctx context.Context, purchase *entity.Purchase, items []entity.PurchaseItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].PurchaseID = purchase.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return err
	}

	purchase.Items = items
	return nil
}

func (r *purchaseRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Supplier").
		Preload("Items").
		Preload("Items.Product").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Purchase{}).Scopes(TenantScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Preload("Items").
		Order("created_at DESC").
		Find(&purchases).Error

	return purchases, total, err
}

// MarkDelivered transitions a pending purchase to delivered and credits
// stock for each item, all in one transaction. The status guard in the
// UPDATE makes delivery exactly-once: a second call matches no row and
// reports false without touching stock.
func (r *purchaseRepository) MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error) {
	delivered := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Purchase{}).
			Scopes(TenantScope(ctx)).
			Where("id = ? AND status = ?", id, enum.PurchaseStatusPending).
			Update("status", enum.PurchaseStatusDelivered)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var items []entity.PurchaseItem
		if err := tx.Where("purchase_id = ?", id).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", item.ProductID).
				Update("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		delivered = true
		return nil
	})

	return delivered, err
}

// UpdateStatus transitions a purchase without stock side effects. Used for
// cancellation; cancelling never credits stock.
func (r *purchaseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.PurchaseStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Purchase{}).
		Scopes(TenantScope(ctx)).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
