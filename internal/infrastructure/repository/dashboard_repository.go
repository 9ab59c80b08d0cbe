package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	domainRepo "github.com/barpoint/barpoint-api/internal/domain/repository"
)

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) domainRepo.DashboardRepository {
	return &dashboardRepository{db: db}
}

// SumPaidSales returns the total of paid sales created in [from, to), in cents
func (r *dashboardRepository) SumPaidSales(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Scopes(TenantScope(ctx)).
		Where("status = ? AND created_at >= ? AND created_at < ?", enum.SaleStatusPaid, from, to).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

// CountSales returns the number of sales of any status created in [from, to)
func (r *dashboardRepository) CountSales(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Scopes(TenantScope(ctx)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) StockCounts(ctx context.Context) (*domainRepo.StockCounts, error) {
	var counts domainRepo.StockCounts

	query := r.db.WithContext(ctx).Model(&entity.Product{}).Scopes(TenantScope(ctx))

	if err := query.Session(&gorm.Session{}).Count(&counts.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := query.Session(&gorm.Session{}).
		Where("quantity > 0 AND quantity <= min_stock").
		Count(&counts.LowStock).Error; err != nil {
		return nil, err
	}
	if err := query.Session(&gorm.Session{}).
		Where("quantity = 0").
		Count(&counts.OutOfStock).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}

func (r *dashboardRepository) SumPendingReceivables(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.AccountReceivable{}).
		Scopes(TenantScope(ctx)).
		Where("status = ?", enum.AccountStatusPending).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) SumPendingPayables(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.AccountPayable{}).
		Scopes(TenantScope(ctx)).
		Where("status = ?", enum.AccountStatusPending).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
