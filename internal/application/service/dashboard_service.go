package service

import (
	"context"
	"time"

	"github.com/barpoint/barpoint-api/internal/domain/repository"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/pkg/apperror"
)

// DashboardService aggregates the per-tenant dashboard figures
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// DashboardStats is the full dashboard payload. Monetary figures are
// decimal amounts.
type DashboardStats struct {
	TodaySales         float64 `json:"today_sales"`
	TodaySalesCount    int64   `json:"today_sales_count"`
	MonthSales         float64 `json:"month_sales"`
	TotalProducts      int64   `json:"total_products"`
	LowStockCount      int64   `json:"low_stock_count"`
	OutOfStockCount    int64   `json:"out_of_stock_count"`
	PendingReceivables float64 `json:"pending_receivables"`
	PendingPayables    float64 `json:"pending_payables"`
}

// GetStats computes every figure fresh from the database. Today runs from
// the server-local day start; month from the first of the calendar month.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	if _, ok := infraRepo.GetTenantID(ctx); !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	tomorrow := dayStart.AddDate(0, 0, 1)

	todaySales, err := s.dashboardRepo.SumPaidSales(ctx, dayStart, tomorrow)
	if err != nil {
		return nil, err
	}

	todayCount, err := s.dashboardRepo.CountSales(ctx, dayStart, tomorrow)
	if err != nil {
		return nil, err
	}

	monthSales, err := s.dashboardRepo.SumPaidSales(ctx, monthStart, tomorrow)
	if err != nil {
		return nil, err
	}

	stock, err := s.dashboardRepo.StockCounts(ctx)
	if err != nil {
		return nil, err
	}

	receivables, err := s.dashboardRepo.SumPendingReceivables(ctx)
	if err != nil {
		return nil, err
	}

	payables, err := s.dashboardRepo.SumPendingPayables(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodaySales:         float64(todaySales) / 100,
		TodaySalesCount:    todayCount,
		MonthSales:         float64(monthSales) / 100,
		TotalProducts:      stock.TotalProducts,
		LowStockCount:      stock.LowStock,
		OutOfStockCount:    stock.OutOfStock,
		PendingReceivables: float64(receivables) / 100,
		PendingPayables:    float64(payables) / 100,
	}, nil
}
