package repository

import (
	"context"
	"time"
)

// StockCounts groups the inventory counters shown on the dashboard
type StockCounts struct {
	TotalProducts int64
	LowStock      int64 // 0 < quantity <= min_stock
	OutOfStock    int64 // quantity == 0
}

// DashboardRepository runs the per-tenant aggregate queries behind the
// dashboard. All sums are in cents and default to zero when no rows match.
// Every query is computed fresh; there is no caching layer.
type DashboardRepository interface {
	// SumPaidSales returns the total of paid sales created in [from, to).
	SumPaidSales(ctx context.Context, from, to time.Time) (int64, error)
	// CountSales returns the number of sales of any status created in [from, to).
	CountSales(ctx context.Context, from, to time.Time) (int64, error)
	StockCounts(ctx context.Context) (*StockCounts, error)
	SumPendingReceivables(ctx context.Context) (int64, error)
	SumPendingPayables(ctx context.Context) (int64, error)
}
