package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// TenantIDKey is the context key for the authenticated company ID
	TenantIDKey ctxKey = "tenant_id"
	// SkipTenantScopeKey is the context key for skipping tenant scope (system admin)
	SkipTenantScopeKey ctxKey = "skip_tenant_scope"
)

// TenantScope returns a GORM scope that filters by company.
// This should be applied to all queries for company-scoped entities.
// If SkipTenantScopeKey is true in context (system admin), returns all records.
func TenantScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipTenantScopeKey).(bool); ok && skipScope {
			return db
		}

		companyID, ok := ctx.Value(TenantIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if tenant context missing
			// This prevents accidental cross-tenant data access
			return db.Where("1 = 0")
		}
		return db.Where("company_id = ?", companyID)
	}
}

// WithSkipTenantScope adds skip tenant scope flag to context (for system admins)
func WithSkipTenantScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipTenantScopeKey, skip)
}

// WithTenant adds the company ID to context
func WithTenant(ctx context.Context, companyID uuid.UUID) context.Context {
	return context.WithValue(ctx, TenantIDKey, companyID)
}

// GetTenantID extracts the company ID from context
func GetTenantID(ctx context.Context) (uuid.UUID, bool) {
	companyID, ok := ctx.Value(TenantIDKey).(uuid.UUID)
	return companyID, ok
}
