package repository

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
)

// newDryRunDB opens a gorm handle that only builds SQL, without touching a
// live database.
func newDryRunDB(c *qt.C) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=barpoint dbname=barpoint",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	c.Assert(err, qt.IsNil)
	return db
}

func TestTenantScopeFiltersQueriesByCompany(t *testing.T) {
	c := qt.New(t)
	db := newDryRunDB(c)

	companyID := uuid.New()
	ctx := WithTenant(context.Background(), companyID)

	var products []entity.Product
	tx := db.WithContext(ctx).Scopes(TenantScope(ctx)).Find(&products)
	c.Assert(tx.Error, qt.IsNil)

	sql := tx.Statement.SQL.String()
	c.Assert(sql, qt.Contains, "company_id = $")
	c.Assert(tx.Statement.Vars, qt.Contains, companyID)
}

func TestTenantScopeGuardsMutations(t *testing.T) {
	c := qt.New(t)
	db := newDryRunDB(c)

	companyID := uuid.New()
	saleID := uuid.New()
	ctx := WithTenant(context.Background(), companyID)

	// The shape of a guarded status transition: a sale belonging to another
	// company can never match, so the update affects zero rows.
	tx := db.WithContext(ctx).
		Model(&entity.Sale{}).
		Scopes(TenantScope(ctx)).
		Where("id = ? AND status = ?", saleID, "pending").
		Update("status", "paid")
	c.Assert(tx.Error, qt.IsNil)

	sql := tx.Statement.SQL.String()
	c.Assert(sql, qt.Contains, "company_id = $")
	c.Assert(sql, qt.Contains, "id = $")
	c.Assert(tx.Statement.Vars, qt.Contains, companyID)
	c.Assert(tx.Statement.Vars, qt.Contains, saleID)
}

func TestTenantScopeFailsClosedWithoutTenant(t *testing.T) {
	c := qt.New(t)
	db := newDryRunDB(c)

	ctx := context.Background()

	var products []entity.Product
	tx := db.WithContext(ctx).Scopes(TenantScope(ctx)).Find(&products)
	c.Assert(tx.Error, qt.IsNil)

	sql := tx.Statement.SQL.String()
	c.Assert(sql, qt.Contains, "1 = 0")
	c.Assert(sql, qt.Not(qt.Contains), "company_id")
}

func TestTenantScopeSkippedForSystemAdmin(t *testing.T) {
	c := qt.New(t)
	db := newDryRunDB(c)

	ctx := WithSkipTenantScope(context.Background(), true)

	var products []entity.Product
	tx := db.WithContext(ctx).Scopes(TenantScope(ctx)).Find(&products)
	c.Assert(tx.Error, qt.IsNil)

	sql := tx.Statement.SQL.String()
	c.Assert(sql, qt.Not(qt.Contains), "company_id")
	c.Assert(sql, qt.Not(qt.Contains), "1 = 0")
}

func TestTenantContextHelpers(t *testing.T) {
	c := qt.New(t)

	companyID := uuid.New()

	_, ok := GetTenantID(context.Background())
	c.Assert(ok, qt.IsFalse)

	got, ok := GetTenantID(WithTenant(context.Background(), companyID))
	c.Assert(ok, qt.IsTrue)
	c.Assert(got, qt.Equals, companyID)
}
