package service_test

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
)

func newAccountTestEnv() (*service.AccountService, context.Context) {
	svc := service.NewAccountService(newFakeAccountReceivableRepo(), newFakeAccountPayableRepo())
	ctx := infraRepo.WithTenant(context.Background(), uuid.New())
	return svc, ctx
}

func TestCreateReceivable(t *testing.T) {
	c := qt.New(t)
	svc, ctx := newAccountTestEnv()

	due := time.Now().AddDate(0, 0, 30)
	account, err := svc.CreateReceivable(ctx, &service.CreateReceivableInput{
		Description: "Comanda fiada mesa 12",
		Amount:      130.00,
		DueDate:     due,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(account.Amount, qt.Equals, int64(13000))
	c.Assert(account.Status, qt.Equals, enum.AccountStatusPending)
	c.Assert(account.DueDate, qt.Equals, due)
}

func TestCreateReceivableValidation(t *testing.T) {
	c := qt.New(t)
	svc, ctx := newAccountTestEnv()

	_, err := svc.CreateReceivable(ctx, &service.CreateReceivableInput{Amount: 0})
	c.Assert(err, qt.ErrorMatches, "Amount must be positive")

	_, err = svc.CreateReceivable(context.Background(), &service.CreateReceivableInput{Amount: 10})
	c.Assert(err, qt.ErrorMatches, "Tenant context required")
}

func TestReceivableStatusTransitions(t *testing.T) {
	c := qt.New(t)
	svc, ctx := newAccountTestEnv()

	account, err := svc.CreateReceivable(ctx, &service.CreateReceivableInput{
		Description: "Comanda fiada",
		Amount:      50.00,
		DueDate:     time.Now(),
	})
	c.Assert(err, qt.IsNil)

	// Pending and overdue flip back and forth until settled
	overdue, err := svc.UpdateReceivableStatus(ctx, account.ID, enum.AccountStatusOverdue)
	c.Assert(err, qt.IsNil)
	c.Assert(overdue.Status, qt.Equals, enum.AccountStatusOverdue)

	paid, err := svc.UpdateReceivableStatus(ctx, account.ID, enum.AccountStatusPaid)
	c.Assert(err, qt.IsNil)
	c.Assert(paid.Status, qt.Equals, enum.AccountStatusPaid)

	// Paid is terminal
	_, err = svc.UpdateReceivableStatus(ctx, account.ID, enum.AccountStatusPending)
	c.Assert(err, qt.ErrorMatches, "Cannot transition receivable from paid to pending")
}

func TestUpdateReceivableStatusNotFound(t *testing.T) {
	c := qt.New(t)
	svc, ctx := newAccountTestEnv()

	_, err := svc.UpdateReceivableStatus(ctx, uuid.New(), enum.AccountStatusPaid)
	c.Assert(err, qt.ErrorMatches, "Receivable not found")
}

func TestCreatePayableWithSupplier(t *testing.T) {
	c := qt.New(t)
	svc, ctx := newAccountTestEnv()

	supplierID := uuid.New()
	account, err := svc.CreatePayable(ctx, &service.CreatePayableInput{
		SupplierID:  &supplierID,
		Description: "Fatura distribuidora agosto",
		Amount:      2350.75,
		DueDate:     time.Now().AddDate(0, 1, 0),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(account.Amount, qt.Equals, int64(235075))
	c.Assert(account.SupplierID, qt.Not(qt.IsNil))
	c.Assert(*account.SupplierID, qt.Equals, supplierID)
}

func TestPayableStatusTransitions(t *testing.T) {
	c := qt.New(t)
	svc, ctx := newAccountTestEnv()

	account, err := svc.CreatePayable(ctx, &service.CreatePayableInput{
		Description: "Fatura",
		Amount:      100.00,
		DueDate:     time.Now(),
	})
	c.Assert(err, qt.IsNil)

	cancelled, err := svc.UpdatePayableStatus(ctx, account.ID, enum.AccountStatusCancelled)
	c.Assert(err, qt.IsNil)
	c.Assert(cancelled.Status, qt.Equals, enum.AccountStatusCancelled)

	_, err = svc.UpdatePayableStatus(ctx, account.ID, enum.AccountStatusPaid)
	c.Assert(err, qt.ErrorMatches, "Cannot transition payable from cancelled to paid")
}

func TestListReceivablesFiltersByStatus(t *testing.T) {
	c := qt.New(t)
	svc, ctx := newAccountTestEnv()

	first, err := svc.CreateReceivable(ctx, &service.CreateReceivableInput{
		Description: "Comanda 1", Amount: 10, DueDate: time.Now(),
	})
	c.Assert(err, qt.IsNil)
	_, err = svc.CreateReceivable(ctx, &service.CreateReceivableInput{
		Description: "Comanda 2", Amount: 20, DueDate: time.Now(),
	})
	c.Assert(err, qt.IsNil)

	_, err = svc.UpdateReceivableStatus(ctx, first.ID, enum.AccountStatusPaid)
	c.Assert(err, qt.IsNil)

	pending := enum.AccountStatusPending
	items, total, err := svc.ListReceivables(ctx, &repository.AccountFilterParams{Status: &pending})
	c.Assert(err, qt.IsNil)
	c.Assert(total, qt.Equals, int64(1))
	c.Assert(items[0].Description, qt.Equals, "Comanda 2")

	bad := enum.AccountStatus("void")
	_, _, err = svc.ListReceivables(ctx, &repository.AccountFilterParams{Status: &bad})
	c.Assert(err, qt.ErrorMatches, "Invalid account status")
}
