package service_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/pkg/apperror"
)

func newPurchaseTestEnv() (*service.PurchaseService, *fakeProductRepo, *fakeSupplierRepo, context.Context) {
	products := newFakeProductRepo()
	suppliers := newFakeSupplierRepo()
	purchases := newFakePurchaseRepo(products)
	svc := service.NewPurchaseService(purchases, suppliers, products)
	ctx := infraRepo.WithTenant(context.Background(), uuid.New())
	return svc, products, suppliers, ctx
}

func TestCreatePurchaseDoesNotTouchStock(t *testing.T) {
	c := qt.New(t)
	svc, products, suppliers, ctx := newPurchaseTestEnv()

	supplier := suppliers.add(&entity.Supplier{Name: "Distribuidora Central"})
	beer := products.add(&entity.Product{Name: "Cerveja Lata", Quantity: 10})

	purchase, err := svc.CreatePurchase(ctx, &service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items: []service.PurchaseItemInput{
			{ProductID: beer.ID, Quantity: 48, UnitPrice: 3.20},
		},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(purchase.Status, qt.Equals, enum.PurchaseStatusPending)
	// 48 * 3.20 = 153.60
	c.Assert(purchase.Total, qt.Equals, int64(15360))

	// Stock only moves on delivery
	c.Assert(products.products[beer.ID].Quantity, qt.Equals, 10)
}

func TestCreatePurchaseUnknownSupplier(t *testing.T) {
	c := qt.New(t)
	svc, products, _, ctx := newPurchaseTestEnv()
	beer := products.add(&entity.Product{Name: "Cerveja Lata"})

	_, err := svc.CreatePurchase(ctx, &service.CreatePurchaseInput{
		SupplierID: uuid.New(),
		Items:      []service.PurchaseItemInput{{ProductID: beer.ID, Quantity: 1, UnitPrice: 3.20}},
	})
	c.Assert(err, qt.ErrorMatches, "Supplier not found")
}

func TestDeliverPurchaseCreditsStockOnce(t *testing.T) {
	c := qt.New(t)
	svc, products, suppliers, ctx := newPurchaseTestEnv()

	supplier := suppliers.add(&entity.Supplier{Name: "Distribuidora Central"})
	beer := products.add(&entity.Product{Name: "Cerveja Lata", Quantity: 10})

	purchase, err := svc.CreatePurchase(ctx, &service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items:      []service.PurchaseItemInput{{ProductID: beer.ID, Quantity: 48, UnitPrice: 3.20}},
	})
	c.Assert(err, qt.IsNil)

	delivered, err := svc.DeliverPurchase(ctx, purchase.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(delivered.Status, qt.Equals, enum.PurchaseStatusDelivered)
	c.Assert(products.products[beer.ID].Quantity, qt.Equals, 58)

	// Second delivery is rejected and must not credit stock again
	_, err = svc.DeliverPurchase(ctx, purchase.ID)
	c.Assert(err, qt.ErrorMatches, "Cannot deliver purchase in delivered status")
	c.Assert(products.products[beer.ID].Quantity, qt.Equals, 58)

	var appErr *apperror.AppError
	c.Assert(err, qt.ErrorAs, &appErr)
	c.Assert(appErr.Code, qt.Equals, 409)
}

func TestDeliverPurchaseNotFound(t *testing.T) {
	c := qt.New(t)
	svc, _, _, ctx := newPurchaseTestEnv()

	_, err := svc.DeliverPurchase(ctx, uuid.New())
	c.Assert(err, qt.ErrorMatches, "Purchase not found")
}

func TestCancelPurchase(t *testing.T) {
	c := qt.New(t)
	svc, products, suppliers, ctx := newPurchaseTestEnv()

	supplier := suppliers.add(&entity.Supplier{Name: "Distribuidora Central"})
	beer := products.add(&entity.Product{Name: "Cerveja Lata", Quantity: 10})

	purchase, err := svc.CreatePurchase(ctx, &service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items:      []service.PurchaseItemInput{{ProductID: beer.ID, Quantity: 48, UnitPrice: 3.20}},
	})
	c.Assert(err, qt.IsNil)

	cancelled, err := svc.CancelPurchase(ctx, purchase.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(cancelled.Status, qt.Equals, enum.PurchaseStatusCancelled)
	c.Assert(products.products[beer.ID].Quantity, qt.Equals, 10)

	// Cancelled purchases cannot be delivered
	_, err = svc.DeliverPurchase(ctx, purchase.ID)
	c.Assert(err, qt.ErrorMatches, "Cannot deliver purchase in cancelled status")
}

func TestCancelDeliveredPurchaseRejected(t *testing.T) {
	c := qt.New(t)
	svc, products, suppliers, ctx := newPurchaseTestEnv()

	supplier := suppliers.add(&entity.Supplier{Name: "Distribuidora Central"})
	beer := products.add(&entity.Product{Name: "Cerveja Lata", Quantity: 10})

	purchase, err := svc.CreatePurchase(ctx, &service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items:      []service.PurchaseItemInput{{ProductID: beer.ID, Quantity: 12, UnitPrice: 3.20}},
	})
	c.Assert(err, qt.IsNil)

	_, err = svc.DeliverPurchase(ctx, purchase.ID)
	c.Assert(err, qt.IsNil)

	// Cancelling a delivered purchase fails and never reverses the credit
	_, err = svc.CancelPurchase(ctx, purchase.ID)
	c.Assert(err, qt.ErrorMatches, "Cannot cancel purchase in delivered status")
	c.Assert(products.products[beer.ID].Quantity, qt.Equals, 22)
}
