package enum_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
)

func TestSaleStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    enum.SaleStatus
		to      enum.SaleStatus
		allowed bool
	}{
		{name: "pending to paid", from: enum.SaleStatusPending, to: enum.SaleStatusPaid, allowed: true},
		{name: "pending to cancelled", from: enum.SaleStatusPending, to: enum.SaleStatusCancelled, allowed: true},
		{name: "paid to cancelled", from: enum.SaleStatusPaid, to: enum.SaleStatusCancelled, allowed: false},
		{name: "paid to pending", from: enum.SaleStatusPaid, to: enum.SaleStatusPending, allowed: false},
		{name: "cancelled to paid", from: enum.SaleStatusCancelled, to: enum.SaleStatusPaid, allowed: false},
		{name: "pending to itself", from: enum.SaleStatusPending, to: enum.SaleStatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tt.from.CanTransitionTo(tt.to), qt.Equals, tt.allowed)
		})
	}
}

func TestPurchaseStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    enum.PurchaseStatus
		to      enum.PurchaseStatus
		allowed bool
	}{
		{name: "pending to delivered", from: enum.PurchaseStatusPending, to: enum.PurchaseStatusDelivered, allowed: true},
		{name: "pending to cancelled", from: enum.PurchaseStatusPending, to: enum.PurchaseStatusCancelled, allowed: true},
		{name: "delivered is terminal", from: enum.PurchaseStatusDelivered, to: enum.PurchaseStatusCancelled, allowed: false},
		{name: "delivered cannot repeat", from: enum.PurchaseStatusDelivered, to: enum.PurchaseStatusDelivered, allowed: false},
		{name: "cancelled is terminal", from: enum.PurchaseStatusCancelled, to: enum.PurchaseStatusDelivered, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tt.from.CanTransitionTo(tt.to), qt.Equals, tt.allowed)
		})
	}
}

func TestAccountStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    enum.AccountStatus
		to      enum.AccountStatus
		allowed bool
	}{
		{name: "pending to paid", from: enum.AccountStatusPending, to: enum.AccountStatusPaid, allowed: true},
		{name: "pending to overdue", from: enum.AccountStatusPending, to: enum.AccountStatusOverdue, allowed: true},
		{name: "pending to cancelled", from: enum.AccountStatusPending, to: enum.AccountStatusCancelled, allowed: true},
		{name: "overdue to paid", from: enum.AccountStatusOverdue, to: enum.AccountStatusPaid, allowed: true},
		{name: "overdue back to pending", from: enum.AccountStatusOverdue, to: enum.AccountStatusPending, allowed: true},
		{name: "paid is terminal", from: enum.AccountStatusPaid, to: enum.AccountStatusPending, allowed: false},
		{name: "cancelled is terminal", from: enum.AccountStatusCancelled, to: enum.AccountStatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tt.from.CanTransitionTo(tt.to), qt.Equals, tt.allowed)
		})
	}
}

func TestProductCategoryValid(t *testing.T) {
	c := qt.New(t)

	c.Assert(enum.CategoryBebidas.Valid(), qt.IsTrue)
	c.Assert(enum.CategoryComidas.Valid(), qt.IsTrue)
	c.Assert(enum.CategoryOutros.Valid(), qt.IsTrue)
	c.Assert(enum.ProductCategory("eletronicos").Valid(), qt.IsFalse)
	c.Assert(enum.ProductCategory("").Valid(), qt.IsFalse)
}

func TestUserType(t *testing.T) {
	c := qt.New(t)

	c.Assert(enum.UserTypeSystemAdmin.IsSystemAdmin(), qt.IsTrue)
	c.Assert(enum.UserTypeCompanyAdmin.IsSystemAdmin(), qt.IsFalse)
	c.Assert(enum.UserTypeCompanyUser.IsSystemAdmin(), qt.IsFalse)
	c.Assert(enum.UserType("root").Valid(), qt.IsFalse)
}
