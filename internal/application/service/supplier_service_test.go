package service_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/domain/entity"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

func strPtr(s string) *string { return &s }

func newSupplierTestEnv() (*service.SupplierService, *fakeSupplierRepo, uuid.UUID, context.Context) {
	suppliers := newFakeSupplierRepo()
	companyID := uuid.New()
	ctx := infraRepo.WithTenant(context.Background(), companyID)
	return service.NewSupplierService(suppliers), suppliers, companyID, ctx
}

func TestCreateSupplier(t *testing.T) {
	c := qt.New(t)
	svc, repo, companyID, ctx := newSupplierTestEnv()

	supplier, err := svc.CreateSupplier(ctx, &service.CreateSupplierInput{
		Name:  "Distribuidora Santos",
		CNPJ:  strPtr("12.345.678/0001-90"),
		Email: strPtr("vendas@distsantos.com.br"),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(supplier.CompanyID, qt.Equals, companyID)
	c.Assert(supplier.Name, qt.Equals, "Distribuidora Santos")
	c.Assert(*supplier.CNPJ, qt.Equals, "12.345.678/0001-90")
	c.Assert(supplier.Phone, qt.IsNil)
	c.Assert(repo.suppliers, qt.HasLen, 1)
}

func TestCreateSupplierRequiresTenant(t *testing.T) {
	c := qt.New(t)
	svc := service.NewSupplierService(newFakeSupplierRepo())

	_, err := svc.CreateSupplier(context.Background(), &service.CreateSupplierInput{Name: "Sem Empresa"})
	c.Assert(err, qt.ErrorMatches, "Tenant context required")
}

func TestGetSupplierNotFound(t *testing.T) {
	c := qt.New(t)
	svc, _, _, ctx := newSupplierTestEnv()

	_, err := svc.GetSupplier(ctx, uuid.New())
	c.Assert(err, qt.ErrorMatches, "Supplier not found")
}

func TestUpdateSupplierPartial(t *testing.T) {
	c := qt.New(t)
	svc, repo, companyID, ctx := newSupplierTestEnv()

	existing := repo.add(&entity.Supplier{
		CompanyID: companyID,
		Name:      "Bebidas Litoral",
		Phone:     strPtr("(13) 99999-0000"),
	})

	updated, err := svc.UpdateSupplier(ctx, existing.ID, &service.UpdateSupplierInput{
		Email: strPtr("contato@bebidaslitoral.com.br"),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Name, qt.Equals, "Bebidas Litoral")
	c.Assert(*updated.Phone, qt.Equals, "(13) 99999-0000")
	c.Assert(*updated.Email, qt.Equals, "contato@bebidaslitoral.com.br")
}

func TestDeleteSupplier(t *testing.T) {
	c := qt.New(t)
	svc, repo, companyID, ctx := newSupplierTestEnv()

	existing := repo.add(&entity.Supplier{CompanyID: companyID, Name: "Hortifruti Central"})

	c.Assert(svc.DeleteSupplier(ctx, existing.ID), qt.IsNil)
	c.Assert(repo.suppliers, qt.HasLen, 0)
	c.Assert(svc.DeleteSupplier(ctx, existing.ID), qt.ErrorMatches, "Supplier not found")
}

func TestListSuppliers(t *testing.T) {
	c := qt.New(t)
	svc, repo, companyID, ctx := newSupplierTestEnv()

	repo.add(&entity.Supplier{CompanyID: companyID, Name: "Fornecedor A"})
	repo.add(&entity.Supplier{CompanyID: companyID, Name: "Fornecedor B"})

	suppliers, total, err := svc.ListSuppliers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "")
	c.Assert(err, qt.IsNil)
	c.Assert(total, qt.Equals, int64(2))
	c.Assert(suppliers, qt.HasLen, 2)
}
