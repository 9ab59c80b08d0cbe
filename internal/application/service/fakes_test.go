package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// In-memory repository fakes backing the service tests.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.add(product)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

type fakeSaleRepo struct {
	products *fakeProductRepo
	sales    map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo(products *fakeProductRepo) *fakeSaleRepo {
	return &fakeSaleRepo{products: products, sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for _, item := range items {
		p, ok := r.products.products[item.ProductID]
		if !ok || p.Quantity < item.Quantity {
			failed = append(failed, item.ProductID)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}

	sale.ID = uuid.New()
	sale.CreatedAt = time.Now()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].SaleID = sale.ID
		r.products.products[items[i].ProductID].Quantity -= items[i].Quantity
	}
	sale.Items = items
	r.sales[sale.ID] = sale
	return nil, nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if params.Status != nil && s.Status != *params.Status {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.SaleStatus) (bool, error) {
	s, ok := r.sales[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

type fakePurchaseRepo struct {
	products  *fakeProductRepo
	purchases map[uuid.UUID]*entity.Purchase
}

func newFakePurchaseRepo(products *fakeProductRepo) *fakePurchaseRepo {
	return &fakePurchaseRepo{products: products, purchases: make(map[uuid.UUID]*entity.Purchase)}
}

func (r *fakePurchaseRepo) CreateWithItems(ctx context.Context, purchase *entity.Purchase, items []entity.PurchaseItem) error {
	purchase.ID = uuid.New()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].PurchaseID = purchase.ID
	}
	purchase.Items = items
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range r.purchases {
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseRepo) MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error) {
	p, ok := r.purchases[id]
	if !ok || p.Status != enum.PurchaseStatusPending {
		return false, nil
	}
	p.Status = enum.PurchaseStatusDelivered
	for _, item := range p.Items {
		if prod, ok := r.products.products[item.ProductID]; ok {
			prod.Quantity += item.Quantity
		}
	}
	return true, nil
}

func (r *fakePurchaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.PurchaseStatus) (bool, error) {
	p, ok := r.purchases[id]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (r *fakeSupplierRepo) add(s *entity.Supplier) *entity.Supplier {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return s
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	r.add(supplier)
	return nil
}

func (r *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.suppliers[id]; !ok {
		return false, nil
	}
	delete(r.suppliers, id)
	return true, nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*entity.Company)}
}

func (r *fakeCompanyRepo) add(c *entity.Company) *entity.Company {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.companies[c.ID] = c
	return c
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	r.add(company)
	return nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) ListAll(ctx context.Context) ([]entity.Company, error) {
	var out []entity.Company
	for _, c := range r.companies {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	c.Active = active
	return c, nil
}

type fakeCompanyUserRepo struct {
	users map[uuid.UUID]*entity.CompanyUser
}

func newFakeCompanyUserRepo() *fakeCompanyUserRepo {
	return &fakeCompanyUserRepo{users: make(map[uuid.UUID]*entity.CompanyUser)}
}

func (r *fakeCompanyUserRepo) add(u *entity.CompanyUser) *entity.CompanyUser {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeCompanyUserRepo) Create(ctx context.Context, user *entity.CompanyUser) error {
	r.add(user)
	return nil
}

func (r *fakeCompanyUserRepo) GetByID(ctx context.Context, id, companyID uuid.UUID) (*entity.CompanyUser, error) {
	u, ok := r.users[id]
	if !ok || u.CompanyID == nil || *u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

func (r *fakeCompanyUserRepo) GetByEmail(ctx context.Context, email string) (*entity.CompanyUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyUserRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.CompanyUser, error) {
	var out []entity.CompanyUser
	for _, u := range r.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeCompanyUserRepo) SetActive(ctx context.Context, id, companyID uuid.UUID, active bool) (*entity.CompanyUser, error) {
	u, err := r.GetByID(ctx, id, companyID)
	if err != nil || u == nil {
		return nil, err
	}
	u.Active = active
	return u, nil
}

func (r *fakeCompanyUserRepo) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeAccountReceivableRepo struct {
	accounts map[uuid.UUID]*entity.AccountReceivable
}

func newFakeAccountReceivableRepo() *fakeAccountReceivableRepo {
	return &fakeAccountReceivableRepo{accounts: make(map[uuid.UUID]*entity.AccountReceivable)}
}

func (r *fakeAccountReceivableRepo) Create(ctx context.Context, account *entity.AccountReceivable) error {
	account.ID = uuid.New()
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountReceivableRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountReceivable, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountReceivableRepo) List(ctx context.Context, params *repository.AccountFilterParams) ([]entity.AccountReceivable, int64, error) {
	var out []entity.AccountReceivable
	for _, a := range r.accounts {
		if params.Status != nil && a.Status != *params.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAccountReceivableRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.AccountStatus) (bool, error) {
	a, ok := r.accounts[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	return true, nil
}

type fakeAccountPayableRepo struct {
	accounts map[uuid.UUID]*entity.AccountPayable
}

func newFakeAccountPayableRepo() *fakeAccountPayableRepo {
	return &fakeAccountPayableRepo{accounts: make(map[uuid.UUID]*entity.AccountPayable)}
}

func (r *fakeAccountPayableRepo) Create(ctx context.Context, account *entity.AccountPayable) error {
	account.ID = uuid.New()
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountPayableRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountPayable, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountPayableRepo) List(ctx context.Context, params *repository.AccountFilterParams) ([]entity.AccountPayable, int64, error) {
	var out []entity.AccountPayable
	for _, a := range r.accounts {
		if params.Status != nil && a.Status != *params.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAccountPayableRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to enum.AccountStatus) (bool, error) {
	a, ok := r.accounts[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	return true, nil
}

// fakeDashboardRepo returns canned aggregates. SumPaidSales answers from a
// queue in call order since the day and month windows coincide on the first
// of a month.
type fakeDashboardRepo struct {
	paidSums    []int64
	saleCount   int64
	stock       repository.StockCounts
	receivables int64
	payables    int64

	paidCalls  []time.Time
	countCalls []time.Time
}

func newFakeDashboardRepo() *fakeDashboardRepo {
	return &fakeDashboardRepo{}
}

func (r *fakeDashboardRepo) SumPaidSales(ctx context.Context, from, to time.Time) (int64, error) {
	r.paidCalls = append(r.paidCalls, from)
	if len(r.paidSums) == 0 {
		return 0, nil
	}
	sum := r.paidSums[0]
	r.paidSums = r.paidSums[1:]
	return sum, nil
}

func (r *fakeDashboardRepo) CountSales(ctx context.Context, from, to time.Time) (int64, error) {
	r.countCalls = append(r.countCalls, from)
	return r.saleCount, nil
}

func (r *fakeDashboardRepo) StockCounts(ctx context.Context) (*repository.StockCounts, error) {
	counts := r.stock
	return &counts, nil
}

func (r *fakeDashboardRepo) SumPendingReceivables(ctx context.Context) (int64, error) {
	return r.receivables, nil
}

func (r *fakeDashboardRepo) SumPendingPayables(ctx context.Context) (int64, error) {
	return r.payables, nil
}
