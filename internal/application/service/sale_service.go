package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/pkg/apperror"
)

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo, productRepo: productRepo}
}

// SaleItemInput represents an item in a sale
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	Discount float64
	Items    []SaleItemInput
}

// CreateSale creates a sale with its items and decrements stock. Totals are
// computed server-side: subtotal is the sum of item totals, total is
// subtotal minus discount. Everything runs in one transaction; insufficient
// stock on any item aborts it.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	companyID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one item")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subtotal int64
	items := make([]entity.SaleItem, 0, len(input.Items))

	for _, item := range input.Items {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}

		unitPriceCents := int64(item.UnitPrice*100 + 0.5)
		itemTotal := unitPriceCents * int64(item.Quantity)
		subtotal += itemTotal

		items = append(items, entity.SaleItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  unitPriceCents,
			TotalPrice: itemTotal,
		})
	}

	discountCents := int64(input.Discount*100 + 0.5)
	if discountCents < 0 || discountCents > subtotal {
		return nil, apperror.NewBadRequestError("Discount must be between zero and the subtotal")
	}

	sale := &entity.Sale{
		CompanyID: companyID,
		Subtotal:  subtotal,
		Discount:  discountCents,
		Total:     subtotal - discountCents,
		Status:    enum.SaleStatusPending,
	}

	failedIDs, err := s.saleRepo.CreateWithItems(ctx, sale, items)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if product, exists := productMap[id]; exists {
				failedNames = append(failedNames, product.Name)
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	return sale, nil
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, 0, apperror.NewBadRequestError("Invalid sale status")
	}
	return s.saleRepo.List(ctx, params)
}

// UpdateSaleStatus transitions a sale to a new status. Only pending sales
// can move, to paid or cancelled; cancelling never restores stock.
func (s *SaleService) UpdateSaleStatus(ctx context.Context, id uuid.UUID, target enum.SaleStatus) (*entity.Sale, error) {
	if !target.Valid() {
		return nil, apperror.NewBadRequestError("Invalid sale status")
	}

	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if !sale.Status.CanTransitionTo(target) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot transition sale from %s to %s", sale.Status, target))
	}

	updated, err := s.saleRepo.UpdateStatus(ctx, id, sale.Status, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Lost the race with a concurrent transition
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot transition sale from %s to %s", sale.Status, target))
	}

	sale.Status = target
	return sale, nil
}
