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

// PurchaseService handles purchase-related operations
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// PurchaseItemInput represents an item in a purchase order
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	SupplierID uuid.UUID
	Items      []PurchaseItemInput
}

// CreatePurchase creates a pending purchase order. Stock is not touched
// until the purchase is delivered.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	companyID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase must have at least one item")
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

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

	var total int64
	items := make([]entity.PurchaseItem, 0, len(input.Items))

	for _, item := range input.Items {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}

		unitPriceCents := int64(item.UnitPrice*100 + 0.5)
		itemTotal := unitPriceCents * int64(item.Quantity)
		total += itemTotal

		items = append(items, entity.PurchaseItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  unitPriceCents,
			TotalPrice: itemTotal,
		})
	}

	purchase := &entity.Purchase{
		CompanyID:  companyID,
		SupplierID: input.SupplierID,
		Total:      total,
		Status:     enum.PurchaseStatusPending,
	}

	if err := s.purchaseRepo.CreateWithItems(ctx, purchase, items); err != nil {
		return nil, err
	}
	return purchase, nil
}

// GetPurchase retrieves a purchase with its items and supplier
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases with filtering and pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, 0, apperror.NewBadRequestError("Invalid purchase status")
	}
	return s.purchaseRepo.List(ctx, params)
}

// DeliverPurchase marks a pending purchase delivered and credits stock,
// exactly once. Re-delivering a delivered or cancelled purchase is a
// conflict.
func (s *PurchaseService) DeliverPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	delivered, err := s.purchaseRepo.MarkDelivered(ctx, id)
	if err != nil {
		return nil, err
	}
	if !delivered {
		purchase, err := s.purchaseRepo.GetWithItems(ctx, id)
		if err != nil {
			return nil, err
		}
		if purchase == nil {
			return nil, apperror.NewNotFoundError("Purchase")
		}
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot deliver purchase in %s status", purchase.Status))
	}

	return s.purchaseRepo.GetWithItems(ctx, id)
}

// CancelPurchase cancels a pending purchase. No stock is credited.
func (s *PurchaseService) CancelPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	cancelled, err := s.purchaseRepo.UpdateStatus(ctx, id, enum.PurchaseStatusPending, enum.PurchaseStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !cancelled {
		purchase, err := s.purchaseRepo.GetWithItems(ctx, id)
		if err != nil {
			return nil, err
		}
		if purchase == nil {
			return nil, apperror.NewNotFoundError("Purchase")
		}
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot cancel purchase in %s status", purchase.Status))
	}

	return s.purchaseRepo.GetWithItems(ctx, id)
}
