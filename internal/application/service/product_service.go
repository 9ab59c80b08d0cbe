package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/pkg/apperror"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Code     string
	Name     string
	Category enum.ProductCategory
	Price    float64
	Quantity int
	MinStock int
}

// CreateProduct creates a new product for the authenticated company
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	companyID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if !input.Category.Valid() {
		return nil, apperror.NewBadRequestError("Invalid product category")
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	}

	product := &entity.Product{
		CompanyID: companyID,
		Code:      code,
		Name:      input.Name,
		Category:  input.Category,
		Quantity:  input.Quantity,
		MinStock:  input.MinStock,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	if params.Category != nil && !params.Category.Valid() {
		return nil, 0, apperror.NewBadRequestError("Invalid product category")
	}
	return s.productRepo.List(ctx, params)
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Code     *string
	Name     *string
	Category *enum.ProductCategory
	Price    *float64
	Quantity *int
	MinStock *int
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Code != nil {
		product.Code = *input.Code
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, apperror.NewBadRequestError("Invalid product category")
		}
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Product")
	}
	return nil
}
