package request

import "github.com/google/uuid"

// SaleItemRequest represents a line item in a sale request
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unit_price" binding:"min=0"`
}

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	Discount float64           `json:"discount" binding:"min=0"`
	Items    []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateSaleStatusRequest represents a sale status change request
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
