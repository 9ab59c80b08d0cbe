package request

import "github.com/google/uuid"

// PurchaseItemRequest represents a line item in a purchase request
type PurchaseItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unit_price" binding:"min=0"`
}

// CreatePurchaseRequest represents a purchase creation request
type CreatePurchaseRequest struct {
	SupplierID uuid.UUID             `json:"supplier_id" binding:"required"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdatePurchaseStatusRequest represents a purchase status transition request
type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PurchaseFilterRequest represents purchase filter parameters
type PurchaseFilterRequest struct {
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
