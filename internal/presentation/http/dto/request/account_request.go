package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateReceivableRequest represents a receivable creation request
type CreateReceivableRequest struct {
	SaleID      *uuid.UUID `json:"sale_id"`
	Description string     `json:"description" binding:"required,min=2"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	DueDate     time.Time  `json:"due_date" binding:"required"`
}

// CreatePayableRequest represents a payable creation request
type CreatePayableRequest struct {
	SupplierID  *uuid.UUID `json:"supplier_id"`
	Description string     `json:"description" binding:"required,min=2"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	DueDate     time.Time  `json:"due_date" binding:"required"`
}

// UpdateAccountStatusRequest represents an account status change request
type UpdateAccountStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AccountFilterRequest represents account filter parameters
type AccountFilterRequest struct {
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
