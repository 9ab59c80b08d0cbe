package request

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	CNPJ  *string `json:"cnpj" binding:"omitempty,max=18"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	CNPJ  *string `json:"cnpj" binding:"omitempty,max=18"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

// SupplierFilterRequest represents supplier filter parameters
type SupplierFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
