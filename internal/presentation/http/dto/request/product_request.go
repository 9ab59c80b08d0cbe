package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Code     string  `json:"code" binding:"omitempty,max=50"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"min=0"`
	MinStock int     `json:"min_stock" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Code     *string  `json:"code" binding:"omitempty,min=1,max=50"`
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,min=0"`
	MinStock *int     `json:"min_stock" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
