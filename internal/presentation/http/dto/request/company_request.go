package request

// CreateCompanyRequest represents an admin company creation request
type CreateCompanyRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=255"`
	CNPJ          string `json:"cnpj" binding:"required,max=18"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"omitempty,max=20"`
	Password      string `json:"password" binding:"required,min=8"`
	CEP           string `json:"cep" binding:"omitempty,max=9"`
	Address       string `json:"address" binding:"omitempty,max=255"`
	AddressNumber string `json:"address_number" binding:"omitempty,max=20"`
	Neighborhood  string `json:"neighborhood" binding:"omitempty,max=255"`
	City          string `json:"city" binding:"omitempty,max=255"`
	State         string `json:"state" binding:"omitempty,len=2"`
	Website       string `json:"website" binding:"omitempty,max=255"`
	BusinessType  string `json:"business_type" binding:"omitempty,max=100"`
	OwnerName     string `json:"owner_name" binding:"omitempty,max=255"`
	OwnerEmail    string `json:"owner_email" binding:"omitempty,email"`
	OwnerPhone    string `json:"owner_phone" binding:"omitempty,max=20"`
}

// UpdateCompanyRequest represents a company self-service update request
type UpdateCompanyRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	CEP           *string `json:"cep" binding:"omitempty,max=9"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
	AddressNumber *string `json:"address_number" binding:"omitempty,max=20"`
	Neighborhood  *string `json:"neighborhood" binding:"omitempty,max=255"`
	City          *string `json:"city" binding:"omitempty,max=255"`
	State         *string `json:"state" binding:"omitempty,len=2"`
	Website       *string `json:"website" binding:"omitempty,max=255"`
	BusinessType  *string `json:"business_type" binding:"omitempty,max=100"`
	OwnerName     *string `json:"owner_name" binding:"omitempty,max=255"`
	OwnerEmail    *string `json:"owner_email" binding:"omitempty,email"`
	OwnerPhone    *string `json:"owner_phone" binding:"omitempty,max=20"`
}

// UpdateStatusRequest represents an activate/deactivate request
type UpdateStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// CreateCompanyUserRequest represents a sub-user creation request
type CreateCompanyUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
