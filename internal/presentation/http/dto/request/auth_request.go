package request

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a company registration request
type RegisterRequest struct {
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
