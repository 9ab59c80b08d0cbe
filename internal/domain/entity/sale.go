package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
)

// Sale represents a completed or in-progress sale. Subtotal, discount and
// total are stored in cents; subtotal equals the sum of its items and total
// equals subtotal minus discount.
type Sale struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index" json:"company_id"`
	Subtotal  int64           `gorm:"not null;default:0" json:"-"`
	Discount  int64           `gorm:"not null;default:0" json:"-"`
	Total     int64           `gorm:"not null;default:0" json:"-"`
	Status    enum.SaleStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Company Company    `gorm:"foreignKey:CompanyID" json:"-"`
	Items   []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON converts cents to decimal amounts for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(s),
		Subtotal: float64(s.Subtotal) / 100,
		Discount: float64(s.Discount) / 100,
		Total:    float64(s.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a line item of a sale
type SaleItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID     uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"-"` // Stored in cents
	TotalPrice int64     `gorm:"not null" json:"-"` // Stored in cents

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON converts cents to decimal amounts for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(si),
		UnitPrice:  float64(si.UnitPrice) / 100,
		TotalPrice: float64(si.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
