package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
)

// Product represents an inventory item. Quantity is only ever mutated inside
// the sale-creation and purchase-delivery transactions.
type Product struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID            `gorm:"type:uuid;not null;index" json:"company_id"`
	Code      string               `gorm:"size:50;not null" json:"code"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	Category  enum.ProductCategory `gorm:"size:50;not null" json:"category"`
	Price     int64                `gorm:"not null;default:0" json:"-"` // Stored in cents
	Quantity  int                  `gorm:"not null;default:0" json:"quantity"`
	MinStock  int                  `gorm:"not null;default:0" json:"min_stock"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price*100 + 0.5)
}

// IsLowStock reports whether the product is above zero but at or below its
// minimum stock level
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.MinStock
}

// IsOutOfStock reports whether the product has exactly zero stock
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}

// MarshalJSON converts Product to JSON with a decimal price
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.GetPriceDecimal(),
	})
}
