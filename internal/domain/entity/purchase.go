package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
)

// Purchase represents a purchase order placed with a supplier. Stock is
// credited only when the purchase transitions to delivered.
type Purchase struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"company_id"`
	SupplierID uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Total      int64               `gorm:"not null;default:0" json:"-"` // Stored in cents
	Status     enum.PurchaseStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`

	// Relationships
	Company  Company        `gorm:"foreignKey:CompanyID" json:"-"`
	Supplier *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// MarshalJSON converts cents to decimal amounts for API responses
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(p),
		Total: float64(p.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is a line item of a purchase order
type PurchaseItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"-"` // Stored in cents
	TotalPrice int64     `gorm:"not null" json:"-"` // Stored in cents

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON converts cents to decimal amounts for API responses
func (pi PurchaseItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(pi),
		UnitPrice:  float64(pi.UnitPrice) / 100,
		TotalPrice: float64(pi.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase item
func (pi *PurchaseItem) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
