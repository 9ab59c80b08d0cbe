package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
)

// AccountReceivable is money owed to the company, optionally linked to a sale
type AccountReceivable struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"company_id"`
	SaleID      *uuid.UUID         `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	Description string             `gorm:"type:text;not null" json:"description"`
	Amount      int64              `gorm:"not null" json:"-"` // Stored in cents
	DueDate     time.Time          `gorm:"not null" json:"due_date"`
	Status      enum.AccountStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Sale    *Sale   `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON converts cents to a decimal amount for API responses
func (a AccountReceivable) MarshalJSON() ([]byte, error) {
	type Alias AccountReceivable
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(a),
		Amount: float64(a.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new receivable
func (a *AccountReceivable) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AccountReceivable model
func (AccountReceivable) TableName() string {
	return "accounts_receivable"
}

// AccountPayable is money the company owes, optionally linked to a supplier
type AccountPayable struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"company_id"`
	SupplierID  *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Description string             `gorm:"type:text;not null" json:"description"`
	Amount      int64              `gorm:"not null" json:"-"` // Stored in cents
	DueDate     time.Time          `gorm:"not null" json:"due_date"`
	Status      enum.AccountStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Relationships
	Company  Company   `gorm:"foreignKey:CompanyID" json:"-"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// MarshalJSON converts cents to a decimal amount for API responses
func (a AccountPayable) MarshalJSON() ([]byte, error) {
	type Alias AccountPayable
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(a),
		Amount: float64(a.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payable
func (a *AccountPayable) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AccountPayable model
func (AccountPayable) TableName() string {
	return "accounts_payable"
}
