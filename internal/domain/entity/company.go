package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
)

// Company is the tenant boundary of the system. A company row doubles as the
// company-admin login account; additional logins live in CompanyUser.
type Company struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Name          string        `gorm:"size:255;not null" json:"name"`
	CNPJ          string        `gorm:"size:18;unique;not null" json:"cnpj"`
	Email         string        `gorm:"size:255;unique;not null" json:"email"`
	Phone         string        `gorm:"size:20" json:"phone,omitempty"`
	Password      string        `gorm:"type:text;not null" json:"-"`
	UserType      enum.UserType `gorm:"size:50;default:'company_admin'" json:"user_type"`
	Active        bool          `gorm:"default:true" json:"active"`
	CEP           string        `gorm:"size:9" json:"cep,omitempty"`
	Address       string        `gorm:"size:255" json:"address,omitempty"`
	AddressNumber string        `gorm:"size:20" json:"address_number,omitempty"`
	Neighborhood  string        `gorm:"size:255" json:"neighborhood,omitempty"`
	City          string        `gorm:"size:255" json:"city,omitempty"`
	State         string        `gorm:"size:2" json:"state,omitempty"`
	Website       string        `gorm:"size:255" json:"website,omitempty"`
	BusinessType  string        `gorm:"size:100" json:"business_type,omitempty"`
	OwnerName     string        `gorm:"size:255" json:"owner_name,omitempty"`
	OwnerEmail    string        `gorm:"size:255" json:"owner_email,omitempty"`
	OwnerPhone    string        `gorm:"size:20" json:"owner_phone,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relationships
	Users []CompanyUser `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}

// CompanyUser is an additional login account inside a company. It scopes to
// the same tenant as the owning company. System administrators also live
// here, with no company attached.
type CompanyUser struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID *uuid.UUID    `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Name      string        `gorm:"size:255;not null" json:"name"`
	Email     string        `gorm:"size:255;unique;not null" json:"email"`
	Password  string        `gorm:"type:text;not null" json:"-"`
	UserType  enum.UserType `gorm:"size:50;default:'company_user'" json:"user_type"`
	Active    bool          `gorm:"default:true" json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Relationships
	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company user
func (u *CompanyUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanyUser model
func (CompanyUser) TableName() string {
	return "company_users"
}
