package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PhoneNumber  string    `gorm:"type:varchar(20);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	Status       string    `gorm:"type:varchar(24);not null;default:pending_approval"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AgentProfile    *AgentProfileModel    `gorm:"foreignKey:UserID"`
	CustomerProfile *CustomerProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AgentProfileModel mirrors the 'agent_profiles' table. UserID references users.id (UUID).
// A check constraint keeps the wallet non-negative even if a raw update slips past the guarded SQL.
type AgentProfileModel struct {
	UserID        uuid.UUID `gorm:"primaryKey"`
	AgentName     string    `gorm:"type:varchar(120);not null"`
	WalletBalance float64   `gorm:"not null;default:0;check:wallet_balance >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentProfileModel) TableName() string {
	return "agent_profiles"
}

// CustomerProfileModel mirrors the 'customer_profiles' table. UserID references users.id (UUID).
type CustomerProfileModel struct {
	UserID        uuid.UUID `gorm:"primaryKey"`
	WalletBalance float64   `gorm:"not null;default:0;check:wallet_balance >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// CreditCardModel mirrors the 'credit_cards' table.
type CreditCardModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CardNumberSuffix string    `gorm:"type:varchar(8);not null"`
	BankName         string    `gorm:"type:varchar(100);not null"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}
