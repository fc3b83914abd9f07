package model

import (
	"time"

	"github.com/google/uuid"
)

// BillModel mirrors the 'electricity_bills' table.
type BillModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerCode string     `gorm:"type:varchar(64);not null;index"`
	TotalAmount  float64    `gorm:"not null"`
	Status       string     `gorm:"type:varchar(16);not null;default:in_stock;index"`
	ImporterID   uuid.UUID  `gorm:"type:uuid;not null"`
	BuyerID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillModel) TableName() string {
	return "electricity_bills"
}
