package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillStatus represents the inventory state of an electricity bill.
// in_stock -> sold is a one-way transition; a sold bill never returns to stock.
type BillStatus string

const (
	// BillStatusInStock indicates an imported bill available for sale.
	BillStatusInStock BillStatus = "in_stock"
	// BillStatusSold indicates a bill exported to a buyer.
	BillStatusSold BillStatus = "sold"
)

// String returns the string representation of the BillStatus.
func (s BillStatus) String() string {
	return string(s)
}

// IsValid checks if the BillStatus is a valid value.
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusInStock, BillStatusSold:
		return true
	default:
		return false
	}
}

// ElectricityBill is a prepaid bill inventory unit.
type ElectricityBill struct {
	ID           uuid.UUID  // The unique identifier for the bill.
	CustomerCode string     // The utility customer code printed on the bill.
	TotalAmount  float64    // Face value of the bill.
	Status       BillStatus // Inventory state.
	ImporterID   uuid.UUID  // The agent or admin who imported the bill.
	BuyerID      *uuid.UUID // Set exactly once, when the bill is sold.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
