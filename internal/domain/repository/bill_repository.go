package repository

import (
	"context"
	"errors"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBillNotFound is returned when a bill does not exist.
var ErrBillNotFound = errors.New("bill not found")

// ErrBillNotInStock is returned when a guarded export finds no in_stock row:
// the bill never existed or was already sold.
var ErrBillNotInStock = errors.New("bill not found or not in stock")

// BillRepository defines persistence operations for the electricity bill inventory.
type BillRepository interface {
	// Create persists a newly imported bill. Status must be in_stock.
	Create(ctx context.Context, bill *entity.ElectricityBill) error

	// FindByID retrieves a single bill by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ElectricityBill, error)

	// ListByStatus retrieves bills in the given status, newest first.
	ListByStatus(ctx context.Context, status entity.BillStatus) ([]*entity.ElectricityBill, error)

	// MarkSold flips a bill from in_stock to sold and records the buyer.
	// Returns ErrBillNotInStock when no row matched the precondition.
	MarkSold(ctx context.Context, billID, buyerID uuid.UUID) error
}
