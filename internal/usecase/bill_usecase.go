package usecase

import (
	"context"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// ImportBillInput defines the data required to add a bill to the warehouse.
type ImportBillInput struct {
	CustomerCode string
	TotalAmount  float64
	ImporterID   uuid.UUID
	ImporterRole entity.Role
}

// BillUsecase defines the interface for bill inventory business operations.
type BillUsecase interface {
	// Import adds a prepaid bill to the in-stock inventory.
	Import(ctx context.Context, input ImportBillInput) (*entity.ElectricityBill, error)
	// ListInStock returns all bills currently available for sale.
	ListInStock(ctx context.Context) ([]*entity.ElectricityBill, error)
	// Export sells an in-stock bill to a buyer.
	Export(ctx context.Context, billID uuid.UUID, buyerID uuid.UUID) (*entity.ElectricityBill, error)
}
