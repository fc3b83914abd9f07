package usecase

import (
	"context"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCardInput defines the data required to save a card for a customer.
// Only the last digits of the card number are ever stored.
type CreateCardInput struct {
	CustomerID       uuid.UUID
	CardNumberSuffix string
	BankName         string
}

// CardUsecase defines the interface for saved credit card operations.
type CardUsecase interface {
	// Create saves a masked card reference for an existing customer.
	Create(ctx context.Context, input CreateCardInput) (*entity.CreditCard, error)
	// ListByCustomer returns the cards saved for a customer.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CreditCard, error)
}
