package repository

import (
	"context"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// CardRepository defines persistence operations for customer credit cards.
type CardRepository interface {
	// Create persists a new card for a customer.
	Create(ctx context.Context, card *entity.CreditCard) error

	// ListByCustomer retrieves all cards belonging to a customer.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CreditCard, error)
}
