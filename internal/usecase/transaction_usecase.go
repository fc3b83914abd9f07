package usecase

import (
	"context"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTransactionInput defines the data required to request a wallet movement.
// Role is the authenticated caller's role; the settlement policy decides
// whether it may request the given transaction type.
type CreateTransactionInput struct {
	UserID uuid.UUID
	Role   entity.Role
	Type   entity.TransactionType
	Amount float64
}

// TransactionUsecase defines the interface for wallet transaction business operations.
type TransactionUsecase interface {
	// Create records a pending transaction request for later review.
	Create(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error)
	// ListPending returns all transaction requests awaiting review.
	ListPending(ctx context.Context) ([]*entity.Transaction, error)
	// Approve settles a pending transaction against the requester's wallet.
	Approve(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// Reject declines a pending transaction without touching any wallet.
	Reject(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
}
