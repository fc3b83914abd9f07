package repository

import (
	"context"
	"errors"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a transaction does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrTransactionNotPending is returned when a guarded status transition finds
// no pending row: the transaction never existed or was already processed.
var ErrTransactionNotPending = errors.New("transaction not found or not pending")

// TransactionRepository defines persistence operations for money-movement requests.
type TransactionRepository interface {
	// Create persists a new transaction. Status must be pending.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a single transaction by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// ListByStatus retrieves transactions in the given status, newest first.
	ListByStatus(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error)

	// MarkProcessed flips a transaction from pending to the given terminal
	// status. Returns ErrTransactionNotPending when no row matched the
	// precondition, which makes the transition exactly-once under
	// concurrent approvals.
	MarkProcessed(ctx context.Context, id uuid.UUID, to entity.TransactionStatus) error
}
