package repository

import (
	"context"
	"errors"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when the expected wallet profile row does not exist.
var ErrProfileNotFound = errors.New("wallet profile not found")

// ErrInsufficientBalance is returned when a guarded debit finds the balance
// smaller than the requested amount. The balance is left untouched.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// WalletRepository defines persistence operations for the wallet-bearing
// agent and customer profiles. Balance mutations are single guarded updates
// so the store serializes concurrent movements on the same wallet.
type WalletRepository interface {
	// CreateAgentProfile persists a new agent profile with a zero balance.
	CreateAgentProfile(ctx context.Context, profile *entity.AgentProfile) error

	// CreateCustomerProfile persists a new customer profile with a zero balance.
	CreateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error

	// FindAgentProfile retrieves the agent profile for a user.
	FindAgentProfile(ctx context.Context, userID uuid.UUID) (*entity.AgentProfile, error)

	// FindCustomerProfile retrieves the customer profile for a user.
	FindCustomerProfile(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error)

	// AddBalance unconditionally increases a wallet balance.
	// Returns ErrProfileNotFound when the profile row is absent.
	AddBalance(ctx context.Context, kind entity.ProfileKind, userID uuid.UUID, amount float64) error

	// DeductBalance decreases a wallet balance only if the current balance
	// covers the amount. Returns ErrInsufficientBalance otherwise, or
	// ErrProfileNotFound when the profile row is absent.
	DeductBalance(ctx context.Context, kind entity.ProfileKind, userID uuid.UUID, amount float64) error
}
