// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserNotPending is returned when an approval finds no user in
// pending_approval state: either the user never existed or a previous
// approval already flipped it. Callers must not distinguish the two.
var ErrUserNotPending = errors.New("user not found or not pending approval")

// Credential carries the data needed to verify a login attempt. It is the
// only place the password hash crosses the repository boundary; it never
// appears on the User entity.
type Credential struct {
	UserID       uuid.UUID
	PhoneNumber  string
	Role         entity.Role
	Status       entity.UserStatus
	PasswordHash string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with any profiles attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error)

	// FindCredentialByPhone retrieves the login credential for a phone number.
	FindCredentialByPhone(ctx context.Context, phoneNumber string) (*Credential, error)

	// ListByRoleAndStatus retrieves users matching both role and status.
	ListByRoleAndStatus(ctx context.Context, role entity.Role, status entity.UserStatus) ([]*entity.User, error)

	// Create persists a new user with its hashed credential.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// MarkActive flips a user's status from pending_approval to active.
	// Returns ErrUserNotPending when no row matched the precondition.
	MarkActive(ctx context.Context, id uuid.UUID) error
}
