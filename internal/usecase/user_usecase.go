// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new agent or customer.
type RegisterInput struct {
	PhoneNumber string
	Password    string
	FullName    string
	Role        entity.Role
}

// CreateStaffInput defines the data required for an admin to provision a staff account.
type CreateStaffInput struct {
	PhoneNumber string
	Password    string
	FullName    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	PhoneNumber string
	Password    string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// UserUsecase defines the interface for account and registration business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new agent or customer account awaiting admin approval.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	// CreateStaff provisions an active staff account. Admin surface only.
	CreateStaff(ctx context.Context, input CreateStaffInput) (*RegisterOutput, error)
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// ApproveUser activates a pending registration and creates its wallet profile.
	ApproveUser(ctx context.Context, userID uuid.UUID, targetRole entity.Role) (*entity.User, error)
	// ListPending returns users of the given role still awaiting approval.
	ListPending(ctx context.Context, role entity.Role) ([]*entity.User, error)
}
