// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of a user account.
// pending_approval -> active is a one-way transition performed by an admin.
type UserStatus string

const (
	// UserStatusPending indicates a freshly registered account awaiting admin approval.
	UserStatusPending UserStatus = "pending_approval"
	// UserStatusActive indicates an approved account.
	UserStatusActive UserStatus = "active"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusActive:
		return true
	default:
		return false
	}
}

// User is the core identity in the system. It carries only sanitized account
// data; the credential hash never leaves the persistence layer.
type User struct {
	ID              uuid.UUID        // The unique identifier for the user.
	PhoneNumber     string           // The user's unique phone number, used as the login identifier.
	FullName        string           // The user's display name.
	Role            Role             // The user's role, immutable after creation.
	Status          UserStatus       // The account lifecycle state.
	AgentProfile    *AgentProfile    // Wallet-bearing profile, nil unless the user is an approved agent.
	CustomerProfile *CustomerProfile // Wallet-bearing profile, nil unless the user is an approved customer.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// AgentProfile holds data specific to the "agent" role.
// Created exactly once, at approval time.
type AgentProfile struct {
	UserID        uuid.UUID // Foreign key that links this profile to a core User entity.
	AgentName     string    // Display name for the agency, derived from the user's full name at approval.
	WalletBalance float64   // Non-negative wallet balance.
	UpdatedAt     time.Time // Timestamp of the last modification to this profile.
}

// CustomerProfile holds data specific to the "customer" role.
// Created exactly once, at approval time.
type CustomerProfile struct {
	UserID        uuid.UUID // Foreign key that links this profile to a core User entity.
	WalletBalance float64   // Non-negative wallet balance.
	UpdatedAt     time.Time // Timestamp of the last modification to this profile.
}

// ProfileKind selects which role profile owns a wallet.
type ProfileKind string

const (
	// ProfileKindAgent addresses the agent_profiles wallet.
	ProfileKindAgent ProfileKind = "agent"
	// ProfileKindCustomer addresses the customer_profiles wallet.
	ProfileKindCustomer ProfileKind = "customer"
)

// String returns the string representation of the ProfileKind.
func (k ProfileKind) String() string {
	return string(k)
}
