package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType identifies the kind of money movement a transaction requests.
type TransactionType string

const (
	// TransactionTypeAgentDeposit credits an agent wallet on approval.
	TransactionTypeAgentDeposit TransactionType = "agent_deposit"
	// TransactionTypeCustomerWithdraw debits a customer wallet on approval.
	TransactionTypeCustomerWithdraw TransactionType = "customer_withdraw"
)

// String returns the string representation of the TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	_, ok := settlements[t]

	return ok
}

// TransactionStatus represents the lifecycle state of a transaction.
// pending -> approved and pending -> rejected are the only transitions,
// and both are terminal.
type TransactionStatus string

const (
	// TransactionStatusPending indicates a transaction awaiting admin review.
	TransactionStatusPending TransactionStatus = "pending"
	// TransactionStatusApproved indicates a settled transaction whose wallet effect has been applied.
	TransactionStatusApproved TransactionStatus = "approved"
	// TransactionStatusRejected indicates a declined transaction with no wallet effect.
	TransactionStatusRejected TransactionStatus = "rejected"
)

// String returns the string representation of the TransactionStatus.
func (s TransactionStatus) String() string {
	return string(s)
}

// IsValid checks if the TransactionStatus is a valid value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusRejected:
		return true
	default:
		return false
	}
}

// Transaction is a pending request to move money in or out of a wallet.
// Its wallet effect is applied if and only if it becomes approved, exactly once.
type Transaction struct {
	ID        uuid.UUID         // The unique identifier for the transaction.
	UserID    uuid.UUID         // The requesting user.
	Amount    float64           // Positive amount to move.
	Type      TransactionType   // Selects the settlement rule.
	Status    TransactionStatus // Lifecycle state.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LedgerDirection selects the wallet operation a settlement applies.
type LedgerDirection int

const (
	// DirectionCredit increases the wallet balance.
	DirectionCredit LedgerDirection = iota + 1
	// DirectionDebit decreases the wallet balance, guarded by sufficiency.
	DirectionDebit
)

// Settlement describes how an approved transaction type moves money:
// which profile kind owns the wallet, which direction the balance moves,
// and which role is allowed to create the request.
type Settlement struct {
	Profile     ProfileKind
	Direction   LedgerDirection
	CreatorRole Role
}

// settlements is the single mapping from transaction type to its settlement
// rule, consulted once per approval instead of branching on the type at
// every call site.
var settlements = map[TransactionType]Settlement{
	TransactionTypeAgentDeposit: {
		Profile:     ProfileKindAgent,
		Direction:   DirectionCredit,
		CreatorRole: RoleAgent,
	},
	TransactionTypeCustomerWithdraw: {
		Profile:     ProfileKindCustomer,
		Direction:   DirectionDebit,
		CreatorRole: RoleCustomer,
	},
}

// SettlementFor returns the settlement rule for a transaction type.
// The second return value is false for unknown types.
func SettlementFor(t TransactionType) (Settlement, bool) {
	s, ok := settlements[t]

	return s, ok
}
