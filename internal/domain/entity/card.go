package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreditCard belongs to exactly one customer profile. Created by staff/admin
// action; it has no further lifecycle.
type CreditCard struct {
	ID               uuid.UUID // The unique identifier for the card record.
	CustomerID       uuid.UUID // The owning customer's user ID.
	CardNumberSuffix string    // Masked card suffix, e.g. the last four digits.
	BankName         string    // The issuing bank.
	CreatedAt        time.Time
}
