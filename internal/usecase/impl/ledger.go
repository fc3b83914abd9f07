// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"wattpay/internal/domain/entity"
	domainerrors "wattpay/internal/domain/errors"
	"wattpay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ledger applies balance movements to a wallet through the repository bound
// to the current unit of work. It owns the translation from repository
// sentinels to domain errors, so callers above it never inspect sentinels.
type ledger struct {
	wallets repository.WalletRepository
}

// newLedger binds a ledger to the wallet repository of one unit of work.
func newLedger(wallets repository.WalletRepository) *ledger {
	return &ledger{wallets: wallets}
}

// Credit increases a wallet balance unconditionally.
func (l *ledger) Credit(ctx context.Context, kind entity.ProfileKind, userID uuid.UUID, amount float64) error {
	err := l.wallets.AddBalance(ctx, kind, userID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound.WrapMessage("no wallet profile to credit")
		}

		return errors.Wrap(err, "failed to credit wallet")
	}

	return nil
}

// Debit decreases a wallet balance only if the balance covers the amount.
// An insufficient balance fails the whole enclosing unit of work, leaving
// every other change in it unapplied.
func (l *ledger) Debit(ctx context.Context, kind entity.ProfileKind, userID uuid.UUID, amount float64) error {
	err := l.wallets.DeductBalance(ctx, kind, userID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			return domainerrors.ErrInsufficientFunds.WrapMessage("wallet balance does not cover the requested amount")
		}
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound.WrapMessage("no wallet profile to debit")
		}

		return errors.Wrap(err, "failed to debit wallet")
	}

	return nil
}

// Apply moves money per a settlement rule.
func (l *ledger) Apply(ctx context.Context, settlement entity.Settlement, userID uuid.UUID, amount float64) error {
	if settlement.Direction == entity.DirectionDebit {
		return l.Debit(ctx, settlement.Profile, userID, amount)
	}

	return l.Credit(ctx, settlement.Profile, userID, amount)
}
