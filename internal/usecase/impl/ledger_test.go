package impl

import (
	"context"
	"testing"

	"wattpay/internal/domain/entity"
	domainerrors "wattpay/internal/domain/errors"
	"wattpay/internal/domain/repository"
	mockRepo "wattpay/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Credit(t *testing.T) {
	walletRepo := mockRepo.NewMockWalletRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	walletRepo.EXPECT().
		AddBalance(ctx, entity.ProfileKindAgent, userID, 100000.0).
		Return(nil)

	err := newLedger(walletRepo).Credit(ctx, entity.ProfileKindAgent, userID, 100000)
	require.NoError(t, err)
}

func TestLedger_Credit_ProfileMissing(t *testing.T) {
	walletRepo := mockRepo.NewMockWalletRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	walletRepo.EXPECT().
		AddBalance(ctx, entity.ProfileKindAgent, userID, 100000.0).
		Return(repository.ErrProfileNotFound)

	err := newLedger(walletRepo).Credit(ctx, entity.ProfileKindAgent, userID, 100000)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProfileNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestLedger_Debit_InsufficientBalance(t *testing.T) {
	walletRepo := mockRepo.NewMockWalletRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	walletRepo.EXPECT().
		DeductBalance(ctx, entity.ProfileKindCustomer, userID, 50000.0).
		Return(repository.ErrInsufficientBalance)

	err := newLedger(walletRepo).Debit(ctx, entity.ProfileKindCustomer, userID, 50000)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientFunds.ErrorCode(), appErr.ErrorCode())
}

func TestLedger_Apply_FollowsSettlementDirection(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("credit settlement", func(t *testing.T) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		settlement, ok := entity.SettlementFor(entity.TransactionTypeAgentDeposit)
		require.True(t, ok)

		walletRepo.EXPECT().
			AddBalance(ctx, entity.ProfileKindAgent, userID, 75000.0).
			Return(nil)

		err := newLedger(walletRepo).Apply(ctx, settlement, userID, 75000)
		require.NoError(t, err)
	})

	t.Run("debit settlement", func(t *testing.T) {
		walletRepo := mockRepo.NewMockWalletRepository(t)
		settlement, ok := entity.SettlementFor(entity.TransactionTypeCustomerWithdraw)
		require.True(t, ok)

		walletRepo.EXPECT().
			DeductBalance(ctx, entity.ProfileKindCustomer, userID, 75000.0).
			Return(nil)

		err := newLedger(walletRepo).Apply(ctx, settlement, userID, 75000)
		require.NoError(t, err)
	})
}
