package impl

import (
	"context"
	"testing"

	"wattpay/internal/domain/entity"
	domainerrors "wattpay/internal/domain/errors"
	"wattpay/internal/domain/repository"
	mockRepo "wattpay/internal/mocks/repository"
	"wattpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// transactionServiceFixtures holds all test dependencies for transaction service tests.
type transactionServiceFixtures struct {
	service         usecase.TransactionUsecase
	txManager       *mockRepo.MockTransactionManager
	transactionRepo *mockRepo.MockTransactionRepository
}

func createTestTransactionService(t *testing.T) transactionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)

	service := NewTransactionService(TransactionServiceParams{
		TxManager:       txManager,
		TransactionRepo: transactionRepo,
		Logger:          newDiscardLogger(),
	})

	return transactionServiceFixtures{
		service:         service,
		txManager:       txManager,
		transactionRepo: transactionRepo,
	}
}

func TestTransactionService_Create_AgentDeposit(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.transactionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, transaction *entity.Transaction) {
			transaction.ID = uuid.New()
		}).
		Return(nil)

	transaction, err := fx.service.Create(ctx, usecase.CreateTransactionInput{
		UserID: userID,
		Role:   entity.RoleAgent,
		Type:   entity.TransactionTypeAgentDeposit,
		Amount: 500000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPending, transaction.Status)
	assert.Equal(t, userID, transaction.UserID)
	assert.InDelta(t, 500000, transaction.Amount, 0.001)
}

func TestTransactionService_Create_TypeNotAllowedForRole(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()

	// A customer may not request an agent deposit, and vice versa.
	cases := []struct {
		name string
		role entity.Role
		txn  entity.TransactionType
	}{
		{name: "customer requesting deposit", role: entity.RoleCustomer, txn: entity.TransactionTypeAgentDeposit},
		{name: "agent requesting withdraw", role: entity.RoleAgent, txn: entity.TransactionTypeCustomerWithdraw},
		{name: "admin requesting deposit", role: entity.RoleAdmin, txn: entity.TransactionTypeAgentDeposit},
		{name: "unknown type", role: entity.RoleAgent, txn: entity.TransactionType("bonus")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transaction, err := fx.service.Create(ctx, usecase.CreateTransactionInput{
				UserID: uuid.New(),
				Role:   tc.role,
				Type:   tc.txn,
				Amount: 1000,
			})
			require.Error(t, err)
			assert.Nil(t, transaction)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrTransactionTypeMismatch.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestTransactionService_Create_NonPositiveAmount(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()

	for _, amount := range []float64{0, -100} {
		transaction, err := fx.service.Create(ctx, usecase.CreateTransactionInput{
			UserID: uuid.New(),
			Role:   entity.RoleAgent,
			Type:   entity.TransactionTypeAgentDeposit,
			Amount: amount,
		})
		require.Error(t, err)
		assert.Nil(t, transaction)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestTransactionService_ListPending(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	pending := []*entity.Transaction{
		{ID: uuid.New(), Status: entity.TransactionStatusPending},
	}

	fx.transactionRepo.EXPECT().
		ListByStatus(ctx, entity.TransactionStatusPending).
		Return(pending, nil)

	transactions, err := fx.service.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestTransactionService_Approve_DepositCreditsAgentWallet(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	transactionID := uuid.New()
	userID := uuid.New()
	pending := &entity.Transaction{
		ID:     transactionID,
		UserID: userID,
		Type:   entity.TransactionTypeAgentDeposit,
		Amount: 250000,
		Status: entity.TransactionStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(pending, nil)

			mockTransactionRepo.EXPECT().
				MarkProcessed(ctx, transactionID, entity.TransactionStatusApproved).
				Return(nil)

			mockWalletRepo.EXPECT().
				AddBalance(ctx, entity.ProfileKindAgent, userID, 250000.0).
				Return(nil)

			return fn(mockFactory)
		})

	transaction, err := fx.service.Approve(ctx, transactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusApproved, transaction.Status)
}

func TestTransactionService_Approve_WithdrawDebitsCustomerWallet(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	transactionID := uuid.New()
	userID := uuid.New()
	pending := &entity.Transaction{
		ID:     transactionID,
		UserID: userID,
		Type:   entity.TransactionTypeCustomerWithdraw,
		Amount: 90000,
		Status: entity.TransactionStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(pending, nil)

			mockTransactionRepo.EXPECT().
				MarkProcessed(ctx, transactionID, entity.TransactionStatusApproved).
				Return(nil)

			mockWalletRepo.EXPECT().
				DeductBalance(ctx, entity.ProfileKindCustomer, userID, 90000.0).
				Return(nil)

			return fn(mockFactory)
		})

	transaction, err := fx.service.Approve(ctx, transactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusApproved, transaction.Status)
}

func TestTransactionService_Approve_InsufficientFundsFailsUnitOfWork(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	transactionID := uuid.New()
	userID := uuid.New()
	pending := &entity.Transaction{
		ID:     transactionID,
		UserID: userID,
		Type:   entity.TransactionTypeCustomerWithdraw,
		Amount: 1000000,
		Status: entity.TransactionStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(pending, nil)

			mockTransactionRepo.EXPECT().
				MarkProcessed(ctx, transactionID, entity.TransactionStatusApproved).
				Return(nil)

			mockWalletRepo.EXPECT().
				DeductBalance(ctx, entity.ProfileKindCustomer, userID, 1000000.0).
				Return(repository.ErrInsufficientBalance)

			return fn(mockFactory)
		})

	transaction, err := fx.service.Approve(ctx, transactionID)
	require.Error(t, err)
	assert.Nil(t, transaction)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientFunds.ErrorCode(), appErr.ErrorCode())
}

func TestTransactionService_Approve_AlreadyProcessed(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	transactionID := uuid.New()
	approved := &entity.Transaction{
		ID:     transactionID,
		UserID: uuid.New(),
		Type:   entity.TransactionTypeAgentDeposit,
		Amount: 250000,
		Status: entity.TransactionStatusApproved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(approved, nil)

			// The pending guard fails, so no wallet movement happens.
			mockTransactionRepo.EXPECT().
				MarkProcessed(ctx, transactionID, entity.TransactionStatusApproved).
				Return(repository.ErrTransactionNotPending)

			return fn(mockFactory)
		})

	transaction, err := fx.service.Approve(ctx, transactionID)
	require.Error(t, err)
	assert.Nil(t, transaction)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTransactionProcessed.ErrorCode(), appErr.ErrorCode())
}

func TestTransactionService_Approve_NotFound(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(nil, repository.ErrTransactionNotFound)

			return fn(mockFactory)
		})

	transaction, err := fx.service.Approve(ctx, transactionID)
	require.Error(t, err)
	assert.Nil(t, transaction)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTransactionProcessed.ErrorCode(), appErr.ErrorCode())
}

func TestTransactionService_Reject(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	transactionID := uuid.New()
	pending := &entity.Transaction{
		ID:     transactionID,
		UserID: uuid.New(),
		Type:   entity.TransactionTypeCustomerWithdraw,
		Amount: 30000,
		Status: entity.TransactionStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(pending, nil)

			mockTransactionRepo.EXPECT().
				MarkProcessed(ctx, transactionID, entity.TransactionStatusRejected).
				Return(nil)

			return fn(mockFactory)
		})

	transaction, err := fx.service.Reject(ctx, transactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusRejected, transaction.Status)
}

func TestTransactionService_Reject_AlreadyProcessed(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(nil, repository.ErrTransactionNotFound)

			return fn(mockFactory)
		})

	transaction, err := fx.service.Reject(ctx, transactionID)
	require.Error(t, err)
	assert.Nil(t, transaction)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTransactionProcessed.ErrorCode(), appErr.ErrorCode())
}
