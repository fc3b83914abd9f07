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

// cardServiceFixtures holds all test dependencies for card service tests.
type cardServiceFixtures struct {
	service   usecase.CardUsecase
	txManager *mockRepo.MockTransactionManager
	cardRepo  *mockRepo.MockCardRepository
}

func createTestCardService(t *testing.T) cardServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cardRepo := mockRepo.NewMockCardRepository(t)

	service := NewCardService(CardServiceParams{
		TxManager: txManager,
		CardRepo:  cardRepo,
		Logger:    newDiscardLogger(),
	})

	return cardServiceFixtures{
		service:   service,
		txManager: txManager,
		cardRepo:  cardRepo,
	}
}

func TestCardService_Create_Success(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	profile := &entity.CustomerProfile{UserID: customerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)
			mockCardRepo := mockRepo.NewMockCardRepository(t)

			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)
			mockFactory.EXPECT().CardRepo().Return(mockCardRepo)

			mockWalletRepo.EXPECT().
				FindCustomerProfile(ctx, customerID).
				Return(profile, nil)

			mockCardRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CreditCard")).
				Run(func(ctx context.Context, card *entity.CreditCard) {
					card.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	card, err := fx.service.Create(ctx, usecase.CreateCardInput{
		CustomerID:       customerID,
		CardNumberSuffix: "4242",
		BankName:         "Vietcombank",
	})
	require.NoError(t, err)
	assert.Equal(t, customerID, card.CustomerID)
	assert.Equal(t, "4242", card.CardNumberSuffix)
	assert.Equal(t, "Vietcombank", card.BankName)
}

func TestCardService_Create_NoCustomerProfile(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)
			mockCardRepo := mockRepo.NewMockCardRepository(t)

			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)
			mockFactory.EXPECT().CardRepo().Return(mockCardRepo)

			// A pending or non-customer account has no profile row.
			mockWalletRepo.EXPECT().
				FindCustomerProfile(ctx, customerID).
				Return(nil, repository.ErrProfileNotFound)

			return fn(mockFactory)
		})

	card, err := fx.service.Create(ctx, usecase.CreateCardInput{
		CustomerID:       customerID,
		CardNumberSuffix: "4242",
		BankName:         "Vietcombank",
	})
	require.Error(t, err)
	assert.Nil(t, card)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProfileNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestCardService_ListByCustomer(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	cards := []*entity.CreditCard{
		{ID: uuid.New(), CustomerID: customerID, CardNumberSuffix: "4242"},
		{ID: uuid.New(), CustomerID: customerID, CardNumberSuffix: "1881"},
	}

	fx.cardRepo.EXPECT().
		ListByCustomer(ctx, customerID).
		Return(cards, nil)

	listed, err := fx.service.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
