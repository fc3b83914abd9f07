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

// billServiceFixtures holds all test dependencies for bill service tests.
type billServiceFixtures struct {
	service   usecase.BillUsecase
	txManager *mockRepo.MockTransactionManager
	billRepo  *mockRepo.MockBillRepository
}

func createTestBillService(t *testing.T) billServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	billRepo := mockRepo.NewMockBillRepository(t)

	service := NewBillService(BillServiceParams{
		TxManager: txManager,
		BillRepo:  billRepo,
		Logger:    newDiscardLogger(),
	})

	return billServiceFixtures{
		service:   service,
		txManager: txManager,
		billRepo:  billRepo,
	}
}

func TestBillService_Import_AsAgent(t *testing.T) {
	fx := createTestBillService(t)

	ctx := context.Background()
	importerID := uuid.New()

	fx.billRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ElectricityBill")).
		Run(func(ctx context.Context, bill *entity.ElectricityBill) {
			bill.ID = uuid.New()
		}).
		Return(nil)

	bill, err := fx.service.Import(ctx, usecase.ImportBillInput{
		CustomerCode: "PE010203040506",
		TotalAmount:  350000,
		ImporterID:   importerID,
		ImporterRole: entity.RoleAgent,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusInStock, bill.Status)
	assert.Equal(t, importerID, bill.ImporterID)
	assert.Nil(t, bill.BuyerID)
}

func TestBillService_Import_ForbiddenRoles(t *testing.T) {
	fx := createTestBillService(t)

	ctx := context.Background()

	for _, role := range []entity.Role{entity.RoleCustomer, entity.RoleStaff} {
		bill, err := fx.service.Import(ctx, usecase.ImportBillInput{
			CustomerCode: "PE010203040506",
			TotalAmount:  350000,
			ImporterID:   uuid.New(),
			ImporterRole: role,
		})
		require.Error(t, err)
		assert.Nil(t, bill)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
	}
}

func TestBillService_Import_NonPositiveAmount(t *testing.T) {
	fx := createTestBillService(t)

	ctx := context.Background()

	bill, err := fx.service.Import(ctx, usecase.ImportBillInput{
		CustomerCode: "PE010203040506",
		TotalAmount:  0,
		ImporterID:   uuid.New(),
		ImporterRole: entity.RoleAgent,
	})
	require.Error(t, err)
	assert.Nil(t, bill)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestBillService_ListInStock(t *testing.T) {
	fx := createTestBillService(t)

	ctx := context.Background()
	inStock := []*entity.ElectricityBill{
		{ID: uuid.New(), Status: entity.BillStatusInStock},
		{ID: uuid.New(), Status: entity.BillStatusInStock},
	}

	fx.billRepo.EXPECT().
		ListByStatus(ctx, entity.BillStatusInStock).
		Return(inStock, nil)

	bills, err := fx.service.ListInStock(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 2)
}

func TestBillService_Export_Success(t *testing.T) {
	fx := createTestBillService(t)

	ctx := context.Background()
	billID := uuid.New()
	buyerID := uuid.New()
	inStock := &entity.ElectricityBill{
		ID:           billID,
		CustomerCode: "PE010203040506",
		TotalAmount:  350000,
		Status:       entity.BillStatusInStock,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillRepo := mockRepo.NewMockBillRepository(t)

			mockFactory.EXPECT().BillRepo().Return(mockBillRepo)

			mockBillRepo.EXPECT().
				FindByID(ctx, billID).
				Return(inStock, nil)

			mockBillRepo.EXPECT().
				MarkSold(ctx, billID, buyerID).
				Return(nil)

			return fn(mockFactory)
		})

	bill, err := fx.service.Export(ctx, billID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusSold, bill.Status)
	require.NotNil(t, bill.BuyerID)
	assert.Equal(t, buyerID, *bill.BuyerID)
}

func TestBillService_Export_AlreadySold(t *testing.T) {
	fx := createTestBillService(t)

	ctx := context.Background()
	billID := uuid.New()
	buyerID := uuid.New()
	firstBuyer := uuid.New()
	sold := &entity.ElectricityBill{
		ID:           billID,
		CustomerCode: "PE010203040506",
		TotalAmount:  350000,
		Status:       entity.BillStatusSold,
		BuyerID:      &firstBuyer,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillRepo := mockRepo.NewMockBillRepository(t)

			mockFactory.EXPECT().BillRepo().Return(mockBillRepo)

			mockBillRepo.EXPECT().
				FindByID(ctx, billID).
				Return(sold, nil)

			// The in_stock guard fails, so the first buyer is never overwritten.
			mockBillRepo.EXPECT().
				MarkSold(ctx, billID, buyerID).
				Return(repository.ErrBillNotInStock)

			return fn(mockFactory)
		})

	bill, err := fx.service.Export(ctx, billID, buyerID)
	require.Error(t, err)
	assert.Nil(t, bill)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrBillSold.ErrorCode(), appErr.ErrorCode())
}

func TestBillService_Export_NotFound(t *testing.T) {
	fx := createTestBillService(t)

	ctx := context.Background()
	billID := uuid.New()
	buyerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillRepo := mockRepo.NewMockBillRepository(t)

			mockFactory.EXPECT().BillRepo().Return(mockBillRepo)

			mockBillRepo.EXPECT().
				FindByID(ctx, billID).
				Return(nil, repository.ErrBillNotFound)

			return fn(mockFactory)
		})

	bill, err := fx.service.Export(ctx, billID, buyerID)
	require.Error(t, err)
	assert.Nil(t, bill)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrBillSold.ErrorCode(), appErr.ErrorCode())
}
