package impl

import (
	"context"
	"testing"

	"wattpay/internal/domain/entity"
	domainerrors "wattpay/internal/domain/errors"
	"wattpay/internal/domain/repository"
	mockRepo "wattpay/internal/mocks/repository"
	mockSvc "wattpay/internal/mocks/service"
	"wattpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		PhoneNumber: "0912345678",
		Password:    "Password123!",
		FullName:    "Nguyen Van A",
		Role:        entity.RoleAgent,
	}

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Run(func(ctx context.Context, user *entity.User, passwordHash string) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.PhoneNumber, output.User.PhoneNumber)
	assert.Equal(t, entity.RoleAgent, output.User.Role)
	assert.Equal(t, entity.UserStatusPending, output.User.Status)
	assert.Nil(t, output.User.AgentProfile)
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		PhoneNumber: "0912345678",
		Password:    "Password123!",
		FullName:    "Nguyen Van A",
		Role:        entity.RoleAdmin,
	}

	output, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Register_DuplicatePhone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		PhoneNumber: "0912345678",
		Password:    "Password123!",
		FullName:    "Nguyen Van A",
		Role:        entity.RoleCustomer,
	}

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Return(domainerrors.ErrDuplicatePhone.WrapMessage("phone number already registered"))

	output, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDuplicatePhone.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_CreateStaff_ActiveImmediately(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.CreateStaffInput{
		PhoneNumber: "0987654321",
		Password:    "Password123!",
		FullName:    "Tran Thi B",
	}

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Run(func(ctx context.Context, user *entity.User, passwordHash string) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.CreateStaff(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, output.User.Role)
	assert.Equal(t, entity.UserStatusActive, output.User.Status)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	credential := &repository.Credential{
		UserID:       userID,
		PhoneNumber:  "0912345678",
		Role:         entity.RoleAgent,
		Status:       entity.UserStatusActive,
		PasswordHash: "hashed-password",
	}
	user := &entity.User{
		ID:          userID,
		PhoneNumber: "0912345678",
		FullName:    "Nguyen Van A",
		Role:        entity.RoleAgent,
		Status:      entity.UserStatusActive,
	}

	fx.userRepo.EXPECT().
		FindCredentialByPhone(ctx, "0912345678").
		Return(credential, nil)

	fx.hasher.EXPECT().
		Check("Password123!", "hashed-password").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, entity.RoleAgent).
		Return("signed-token", nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		PhoneNumber: "0912345678",
		Password:    "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_UnknownPhone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindCredentialByPhone(ctx, "0900000000").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		PhoneNumber: "0900000000",
		Password:    "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	credential := &repository.Credential{
		UserID:       uuid.New(),
		PhoneNumber:  "0912345678",
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
		PasswordHash: "hashed-password",
	}

	fx.userRepo.EXPECT().
		FindCredentialByPhone(ctx, "0912345678").
		Return(credential, nil)

	fx.hasher.EXPECT().
		Check("wrong-password", "hashed-password").
		Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		PhoneNumber: "0912345678",
		Password:    "wrong-password",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_ApproveUser_AgentCreatesProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	pendingUser := &entity.User{
		ID:          userID,
		PhoneNumber: "0912345678",
		FullName:    "Nguyen Van A",
		Role:        entity.RoleAgent,
		Status:      entity.UserStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(pendingUser, nil)

			mockUserRepo.EXPECT().
				MarkActive(ctx, userID).
				Return(nil)

			mockWalletRepo.EXPECT().
				CreateAgentProfile(ctx, mock.AnythingOfType("*entity.AgentProfile")).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.ApproveUser(ctx, userID, entity.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	require.NotNil(t, user.AgentProfile)
	assert.Equal(t, "Agent Nguyen Van A", user.AgentProfile.AgentName)
	assert.Zero(t, user.AgentProfile.WalletBalance)
}

func TestUserService_ApproveUser_CustomerCreatesProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	pendingUser := &entity.User{
		ID:       userID,
		FullName: "Tran Thi B",
		Role:     entity.RoleCustomer,
		Status:   entity.UserStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(pendingUser, nil)

			mockUserRepo.EXPECT().
				MarkActive(ctx, userID).
				Return(nil)

			mockWalletRepo.EXPECT().
				CreateCustomerProfile(ctx, mock.AnythingOfType("*entity.CustomerProfile")).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.ApproveUser(ctx, userID, entity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	require.NotNil(t, user.CustomerProfile)
	assert.Zero(t, user.CustomerProfile.WalletBalance)
}

func TestUserService_ApproveUser_AlreadyProcessed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	activeUser := &entity.User{
		ID:       userID,
		FullName: "Nguyen Van A",
		Role:     entity.RoleAgent,
		Status:   entity.UserStatusActive,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(activeUser, nil)

			// The guard finds no pending row, so no profile is ever created.
			mockUserRepo.EXPECT().
				MarkActive(ctx, userID).
				Return(repository.ErrUserNotPending)

			return fn(mockFactory)
		})

	user, err := fx.service.ApproveUser(ctx, userID, entity.RoleAgent)
	require.Error(t, err)
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserProcessed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_ApproveUser_RoleMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	pendingCustomer := &entity.User{
		ID:       userID,
		FullName: "Tran Thi B",
		Role:     entity.RoleCustomer,
		Status:   entity.UserStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(pendingCustomer, nil)

			return fn(mockFactory)
		})

	user, err := fx.service.ApproveUser(ctx, userID, entity.RoleAgent)
	require.Error(t, err)
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserProcessed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_ListPending(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	pending := []*entity.User{
		{ID: uuid.New(), Role: entity.RoleAgent, Status: entity.UserStatusPending},
		{ID: uuid.New(), Role: entity.RoleAgent, Status: entity.UserStatusPending},
	}

	fx.userRepo.EXPECT().
		ListByRoleAndStatus(ctx, entity.RoleAgent, entity.UserStatusPending).
		Return(pending, nil)

	users, err := fx.service.ListPending(ctx, entity.RoleAgent)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_ListPending_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		ListByRoleAndStatus(ctx, entity.RoleCustomer, entity.UserStatusPending).
		Return(nil, errors.New("connection reset"))

	users, err := fx.service.ListPending(ctx, entity.RoleCustomer)
	require.Error(t, err)
	assert.Nil(t, users)
}
