package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "wattpay/internal/delivery/context"
	"wattpay/internal/domain/entity"
	domainerrors "wattpay/internal/domain/errors"
	"wattpay/internal/domain/repository"
	"wattpay/internal/domain/service"
	"wattpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenTypeBearer is the token_type value returned alongside access tokens.
const tokenTypeBearer = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new agent or customer account in pending_approval status.
// The wallet profile is deliberately not created here; it appears only when
// an admin approves the registration.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if !input.Role.SelfRegisterable() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be agent or customer")
	}

	srv.log(ctx).Info("Starting registration",
		slog.Any("role", input.Role),
		slog.String("phoneNumber", input.PhoneNumber),
	)

	user, err := srv.createUser(ctx, input.PhoneNumber, input.Password, input.FullName, input.Role, entity.UserStatusPending)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", input.Role), slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// CreateStaff provisions a staff account. Unlike self-registration the account
// is active immediately; only admins reach this operation.
func (srv *userService) CreateStaff(ctx context.Context, input usecase.CreateStaffInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Creating staff account", slog.String("phoneNumber", input.PhoneNumber))

	user, err := srv.createUser(ctx, input.PhoneNumber, input.Password, input.FullName, entity.RoleStaff, entity.UserStatusActive)
	if err != nil {
		return nil, err
	}

	return &usecase.RegisterOutput{User: user}, nil
}

func (srv *userService) createUser(
	ctx context.Context,
	phoneNumber, password, fullName string,
	role entity.Role,
	status entity.UserStatus,
) (*entity.User, error) {
	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		PhoneNumber: phoneNumber,
		FullName:    fullName,
		Role:        role,
		Status:      status,
	}

	if err := srv.userRepo.Create(ctx, user, passwordHash); err != nil {
		srv.log(ctx).Warn("User creation failed",
			slog.String("phoneNumber", phoneNumber),
			slog.Any("error", err),
		)

		return nil, err
	}

	return user, nil
}

// Login verifies the phone/password pair and issues an access token carrying
// the user's role. Unknown phone and wrong password are indistinguishable to
// the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := srv.userRepo.FindCredentialByPhone(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("incorrect phone number or password")
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("phoneNumber", input.PhoneNumber))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("incorrect phone number or password")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(credential.UserID, credential.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user after login")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", credential.UserID), slog.Any("role", credential.Role))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		User:        user,
	}, nil
}

// ApproveUser activates a pending registration and creates its wallet profile
// in one unit of work. The status flip carries the pending precondition, so a
// second concurrent approval fails the guard and can never create a second
// profile.
func (srv *userService) ApproveUser(ctx context.Context, userID uuid.UUID, targetRole entity.Role) (*entity.User, error) {
	srv.log(ctx).Info("Approving registration", slog.Any("userID", userID), slog.Any("role", targetRole))

	var approvedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		walletRepo := repoFactory.WalletRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserProcessed.WrapMessage("no pending registration for this user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for approval")
		}
		if user.Role != targetRole {
			return domainerrors.ErrUserProcessed.WrapMessage("no pending registration for this user")
		}

		if err := userRepo.MarkActive(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotPending) {
				return domainerrors.ErrUserProcessed.WrapMessage("registration already processed")
			}

			return errors.Wrap(err, "failed to activate user")
		}

		switch targetRole {
		case entity.RoleAgent:
			profile := &entity.AgentProfile{
				UserID:    user.ID,
				AgentName: fmt.Sprintf("Agent %s", user.FullName),
			}
			if err := walletRepo.CreateAgentProfile(ctx, profile); err != nil {
				return err
			}
			user.AgentProfile = profile
		case entity.RoleCustomer:
			profile := &entity.CustomerProfile{UserID: user.ID}
			if err := walletRepo.CreateCustomerProfile(ctx, profile); err != nil {
				return err
			}
			user.CustomerProfile = profile
		default:
			return domainerrors.ErrValidationFailed.WrapMessage("only agent or customer registrations can be approved")
		}

		user.Status = entity.UserStatusActive
		approvedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Approval failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Registration approved", slog.Any("userID", userID), slog.Any("role", targetRole))

	return approvedUser, nil
}

// ListPending returns pending_approval users of the given role, newest first.
func (srv *userService) ListPending(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	users, err := srv.userRepo.ListByRoleAndStatus(ctx, role, entity.UserStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending users")
	}

	return users, nil
}
