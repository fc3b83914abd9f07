package postgres

import (
	"context"

	"wattpay/internal/domain/entity"
	domainerrors "wattpay/internal/domain/errors"
	"wattpay/internal/domain/repository"
	"wattpay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their wallet profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("AgentProfile").
		Preload("CustomerProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByPhone retrieves a single user by their phone number, preloading their wallet profiles.
func (repo *userRepository) FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("AgentProfile").
		Preload("CustomerProfile").
		Where("phone_number = ?", phoneNumber).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return toUserDomain(&userM), nil
}

// FindCredentialByPhone retrieves the login credential for a phone number.
// This is the only read that exposes the password hash, and it never maps
// onto the User entity.
func (repo *userRepository) FindCredentialByPhone(ctx context.Context, phoneNumber string) (*repository.Credential, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Select("id", "phone_number", "password_hash", "role", "status").
		Where("phone_number = ?", phoneNumber).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by phone")
	}

	return &repository.Credential{
		UserID:       userM.ID,
		PhoneNumber:  userM.PhoneNumber,
		Role:         entity.Role(userM.Role),
		Status:       entity.UserStatus(userM.Status),
		PasswordHash: userM.PasswordHash,
	}, nil
}

// ListByRoleAndStatus retrieves users matching both role and status, newest first.
func (repo *userRepository) ListByRoleAndStatus(ctx context.Context, role entity.Role, status entity.UserStatus) ([]*entity.User, error) {
	var userModels []*model.UserModel

	err := repo.db.WithContext(ctx).
		Where("role = ? AND status = ?", role.String(), status.String()).
		Order("created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role and status")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user with its hashed credential.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicatePhone.WrapMessage("phone number already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// MarkActive flips a user's status from pending_approval to active.
// The status precondition lives in the WHERE clause, so under concurrent
// approvals only the first committer sees an affected row.
func (repo *userRepository) MarkActive(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND status = ?", id, entity.UserStatusPending.String()).
		Update("status", entity.UserStatusActive.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark user active")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotPending
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.
// The password hash deliberately has no place on the domain entity.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		PhoneNumber:     data.PhoneNumber,
		FullName:        data.FullName,
		Role:            entity.Role(data.Role),
		Status:          entity.UserStatus(data.Status),
		AgentProfile:    toAgentProfileDomain(data.AgentProfile),
		CustomerProfile: toCustomerProfileDomain(data.CustomerProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		FullName:    data.FullName,
		Role:        data.Role.String(),
		Status:      data.Status.String(),
	}
}

// toAgentProfileDomain converts a GORM AgentProfileModel to a domain AgentProfile entity.
func toAgentProfileDomain(data *model.AgentProfileModel) *entity.AgentProfile {
	if data == nil {
		return nil
	}

	return &entity.AgentProfile{
		UserID:        data.UserID,
		AgentName:     data.AgentName,
		WalletBalance: data.WalletBalance,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toCustomerProfileDomain converts a GORM CustomerProfileModel to a domain CustomerProfile entity.
func toCustomerProfileDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	if data == nil {
		return nil
	}

	return &entity.CustomerProfile{
		UserID:        data.UserID,
		WalletBalance: data.WalletBalance,
		UpdatedAt:     data.UpdatedAt,
	}
}
