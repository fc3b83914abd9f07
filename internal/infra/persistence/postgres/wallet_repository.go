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

// walletRepository implements the domain.WalletRepository interface using GORM.
//
// Balance mutations are single conditional UPDATEs: the non-negativity guard
// sits in the WHERE clause, so the database serializes concurrent movements
// on the same wallet and the loser simply affects zero rows.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

// CreateAgentProfile persists a new agent profile.
func (repo *walletRepository) CreateAgentProfile(ctx context.Context, profile *entity.AgentProfile) error {
	profileM := &model.AgentProfileModel{
		UserID:        profile.UserID,
		AgentName:     profile.AgentName,
		WalletBalance: profile.WalletBalance,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("agent profile already exists for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("agent profile references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agent profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// CreateCustomerProfile persists a new customer profile.
func (repo *walletRepository) CreateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error {
	profileM := &model.CustomerProfileModel{
		UserID:        profile.UserID,
		WalletBalance: profile.WalletBalance,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("customer profile already exists for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("customer profile references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindAgentProfile retrieves the agent profile for a user.
func (repo *walletRepository) FindAgentProfile(ctx context.Context, userID uuid.UUID) (*entity.AgentProfile, error) {
	var profileM model.AgentProfileModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent profile")
	}

	return toAgentProfileDomain(&profileM), nil
}

// FindCustomerProfile retrieves the customer profile for a user.
func (repo *walletRepository) FindCustomerProfile(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// AddBalance unconditionally increases a wallet balance.
func (repo *walletRepository) AddBalance(ctx context.Context, kind entity.ProfileKind, userID uuid.UUID, amount float64) error {
	result := repo.profileModel(ctx, kind).
		Where("user_id = ?", userID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to credit wallet balance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// DeductBalance decreases a wallet balance only if the current balance covers
// the amount.
func (repo *walletRepository) DeductBalance(ctx context.Context, kind entity.ProfileKind, userID uuid.UUID, amount float64) error {
	result := repo.profileModel(ctx, kind).
		Where("user_id = ? AND wallet_balance >= ?", userID, amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientBalance
		}

		return errors.Wrap(result.Error, "failed to debit wallet balance")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// Zero rows: either the profile is missing or the balance guard failed.
	// Distinguish the two so the ledger can report insufficient funds precisely.
	var count int64
	if err := repo.profileModel(ctx, kind).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check wallet profile existence")
	}
	if count == 0 {
		return repository.ErrProfileNotFound
	}

	return repository.ErrInsufficientBalance
}

// profileModel selects the GORM model for the profile kind owning the wallet.
func (repo *walletRepository) profileModel(ctx context.Context, kind entity.ProfileKind) *gorm.DB {
	if kind == entity.ProfileKindAgent {
		return repo.db.WithContext(ctx).Model(&model.AgentProfileModel{})
	}

	return repo.db.WithContext(ctx).Model(&model.CustomerProfileModel{})
}
