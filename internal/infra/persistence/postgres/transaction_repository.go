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

// transactionRepository implements the domain.TransactionRepository interface using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create persists a new pending transaction request.
func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("transaction references missing user")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("transaction amount must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt

	return nil
}

// FindByID retrieves a single transaction by its unique ID.
func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionM model.TransactionModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transactionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&transactionM), nil
}

// ListByStatus retrieves all transactions in the given status, newest first.
func (repo *transactionRepository) ListByStatus(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&transactionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by status")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// MarkProcessed flips a transaction from pending to the given terminal status.
// The pending precondition lives in the WHERE clause, so two concurrent
// reviewers can never both settle the same request.
func (repo *transactionRepository) MarkProcessed(ctx context.Context, id uuid.UUID, to entity.TransactionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND status = ?", id, entity.TransactionStatusPending.String()).
		Update("status", to.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark transaction processed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotPending
	}

	return nil
}

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.TransactionType(data.Type),
		Amount:    data.Amount,
		Status:    entity.TransactionStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:     data.ID,
		UserID: data.UserID,
		Type:   data.Type.String(),
		Amount: data.Amount,
		Status: data.Status.String(),
	}
}
