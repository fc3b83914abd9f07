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

// cardRepository implements the domain.CardRepository interface using GORM.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// Create persists a saved credit card for a customer.
func (repo *cardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	cardM := &model.CreditCardModel{
		ID:               card.ID,
		CustomerID:       card.CustomerID,
		CardNumberSuffix: card.CardNumberSuffix,
		BankName:         card.BankName,
	}

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("card references missing customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credit card")
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt

	return nil
}

// ListByCustomer retrieves all cards saved by a customer, newest first.
func (repo *cardRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CreditCard, error) {
	var cardModels []*model.CreditCardModel

	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&cardModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credit cards by customer")
	}

	cards := make([]*entity.CreditCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, &entity.CreditCard{
			ID:               cardM.ID,
			CustomerID:       cardM.CustomerID,
			CardNumberSuffix: cardM.CardNumberSuffix,
			BankName:         cardM.BankName,
			CreatedAt:        cardM.CreatedAt,
		})
	}

	return cards, nil
}
