package impl

import (
	"context"
	"log/slog"

	deliverycontext "wattpay/internal/delivery/context"
	"wattpay/internal/domain/entity"
	domainerrors "wattpay/internal/domain/errors"
	"wattpay/internal/domain/repository"
	"wattpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	txManager repository.TransactionManager
	cardRepo  repository.CardRepository
	logger    *slog.Logger
}

// CardServiceParams holds dependencies for CardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CardRepo  repository.CardRepository
	Logger    *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	return &cardService{
		txManager: params.TxManager,
		cardRepo:  params.CardRepo,
		logger:    params.Logger,
	}
}

func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create saves a masked card reference for a customer. The customer must
// already have an approved profile; cards never attach to pending accounts.
func (srv *cardService) Create(ctx context.Context, input usecase.CreateCardInput) (*entity.CreditCard, error) {
	var card *entity.CreditCard
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		walletRepo := repoFactory.WalletRepo()
		cardRepo := repoFactory.CardRepo()

		if _, err := walletRepo.FindCustomerProfile(ctx, input.CustomerID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("no customer profile for this user")
			}

			return errors.Wrap(err, "failed to load customer profile")
		}

		card = &entity.CreditCard{
			CustomerID:       input.CustomerID,
			CardNumberSuffix: input.CardNumberSuffix,
			BankName:         input.BankName,
		}

		return cardRepo.Create(ctx, card)
	})
	if err != nil {
		srv.log(ctx).Error("Card creation failed", slog.Any("customerID", input.CustomerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Card saved", slog.Any("cardID", card.ID), slog.Any("customerID", input.CustomerID))

	return card, nil
}

// ListByCustomer returns the cards saved for a customer, newest first.
func (srv *cardService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CreditCard, error) {
	cards, err := srv.cardRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	return cards, nil
}
