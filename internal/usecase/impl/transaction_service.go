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

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txManager       repository.TransactionManager
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		txManager:       params.TxManager,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a pending transaction request. The settlement table decides
// which role may request which type; nothing touches a wallet here.
func (srv *transactionService) Create(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
	}

	settlement, ok := entity.SettlementFor(input.Type)
	if !ok || settlement.CreatorRole != input.Role {
		srv.log(ctx).Warn("Transaction type rejected for role",
			slog.Any("role", input.Role),
			slog.Any("type", input.Type),
		)

		return nil, domainerrors.ErrTransactionTypeMismatch.WrapMessage("transaction type not allowed for this role")
	}

	transaction := &entity.Transaction{
		UserID: input.UserID,
		Type:   input.Type,
		Amount: input.Amount,
		Status: entity.TransactionStatusPending,
	}

	if err := srv.transactionRepo.Create(ctx, transaction); err != nil {
		srv.log(ctx).Error("Transaction request failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Transaction requested",
		slog.Any("transactionID", transaction.ID),
		slog.Any("type", transaction.Type),
		slog.Float64("amount", transaction.Amount),
	)

	return transaction, nil
}

// ListPending returns all transaction requests awaiting review, newest first.
func (srv *transactionService) ListPending(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.ListByStatus(ctx, entity.TransactionStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending transactions")
	}

	return transactions, nil
}

// Approve settles a pending transaction in one unit of work: the guarded
// status flip and the wallet movement commit together or not at all. If the
// wallet debit fails on insufficient funds, the rollback returns the
// transaction to pending untouched.
func (srv *transactionService) Approve(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	srv.log(ctx).Info("Approving transaction", slog.Any("transactionID", id))

	var approved *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()
		wallets := newLedger(repoFactory.WalletRepo())

		transaction, err := srv.loadPending(ctx, transactionRepo, id)
		if err != nil {
			return err
		}

		if err := transactionRepo.MarkProcessed(ctx, id, entity.TransactionStatusApproved); err != nil {
			if errors.Is(err, repository.ErrTransactionNotPending) {
				return domainerrors.ErrTransactionProcessed.WrapMessage("transaction not found or already processed")
			}

			return errors.Wrap(err, "failed to mark transaction approved")
		}

		settlement, ok := entity.SettlementFor(transaction.Type)
		if !ok {
			return domainerrors.ErrTransactionFailed.WrapMessage("transaction has an unknown type")
		}

		if err := wallets.Apply(ctx, settlement, transaction.UserID, transaction.Amount); err != nil {
			return err
		}

		transaction.Status = entity.TransactionStatusApproved
		approved = transaction

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Transaction approval failed", slog.Any("transactionID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Transaction approved", slog.Any("transactionID", id))

	return approved, nil
}

// Reject declines a pending transaction. No wallet is touched.
func (srv *transactionService) Reject(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	srv.log(ctx).Info("Rejecting transaction", slog.Any("transactionID", id))

	var rejected *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()

		transaction, err := srv.loadPending(ctx, transactionRepo, id)
		if err != nil {
			return err
		}

		if err := transactionRepo.MarkProcessed(ctx, id, entity.TransactionStatusRejected); err != nil {
			if errors.Is(err, repository.ErrTransactionNotPending) {
				return domainerrors.ErrTransactionProcessed.WrapMessage("transaction not found or already processed")
			}

			return errors.Wrap(err, "failed to mark transaction rejected")
		}

		transaction.Status = entity.TransactionStatusRejected
		rejected = transaction

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Transaction rejection failed", slog.Any("transactionID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Transaction rejected", slog.Any("transactionID", id))

	return rejected, nil
}

// loadPending fetches a transaction, collapsing a missing row into the same
// error an already-processed one produces.
func (srv *transactionService) loadPending(ctx context.Context, transactionRepo repository.TransactionRepository, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := transactionRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return nil, domainerrors.ErrTransactionProcessed.WrapMessage("transaction not found or already processed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load transaction")
	}

	return transaction, nil
}
