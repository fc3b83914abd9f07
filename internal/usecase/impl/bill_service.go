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

// billService implements the BillUsecase interface.
type billService struct {
	txManager repository.TransactionManager
	billRepo  repository.BillRepository
	logger    *slog.Logger
}

// BillServiceParams holds dependencies for BillService, injected by Fx.
type BillServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BillRepo  repository.BillRepository
	Logger    *slog.Logger
}

// NewBillService is the constructor for billService.
func NewBillService(params BillServiceParams) usecase.BillUsecase {
	return &billService{
		txManager: params.TxManager,
		billRepo:  params.BillRepo,
		logger:    params.Logger,
	}
}

func (srv *billService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Import adds a prepaid bill to the warehouse. Agents source inventory, and
// admins can do it on their behalf; everyone else is refused.
func (srv *billService) Import(ctx context.Context, input usecase.ImportBillInput) (*entity.ElectricityBill, error) {
	if input.ImporterRole != entity.RoleAgent && input.ImporterRole != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("only agents and admins can import bills")
	}
	if input.TotalAmount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total amount must be positive")
	}

	bill := &entity.ElectricityBill{
		CustomerCode: input.CustomerCode,
		TotalAmount:  input.TotalAmount,
		Status:       entity.BillStatusInStock,
		ImporterID:   input.ImporterID,
	}

	if err := srv.billRepo.Create(ctx, bill); err != nil {
		srv.log(ctx).Error("Bill import failed",
			slog.String("customerCode", input.CustomerCode),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Bill imported",
		slog.Any("billID", bill.ID),
		slog.String("customerCode", bill.CustomerCode),
		slog.Float64("totalAmount", bill.TotalAmount),
	)

	return bill, nil
}

// ListInStock returns all bills currently available for sale, newest first.
func (srv *billService) ListInStock(ctx context.Context) ([]*entity.ElectricityBill, error) {
	bills, err := srv.billRepo.ListByStatus(ctx, entity.BillStatusInStock)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list in-stock bills")
	}

	return bills, nil
}

// Export sells an in-stock bill to a buyer. The in_stock precondition rides
// on the status flip, so the first committed export wins and every later one
// fails without disturbing the recorded buyer.
func (srv *billService) Export(ctx context.Context, billID uuid.UUID, buyerID uuid.UUID) (*entity.ElectricityBill, error) {
	srv.log(ctx).Info("Exporting bill", slog.Any("billID", billID), slog.Any("buyerID", buyerID))

	var sold *entity.ElectricityBill
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		billRepo := repoFactory.BillRepo()

		bill, err := billRepo.FindByID(ctx, billID)
		if errors.Is(err, repository.ErrBillNotFound) {
			return domainerrors.ErrBillSold.WrapMessage("bill not found or already sold")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load bill")
		}

		if err := billRepo.MarkSold(ctx, billID, buyerID); err != nil {
			if errors.Is(err, repository.ErrBillNotInStock) {
				return domainerrors.ErrBillSold.WrapMessage("bill not found or already sold")
			}

			return errors.Wrap(err, "failed to mark bill sold")
		}

		bill.Status = entity.BillStatusSold
		buyer := buyerID
		bill.BuyerID = &buyer
		sold = bill

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Bill export failed", slog.Any("billID", billID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Bill exported", slog.Any("billID", billID), slog.Any("buyerID", buyerID))

	return sold, nil
}
