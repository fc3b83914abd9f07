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

// billRepository implements the domain.BillRepository interface using GORM.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository is the constructor for billRepository.
func NewBillRepository(db *gorm.DB) repository.BillRepository {
	return &billRepository{db: db}
}

// Create persists a newly imported bill in stock.
func (repo *billRepository) Create(ctx context.Context, bill *entity.ElectricityBill) error {
	billM := fromBillDomain(bill)

	if err := repo.db.WithContext(ctx).Create(billM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("bill references missing importer")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("bill amount must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bill")
	}

	bill.ID = billM.ID
	bill.CreatedAt = billM.CreatedAt
	bill.UpdatedAt = billM.UpdatedAt

	return nil
}

// FindByID retrieves a single bill by its unique ID.
func (repo *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ElectricityBill, error) {
	var billM model.BillModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&billM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBillNotFound
		}

		return nil, errors.Wrap(err, "failed to find bill by id")
	}

	return toBillDomain(&billM), nil
}

// ListByStatus retrieves all bills in the given status, newest first.
func (repo *billRepository) ListByStatus(ctx context.Context, status entity.BillStatus) ([]*entity.ElectricityBill, error) {
	var billModels []*model.BillModel

	err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&billModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bills by status")
	}

	bills := make([]*entity.ElectricityBill, 0, len(billModels))
	for _, billM := range billModels {
		bills = append(bills, toBillDomain(billM))
	}

	return bills, nil
}

// MarkSold flips a bill from in_stock to sold and records the buyer.
// The in_stock precondition lives in the WHERE clause, so a bill can
// only ever be sold once regardless of concurrent exports.
func (repo *billRepository) MarkSold(ctx context.Context, billID uuid.UUID, buyerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("id = ? AND status = ?", billID, entity.BillStatusInStock.String()).
		Updates(map[string]any{
			"status":   entity.BillStatusSold.String(),
			"buyer_id": buyerID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserNotFound.WrapMessage("bill sale references missing buyer")
		}

		return errors.Wrap(result.Error, "failed to mark bill sold")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBillNotInStock
	}

	return nil
}

// toBillDomain converts a GORM BillModel to a domain ElectricityBill entity.
func toBillDomain(data *model.BillModel) *entity.ElectricityBill {
	if data == nil {
		return nil
	}

	return &entity.ElectricityBill{
		ID:           data.ID,
		CustomerCode: data.CustomerCode,
		TotalAmount:  data.TotalAmount,
		Status:       entity.BillStatus(data.Status),
		ImporterID:   data.ImporterID,
		BuyerID:      data.BuyerID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromBillDomain converts a domain ElectricityBill entity to a GORM BillModel.
func fromBillDomain(data *entity.ElectricityBill) *model.BillModel {
	if data == nil {
		return nil
	}

	return &model.BillModel{
		ID:           data.ID,
		CustomerCode: data.CustomerCode,
		TotalAmount:  data.TotalAmount,
		Status:       data.Status.String(),
		ImporterID:   data.ImporterID,
		BuyerID:      data.BuyerID,
	}
}
