package handler

import (
	"log/slog"
	"net/http"

	"wattpay/internal/delivery/http/response"
	"wattpay/internal/domain/entity"
	"wattpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin review surface.
type AdminHandler struct {
	userUC        usecase.UserUsecase
	transactionUC usecase.TransactionUsecase
	cardUC        usecase.CardUsecase
	logger        *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	userUC usecase.UserUsecase,
	transactionUC usecase.TransactionUsecase,
	cardUC usecase.CardUsecase,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		userUC:        userUC,
		transactionUC: transactionUC,
		cardUC:        cardUC,
		logger:        logger,
	}
}

// CreateStaffRequest is the payload for provisioning a staff account.
type CreateStaffRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
}

// CreateCardRequest is the payload for saving a customer card.
type CreateCardRequest struct {
	CardNumberSuffix string `json:"card_number_suffix" validate:"required,numeric,max=4"`
	BankName         string `json:"bank_name" validate:"required"`
}

// CreateStaff handles the staff provisioning request.
func (h *AdminHandler) CreateStaff(c echo.Context) error {
	var req CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.CreateStaff(c.Request().Context(), usecase.CreateStaffInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		FullName:    req.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "Staff account created")
}

// ListPendingAgents returns agent registrations awaiting approval.
func (h *AdminHandler) ListPendingAgents(c echo.Context) error {
	return h.listPending(c, entity.RoleAgent)
}

// ListPendingCustomers returns customer registrations awaiting approval.
func (h *AdminHandler) ListPendingCustomers(c echo.Context) error {
	return h.listPending(c, entity.RoleCustomer)
}

func (h *AdminHandler) listPending(c echo.Context, role entity.Role) error {
	users, err := h.userUC.ListPending(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// ApproveAgent activates a pending agent registration.
func (h *AdminHandler) ApproveAgent(c echo.Context) error {
	return h.approveUser(c, entity.RoleAgent)
}

// ApproveCustomer activates a pending customer registration.
func (h *AdminHandler) ApproveCustomer(c echo.Context) error {
	return h.approveUser(c, entity.RoleCustomer)
}

func (h *AdminHandler) approveUser(c echo.Context, role entity.Role) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	user, err := h.userUC.ApproveUser(c.Request().Context(), userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Registration approved")
}

// CreateCard saves a masked card reference for a customer.
func (h *AdminHandler) CreateCard(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	var req CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	card, err := h.cardUC.Create(c.Request().Context(), usecase.CreateCardInput{
		CustomerID:       customerID,
		CardNumberSuffix: req.CardNumberSuffix,
		BankName:         req.BankName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCardView(card), "Card saved")
}

// ListCards returns the cards saved for a customer.
func (h *AdminHandler) ListCards(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	cards, err := h.cardUC.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCardViews(cards), "")
}

// ListPendingTransactions returns transaction requests awaiting review.
func (h *AdminHandler) ListPendingTransactions(c echo.Context) error {
	transactions, err := h.transactionUC.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionViews(transactions), "")
}

// ApproveTransaction settles a pending transaction.
func (h *AdminHandler) ApproveTransaction(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transaction ID")
	}

	transaction, err := h.transactionUC.Approve(c.Request().Context(), transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionView(transaction), "Transaction approved")
}

// RejectTransaction declines a pending transaction.
func (h *AdminHandler) RejectTransaction(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transaction ID")
	}

	transaction, err := h.transactionUC.Reject(c.Request().Context(), transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionView(transaction), "Transaction rejected")
}
