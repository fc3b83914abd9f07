package handler

import (
	"log/slog"
	"net/http"

	"wattpay/internal/delivery/http/response"
	"wattpay/internal/domain/entity"
	"wattpay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler holds dependencies for transaction request handlers.
type TransactionHandler struct {
	uc     usecase.TransactionUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTransactionRequest is the payload for requesting a wallet movement.
type CreateTransactionRequest struct {
	Type   string  `json:"type" validate:"required,oneof=agent_deposit customer_withdraw"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// Request records a pending transaction for the authenticated caller.
func (h *TransactionHandler) Request(c echo.Context) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	transaction, err := h.uc.Create(c.Request().Context(), usecase.CreateTransactionInput{
		UserID: userID,
		Role:   role,
		Type:   entity.TransactionType(req.Type),
		Amount: req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTransactionView(transaction), "Transaction requested")
}
