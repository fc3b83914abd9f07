package handler

import (
	"log/slog"
	"net/http"

	custommiddleware "wattpay/internal/delivery/http/middleware"
	"wattpay/internal/delivery/http/response"
	"wattpay/internal/domain/entity"
	"wattpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BillHandler holds dependencies for bill inventory handlers.
type BillHandler struct {
	uc     usecase.BillUsecase
	logger *slog.Logger
}

// NewBillHandler is the constructor for BillHandler, injected by Fx.
func NewBillHandler(uc usecase.BillUsecase, logger *slog.Logger) *BillHandler {
	return &BillHandler{
		uc:     uc,
		logger: logger,
	}
}

// ImportBillRequest is the payload for adding a bill to the warehouse.
type ImportBillRequest struct {
	CustomerCode string  `json:"customer_code" validate:"required"`
	TotalAmount  float64 `json:"total_amount" validate:"required,gt=0"`
}

// Import handles the bill import request. The importer identity comes from
// the access token, never from the payload.
func (h *BillHandler) Import(c echo.Context) error {
	importerID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	var req ImportBillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bill input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	bill, err := h.uc.Import(c.Request().Context(), usecase.ImportBillInput{
		CustomerCode: req.CustomerCode,
		TotalAmount:  req.TotalAmount,
		ImporterID:   importerID,
		ImporterRole: role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBillView(bill), "Bill imported")
}

// Warehouse returns all bills currently in stock.
func (h *BillHandler) Warehouse(c echo.Context) error {
	bills, err := h.uc.ListInStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBillViews(bills), "")
}

// Export sells an in-stock bill to the buyer named in the query.
func (h *BillHandler) Export(c echo.Context) error {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bill ID")
	}

	buyerID, err := uuid.Parse(c.QueryParam("buyer_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing buyer_id")
	}

	bill, err := h.uc.Export(c.Request().Context(), billID, buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBillView(bill), "Bill exported")
}

// callerIdentity pulls the authenticated user's ID and role set by the auth
// middleware.
func callerIdentity(c echo.Context) (uuid.UUID, entity.Role, bool) {
	userID, ok := c.Get(custommiddleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}

	role, ok := c.Get(custommiddleware.ContextKeyRole).(entity.Role)
	if !ok {
		return uuid.Nil, "", false
	}

	return userID, role, true
}
