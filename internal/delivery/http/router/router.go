// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wattpay/internal/delivery/http/middleware"
	"wattpay/internal/delivery/http/router/handler"
	"wattpay/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	AdminHandler       *handler.AdminHandler
	BillHandler        *handler.BillHandler
	TransactionHandler *handler.TransactionHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	adminHandler       *handler.AdminHandler
	billHandler        *handler.BillHandler
	transactionHandler *handler.TransactionHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		adminHandler:       params.AdminHandler,
		billHandler:        params.BillHandler,
		transactionHandler: params.TransactionHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/token", r.userHandler.Login)
	}

	// Admin review surface: requires authentication and the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/staff", r.adminHandler.CreateStaff)
		adminGroup.GET("/pending/agents", r.adminHandler.ListPendingAgents)
		adminGroup.GET("/pending/customers", r.adminHandler.ListPendingCustomers)
		adminGroup.PUT("/approve/agent/:id", r.adminHandler.ApproveAgent)
		adminGroup.PUT("/approve/customer/:id", r.adminHandler.ApproveCustomer)
		adminGroup.POST("/customers/:id/cards", r.adminHandler.CreateCard)
		adminGroup.GET("/customers/:id/cards", r.adminHandler.ListCards)
		adminGroup.GET("/pending/transactions", r.adminHandler.ListPendingTransactions)
		adminGroup.PUT("/transactions/:id/approve", r.adminHandler.ApproveTransaction)
		adminGroup.PUT("/transactions/:id/reject", r.adminHandler.RejectTransaction)
	}

	// Bill inventory routes: authenticated; role policy enforced per operation
	billGroup := api.Group("/bills")
	billGroup.Use(r.authMiddleware.Authenticate)
	{
		billGroup.POST("/import", r.billHandler.Import)
		billGroup.GET("/warehouse", r.billHandler.Warehouse)
		billGroup.PUT("/:id/export", r.billHandler.Export, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Transaction request route for authenticated agents and customers
	transactionGroup := api.Group("/transactions")
	transactionGroup.Use(r.authMiddleware.Authenticate)
	{
		transactionGroup.POST("/request", r.transactionHandler.Request)
	}
}
