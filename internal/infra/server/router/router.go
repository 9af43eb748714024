// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/home-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	accountController   *controller.AccountController
	cardController      *controller.CardController
	expenseController   *controller.ExpenseController
	incomeController    *controller.IncomeController
	invoiceController   *controller.InvoiceController
	budgetController    *controller.BudgetController
	reportController    *controller.ReportController
	householdController *controller.HouseholdController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	cardController *controller.CardController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	invoiceController *controller.InvoiceController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	householdController *controller.HouseholdController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		accountController:   accountController,
		cardController:      cardController,
		expenseController:   expenseController,
		incomeController:    incomeController,
		invoiceController:   invoiceController,
		budgetController:    budgetController,
		reportController:    reportController,
		householdController: householdController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}

			// Logout needs the session from the access token
			if r.authMiddleware != nil {
				auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		// Card routes (require authentication)
		if r.cardController != nil && r.authMiddleware != nil {
			cards := v1.Group("/cards")
			cards.Use(r.authMiddleware.Authenticate())
			{
				cards.GET("", r.cardController.List)
				cards.POST("", r.cardController.Create)
				cards.PATCH("/:id", r.cardController.Update)
				cards.DELETE("/:id", r.cardController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Income routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PATCH("/:id", r.incomeController.Update)
				incomes.POST("/:id/receive", r.incomeController.MarkReceived)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		// Invoice routes (require authentication)
		if r.invoiceController != nil && r.authMiddleware != nil {
			invoices := v1.Group("/invoices")
			invoices.Use(r.authMiddleware.Authenticate())
			{
				invoices.GET("", r.invoiceController.List)
				invoices.GET("/:cardId/:year/:month", r.invoiceController.Get)
				invoices.POST("/:cardId/:year/:month/pay", r.invoiceController.Pay)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.Summary)
				budgets.PUT("", r.budgetController.Upsert)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/monthly-summary", r.reportController.MonthlySummary)
				reports.GET("/category-breakdown", r.reportController.CategoryBreakdown)
				reports.GET("/calendar", r.reportController.Calendar)
			}
		}

		// Household routes (require authentication)
		if r.householdController != nil && r.authMiddleware != nil {
			households := v1.Group("/households")
			households.Use(r.authMiddleware.Authenticate())
			{
				households.POST("", r.householdController.Create)
				households.GET("", r.householdController.List)
				households.POST("/:id/invites", r.householdController.InviteMember)
				households.GET("/:id/members", r.householdController.ListMembers)
				households.DELETE("/:id/members/:userId", r.householdController.RemoveMember)
				households.POST("/:id/leave", r.householdController.Leave)
			}

			// Invite acceptance route (separate path)
			invites := v1.Group("/households/invites")
			invites.Use(r.authMiddleware.Authenticate())
			{
				invites.POST("/accept", r.householdController.AcceptInvite)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
