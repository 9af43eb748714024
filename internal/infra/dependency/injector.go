// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/config"
	"github.com/home-ledger/backend/internal/application/usecase/account"
	"github.com/home-ledger/backend/internal/application/usecase/auth"
	"github.com/home-ledger/backend/internal/application/usecase/budget"
	"github.com/home-ledger/backend/internal/application/usecase/card"
	"github.com/home-ledger/backend/internal/application/usecase/expense"
	"github.com/home-ledger/backend/internal/application/usecase/household"
	"github.com/home-ledger/backend/internal/application/usecase/income"
	"github.com/home-ledger/backend/internal/application/usecase/invoice"
	"github.com/home-ledger/backend/internal/application/usecase/report"
	"github.com/home-ledger/backend/internal/infra/server/router"
	"github.com/home-ledger/backend/internal/integration/adapters"
	"github.com/home-ledger/backend/internal/integration/email"
	"github.com/home-ledger/backend/internal/integration/email/templates"
	"github.com/home-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/home-ledger/backend/internal/integration/persistence"
	"github.com/home-ledger/backend/internal/integration/session"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	cardRepo := persistence.NewCardRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	overrideRepo := persistence.NewInvoiceOverrideRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	householdRepo := persistence.NewHouseholdRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	sessionStore := session.NewStore(redisClient, cfg.Session.IdleTimeout)
	emailService := email.NewService(emailQueueRepo)

	// Create email delivery pipeline
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create template renderer: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, sessionStore)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, sessionStore)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService, sessionStore)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService, sessionStore)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService, sessionStore)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, cardRepo, expenseRepo, incomeRepo)

	// Create card use cases
	createCardUseCase := card.NewCreateCardUseCase(cardRepo, accountRepo)
	listCardsUseCase := card.NewListCardsUseCase(cardRepo, expenseRepo)
	updateCardUseCase := card.NewUpdateCardUseCase(cardRepo, accountRepo)
	deleteCardUseCase := card.NewDeleteCardUseCase(cardRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, cardRepo, accountRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, cardRepo, accountRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, accountRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, accountRepo)
	markIncomeReceivedUseCase := income.NewMarkIncomeReceivedUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, accountRepo)

	// Create invoice use cases
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(expenseRepo, cardRepo, overrideRepo)
	getInvoiceUseCase := invoice.NewGetInvoiceUseCase(expenseRepo, cardRepo, overrideRepo)
	payInvoiceUseCase := invoice.NewPayInvoiceUseCase(expenseRepo, cardRepo, accountRepo, overrideRepo)

	// Create budget use cases
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo)
	getBudgetSummaryUseCase := budget.NewGetBudgetSummaryUseCase(budgetRepo, expenseRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create report use cases
	getMonthlySummaryUseCase := report.NewGetMonthlySummaryUseCase(expenseRepo, incomeRepo, reportRepo)
	getCategoryBreakdownUseCase := report.NewGetCategoryBreakdownUseCase(expenseRepo)
	getCalendarUseCase := report.NewGetCalendarUseCase(expenseRepo, incomeRepo)

	// Create household use cases
	createHouseholdUseCase := household.NewCreateHouseholdUseCase(householdRepo)
	listHouseholdsUseCase := household.NewListHouseholdsUseCase(householdRepo)
	inviteMemberUseCase := household.NewInviteMemberUseCase(householdRepo, userRepo, emailService)
	acceptInviteUseCase := household.NewAcceptInviteUseCase(householdRepo, userRepo)
	listMembersUseCase := household.NewListMembersUseCase(householdRepo)
	removeMemberUseCase := household.NewRemoveMemberUseCase(householdRepo)
	leaveHouseholdUseCase := household.NewLeaveHouseholdUseCase(householdRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
		cfg.Email.AppBaseURL,
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	cardController := controller.NewCardController(
		createCardUseCase,
		listCardsUseCase,
		updateCardUseCase,
		deleteCardUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomesUseCase,
		updateIncomeUseCase,
		markIncomeReceivedUseCase,
		deleteIncomeUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		listInvoicesUseCase,
		getInvoiceUseCase,
		payInvoiceUseCase,
	)

	budgetController := controller.NewBudgetController(
		upsertBudgetUseCase,
		getBudgetSummaryUseCase,
		deleteBudgetUseCase,
	)

	reportController := controller.NewReportController(
		getMonthlySummaryUseCase,
		getCategoryBreakdownUseCase,
		getCalendarUseCase,
	)

	householdController := controller.NewHouseholdController(
		createHouseholdUseCase,
		listHouseholdsUseCase,
		inviteMemberUseCase,
		acceptInviteUseCase,
		listMembersUseCase,
		removeMemberUseCase,
		leaveHouseholdUseCase,
		cfg.Email.AppBaseURL,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, sessionStore)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		cardController,
		expenseController,
		incomeController,
		invoiceController,
		budgetController,
		reportController,
		householdController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
