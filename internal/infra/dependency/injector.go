// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/moneybook/backend/config"
	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/application/usecase/account"
	"github.com/moneybook/backend/internal/application/usecase/book"
	"github.com/moneybook/backend/internal/application/usecase/category"
	"github.com/moneybook/backend/internal/application/usecase/currency"
	"github.com/moneybook/backend/internal/application/usecase/person"
	purgeusecase "github.com/moneybook/backend/internal/application/usecase/purge"
	"github.com/moneybook/backend/internal/application/usecase/stats"
	"github.com/moneybook/backend/internal/application/usecase/tag"
	"github.com/moneybook/backend/internal/application/usecase/transaction"
	"github.com/moneybook/backend/internal/application/usecase/user"
	"github.com/moneybook/backend/internal/infra/server/router"
	"github.com/moneybook/backend/internal/integration/adapters"
	"github.com/moneybook/backend/internal/integration/entrypoint/controller"
	"github.com/moneybook/backend/internal/integration/entrypoint/middleware"
	"github.com/moneybook/backend/internal/integration/events"
	"github.com/moneybook/backend/internal/integration/persistence"
	"github.com/moneybook/backend/internal/integration/purge"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	PurgeWorker *purge.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil, in which case lifecycle events are dropped.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	bookRepo := persistence.NewBookRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	tagRepo := persistence.NewTagRepository(db)
	personRepo := persistence.NewPersonRepository(db)
	txManager := persistence.NewTxManager(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	clock := adapters.NewSystemClock()

	var eventSink adapter.EventSink
	if redisClient != nil {
		eventSink = events.NewRedisSink(redisClient)
	} else {
		eventSink = events.NewNopSink()
	}

	// Book use cases
	createBookUseCase := book.NewCreateBookUseCase(bookRepo, eventSink)
	listBooksUseCase := book.NewListBooksUseCase(bookRepo)
	getBookUseCase := book.NewGetBookUseCase(bookRepo)
	updateBookUseCase := book.NewUpdateBookUseCase(bookRepo, clock)
	archiveBookUseCase := book.NewArchiveBookUseCase(bookRepo, clock, eventSink)
	restoreBookUseCase := book.NewRestoreBookUseCase(bookRepo, clock, eventSink)
	deleteBookUseCase := book.NewDeleteBookUseCase(bookRepo, clock, eventSink)
	undeleteBookUseCase := book.NewUndeleteBookUseCase(bookRepo, clock, eventSink)
	transferOwnershipUseCase := book.NewTransferOwnershipUseCase(bookRepo, userRepo, txManager, clock, eventSink)
	inviteMemberUseCase := book.NewInviteMemberUseCase(bookRepo, userRepo, clock)
	updateMemberUseCase := book.NewUpdateMemberPermissionUseCase(bookRepo, clock)
	removeMemberUseCase := book.NewRemoveMemberUseCase(bookRepo, clock)

	// Currency use cases
	addCurrencyUseCase := currency.NewAddCurrencyUseCase(bookRepo, clock)
	updateCurrencyUseCase := currency.NewUpdateCurrencyUseCase(bookRepo, clock)
	deleteCurrencyUseCase := currency.NewDeleteCurrencyUseCase(bookRepo, accountRepo, clock)

	// Account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(bookRepo, accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(bookRepo, accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(bookRepo, accountRepo, clock)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(bookRepo, accountRepo, clock)
	getBalanceUseCase := account.NewGetBalanceUseCase(bookRepo, accountRepo, transactionRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(bookRepo, accountRepo, categoryRepo, transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(bookRepo, transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(bookRepo, accountRepo, categoryRepo, transactionRepo, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(bookRepo, transactionRepo, clock)

	// Taxonomy use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(bookRepo, categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(bookRepo, categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(bookRepo, categoryRepo, clock)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(bookRepo, categoryRepo, clock)

	createTagUseCase := tag.NewCreateTagUseCase(bookRepo, tagRepo)
	listTagsUseCase := tag.NewListTagsUseCase(bookRepo, tagRepo)
	updateTagUseCase := tag.NewUpdateTagUseCase(bookRepo, tagRepo, clock)
	deleteTagUseCase := tag.NewDeleteTagUseCase(bookRepo, tagRepo, clock)

	createPersonUseCase := person.NewCreatePersonUseCase(bookRepo, personRepo)
	listPersonsUseCase := person.NewListPersonsUseCase(bookRepo, personRepo)
	updatePersonUseCase := person.NewUpdatePersonUseCase(bookRepo, personRepo, clock)
	deletePersonUseCase := person.NewDeletePersonUseCase(bookRepo, personRepo, clock)

	// Stats use cases
	bookStatsUseCase := stats.NewBookStatsUseCase(bookRepo, accountRepo, categoryRepo, transactionRepo)
	monthlyStatsUseCase := stats.NewMonthlyStatsUseCase(bookRepo, accountRepo, categoryRepo, transactionRepo)

	// User use cases
	registerUseCase := user.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := user.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo, bookRepo, transferOwnershipUseCase, txManager, clock, eventSink)
	restoreUserUseCase := user.NewRestoreUserUseCase(userRepo, clock, eventSink)

	// Purge sweep and worker
	sweepUseCase := purgeusecase.NewSweepUseCase(
		bookRepo,
		userRepo,
		accountRepo,
		transactionRepo,
		categoryRepo,
		tagRepo,
		personRepo,
		txManager,
		clock,
		eventSink,
	)
	purgeWorker := purge.NewWorker(sweepUseCase, purge.WorkerConfig{
		Retention: cfg.Retention.Window,
		Interval:  cfg.Retention.SweepInterval,
	})

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	userController := controller.NewUserController(registerUseCase, loginUseCase, deleteUserUseCase, restoreUserUseCase)
	bookController := controller.NewBookController(
		createBookUseCase,
		listBooksUseCase,
		getBookUseCase,
		updateBookUseCase,
		archiveBookUseCase,
		restoreBookUseCase,
		deleteBookUseCase,
		undeleteBookUseCase,
		transferOwnershipUseCase,
		inviteMemberUseCase,
		updateMemberUseCase,
		removeMemberUseCase,
	)
	currencyController := controller.NewCurrencyController(addCurrencyUseCase, updateCurrencyUseCase, deleteCurrencyUseCase)
	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		getBalanceUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	tagController := controller.NewTagController(createTagUseCase, listTagsUseCase, updateTagUseCase, deleteTagUseCase)
	personController := controller.NewPersonController(createPersonUseCase, listPersonsUseCase, updatePersonUseCase, deletePersonUseCase)
	statsController := controller.NewStatsController(bookStatsUseCase, monthlyStatsUseCase)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		userController,
		bookController,
		currencyController,
		accountController,
		transactionController,
		categoryController,
		tagController,
		personController,
		statsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		PurgeWorker: purgeWorker,
	}
}
