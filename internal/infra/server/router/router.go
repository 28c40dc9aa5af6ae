// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/moneybook/backend/internal/integration/entrypoint/controller"
	"github.com/moneybook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	userController        *controller.UserController
	bookController        *controller.BookController
	currencyController    *controller.CurrencyController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	tagController         *controller.TagController
	personController      *controller.PersonController
	statsController       *controller.StatsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	bookController *controller.BookController,
	currencyController *controller.CurrencyController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	tagController *controller.TagController,
	personController *controller.PersonController,
	statsController *controller.StatsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		userController:        userController,
		bookController:        bookController,
		currencyController:    currencyController,
		accountController:     accountController,
		transactionController: transactionController,
		categoryController:    categoryController,
		tagController:         tagController,
		personController:      personController,
		statsController:       statsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.userController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.userController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.userController.Login)
			}
		}

		// User lifecycle routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.Delete)
				users.POST("/:userId/restore", r.userController.Restore)
			}
		}

		// Book routes and everything nested under a book (require authentication)
		if r.bookController != nil && r.authMiddleware != nil {
			books := v1.Group("/books")
			books.Use(r.authMiddleware.Authenticate())
			{
				books.POST("", r.bookController.Create)
				books.GET("", r.bookController.List)
				books.GET("/:bookId", r.bookController.Get)
				books.PATCH("/:bookId", r.bookController.Update)
				books.DELETE("/:bookId", r.bookController.Delete)
				books.POST("/:bookId/archive", r.bookController.Archive)
				books.POST("/:bookId/restore", r.bookController.Restore)
				books.POST("/:bookId/undelete", r.bookController.Undelete)
				books.POST("/:bookId/transfer", r.bookController.Transfer)

				books.POST("/:bookId/members", r.bookController.InviteMember)
				books.PATCH("/:bookId/members/:userId", r.bookController.UpdateMember)
				books.DELETE("/:bookId/members/:userId", r.bookController.RemoveMember)

				if r.currencyController != nil {
					books.POST("/:bookId/currencies", r.currencyController.Add)
					books.PATCH("/:bookId/currencies/:code", r.currencyController.Update)
					books.DELETE("/:bookId/currencies/:code", r.currencyController.Delete)
				}

				if r.accountController != nil {
					books.POST("/:bookId/accounts", r.accountController.Create)
					books.GET("/:bookId/accounts", r.accountController.List)
					books.PATCH("/:bookId/accounts/:accountId", r.accountController.Update)
					books.DELETE("/:bookId/accounts/:accountId", r.accountController.Delete)
					books.GET("/:bookId/accounts/:accountId/balance", r.accountController.Balance)
				}

				if r.transactionController != nil {
					books.POST("/:bookId/transactions", r.transactionController.Create)
					books.GET("/:bookId/transactions", r.transactionController.List)
					books.PATCH("/:bookId/transactions/:transactionId", r.transactionController.Update)
					books.DELETE("/:bookId/transactions/:transactionId", r.transactionController.Delete)
				}

				if r.categoryController != nil {
					books.POST("/:bookId/categories", r.categoryController.Create)
					books.GET("/:bookId/categories", r.categoryController.List)
					books.PATCH("/:bookId/categories/:categoryId", r.categoryController.Update)
					books.DELETE("/:bookId/categories/:categoryId", r.categoryController.Delete)
				}

				if r.tagController != nil {
					books.POST("/:bookId/tags", r.tagController.Create)
					books.GET("/:bookId/tags", r.tagController.List)
					books.PATCH("/:bookId/tags/:tagId", r.tagController.Update)
					books.DELETE("/:bookId/tags/:tagId", r.tagController.Delete)
				}

				if r.personController != nil {
					books.POST("/:bookId/persons", r.personController.Create)
					books.GET("/:bookId/persons", r.personController.List)
					books.PATCH("/:bookId/persons/:personId", r.personController.Update)
					books.DELETE("/:bookId/persons/:personId", r.personController.Delete)
				}

				if r.statsController != nil {
					books.GET("/:bookId/stats", r.statsController.BookStats)
					books.GET("/:bookId/stats/monthly", r.statsController.MonthlyStats)
				}
			}
		}
	}
}
