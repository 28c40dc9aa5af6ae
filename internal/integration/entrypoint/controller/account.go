// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/usecase/account"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	createUseCase  *account.CreateAccountUseCase
	listUseCase    *account.ListAccountsUseCase
	updateUseCase  *account.UpdateAccountUseCase
	deleteUseCase  *account.DeleteAccountUseCase
	balanceUseCase *account.GetBalanceUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	balanceUseCase *account.GetBalanceUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		balanceUseCase: balanceUseCase,
	}
}

// parseBalance parses an optional decimal string, defaulting to zero.
func parseBalance(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, true
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return balance, true
}

// Create handles POST /books/:bookId/accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	balance, ok := parseBalance(req.InitialBalance)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid initial_balance: must be a decimal string",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		BookID:         bookID,
		RequesterID:    userID,
		Name:           req.Name,
		Currency:       req.Currency,
		InitialBalance: balance,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /books/:bookId/accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		BookID:      bookID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	accounts := make([]dto.AccountResponse, 0, len(output.Accounts))
	for _, a := range output.Accounts {
		accounts = append(accounts, dto.ToAccountResponse(a))
	}

	ctx.JSON(http.StatusOK, dto.AccountListResponse{Accounts: accounts})
}

// Update handles PATCH /books/:bookId/accounts/:accountId requests.
func (c *AccountController) Update(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	accountID, ok := uuidParam(ctx, "accountId")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	balance, ok := parseBalance(req.InitialBalance)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid initial_balance: must be a decimal string",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), account.UpdateAccountInput{
		BookID:         bookID,
		AccountID:      accountID,
		RequesterID:    userID,
		Name:           req.Name,
		Currency:       req.Currency,
		InitialBalance: balance,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /books/:bookId/accounts/:accountId requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	accountID, ok := uuidParam(ctx, "accountId")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{
		BookID:      bookID,
		AccountID:   accountID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted"})
}

// Balance handles GET /books/:bookId/accounts/:accountId/balance requests.
func (c *AccountController) Balance(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	accountID, ok := uuidParam(ctx, "accountId")
	if !ok {
		return
	}

	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), account.GetBalanceInput{
		BookID:      bookID,
		AccountID:   accountID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID:      output.Account.ID.String(),
		Currency:       output.Account.Currency,
		CurrentBalance: output.Balance.CurrentBalance.String(),
		TotalIncome:    output.Balance.TotalIncome.String(),
		TotalExpense:   output.Balance.TotalExpense.String(),
		BalanceInBase:  output.BalanceInBase.String(),
	})
}
