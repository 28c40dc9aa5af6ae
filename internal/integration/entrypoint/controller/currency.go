// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/usecase/currency"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// CurrencyController handles per-book currency registry endpoints.
type CurrencyController struct {
	addUseCase    *currency.AddCurrencyUseCase
	updateUseCase *currency.UpdateCurrencyUseCase
	deleteUseCase *currency.DeleteCurrencyUseCase
}

// NewCurrencyController creates a new currency controller instance.
func NewCurrencyController(
	addUseCase *currency.AddCurrencyUseCase,
	updateUseCase *currency.UpdateCurrencyUseCase,
	deleteUseCase *currency.DeleteCurrencyUseCase,
) *CurrencyController {
	return &CurrencyController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Add handles POST /books/:bookId/currencies requests.
func (c *CurrencyController) Add(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.AddCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rate: must be a decimal string",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), currency.AddCurrencyInput{
		BookID:      bookID,
		RequesterID: userID,
		Code:        req.Code,
		Name:        req.Name,
		Symbol:      req.Symbol,
		Rate:        rate,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBookResponse(output.Book))
}

// Update handles PATCH /books/:bookId/currencies/:code requests.
func (c *CurrencyController) Update(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rate: must be a decimal string",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), currency.UpdateCurrencyInput{
		BookID:      bookID,
		RequesterID: userID,
		Code:        strings.ToUpper(ctx.Param("code")),
		Rate:        rate,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// Delete handles DELETE /books/:bookId/currencies/:code requests.
func (c *CurrencyController) Delete(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), currency.DeleteCurrencyInput{
		BookID:      bookID,
		RequesterID: userID,
		Code:        strings.ToUpper(ctx.Param("code")),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}
