// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/application/usecase/transaction"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// dateLayout is the wire format for transaction dates and date filters.
const dateLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// transactionFields is the parsed, validated body shared by create and update.
type transactionFields struct {
	accountID   uuid.UUID
	categoryID  uuid.UUID
	amount      decimal.Decimal
	txnType     entity.TransactionType
	date        time.Time
	description string
	personIDs   []uuid.UUID
	tagIDs      []uuid.UUID
}

// parseTransactionBody validates the request fields. On failure it writes a
// 400 response and reports false.
func parseTransactionBody(ctx *gin.Context, req dto.CreateTransactionRequest) (transactionFields, bool) {
	var fields transactionFields

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account_id"})
		return fields, false
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category_id"})
		return fields, false
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid amount: must be a decimal string"})
		return fields, false
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date: expected YYYY-MM-DD"})
		return fields, false
	}

	personIDs, ok := parseUUIDList(ctx, "person_ids", req.PersonIDs)
	if !ok {
		return fields, false
	}

	tagIDs, ok := parseUUIDList(ctx, "tag_ids", req.TagIDs)
	if !ok {
		return fields, false
	}

	fields = transactionFields{
		accountID:   accountID,
		categoryID:  categoryID,
		amount:      amount,
		txnType:     entity.TransactionType(req.Type),
		date:        date,
		description: req.Description,
		personIDs:   personIDs,
		tagIDs:      tagIDs,
	}
	return fields, true
}

func parseUUIDList(ctx *gin.Context, field string, raw []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + field})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// Create handles POST /books/:bookId/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	fields, ok := parseTransactionBody(ctx, req)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		BookID:      bookID,
		RequesterID: userID,
		AccountID:   fields.accountID,
		CategoryID:  fields.categoryID,
		Amount:      fields.amount,
		Type:        fields.txnType,
		Date:        fields.date,
		Description: fields.description,
		PersonIDs:   fields.personIDs,
		TagIDs:      fields.tagIDs,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /books/:bookId/transactions requests. Filters are passed
// as query parameters: accountId, categoryId, type, startDate, endDate.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	filter := adapter.TransactionFilter{BookID: bookID}

	if raw := ctx.Query("accountId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.AccountID = &id
		}
	}
	if raw := ctx.Query("categoryId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := ctx.Query("type"); raw != "" {
		txnType := entity.TransactionType(raw)
		filter.Type = &txnType
	}
	if raw := ctx.Query("startDate"); raw != "" {
		if date, err := time.Parse(dateLayout, raw); err == nil {
			filter.StartDate = &date
		}
	}
	if raw := ctx.Query("endDate"); raw != "" {
		if date, err := time.Parse(dateLayout, raw); err == nil {
			filter.EndDate = &date
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		BookID:      bookID,
		RequesterID: userID,
		Filter:      filter,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	transactions := make([]dto.TransactionResponse, 0, len(output.Transactions))
	for _, t := range output.Transactions {
		transactions = append(transactions, dto.ToTransactionResponse(t))
	}

	ctx.JSON(http.StatusOK, dto.TransactionListResponse{Transactions: transactions})
}

// Update handles PATCH /books/:bookId/transactions/:transactionId requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	transactionID, ok := uuidParam(ctx, "transactionId")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	fields, ok := parseTransactionBody(ctx, dto.CreateTransactionRequest(req))
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		BookID:        bookID,
		TransactionID: transactionID,
		RequesterID:   userID,
		AccountID:     fields.accountID,
		CategoryID:    fields.categoryID,
		Amount:        fields.amount,
		Type:          fields.txnType,
		Date:          fields.date,
		Description:   fields.description,
		PersonIDs:     fields.personIDs,
		TagIDs:        fields.tagIDs,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /books/:bookId/transactions/:transactionId requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	transactionID, ok := uuidParam(ctx, "transactionId")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		BookID:        bookID,
		TransactionID: transactionID,
		RequesterID:   userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}
