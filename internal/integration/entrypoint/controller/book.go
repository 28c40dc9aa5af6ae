// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/usecase/book"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// BookController handles book CRUD, lifecycle and membership endpoints.
type BookController struct {
	createUseCase       *book.CreateBookUseCase
	listUseCase         *book.ListBooksUseCase
	getUseCase          *book.GetBookUseCase
	updateUseCase       *book.UpdateBookUseCase
	archiveUseCase      *book.ArchiveBookUseCase
	restoreUseCase      *book.RestoreBookUseCase
	deleteUseCase       *book.DeleteBookUseCase
	undeleteUseCase     *book.UndeleteBookUseCase
	transferUseCase     *book.TransferOwnershipUseCase
	inviteUseCase       *book.InviteMemberUseCase
	updateMemberUseCase *book.UpdateMemberPermissionUseCase
	removeMemberUseCase *book.RemoveMemberUseCase
}

// NewBookController creates a new book controller instance.
func NewBookController(
	createUseCase *book.CreateBookUseCase,
	listUseCase *book.ListBooksUseCase,
	getUseCase *book.GetBookUseCase,
	updateUseCase *book.UpdateBookUseCase,
	archiveUseCase *book.ArchiveBookUseCase,
	restoreUseCase *book.RestoreBookUseCase,
	deleteUseCase *book.DeleteBookUseCase,
	undeleteUseCase *book.UndeleteBookUseCase,
	transferUseCase *book.TransferOwnershipUseCase,
	inviteUseCase *book.InviteMemberUseCase,
	updateMemberUseCase *book.UpdateMemberPermissionUseCase,
	removeMemberUseCase *book.RemoveMemberUseCase,
) *BookController {
	return &BookController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		archiveUseCase:      archiveUseCase,
		restoreUseCase:      restoreUseCase,
		deleteUseCase:       deleteUseCase,
		undeleteUseCase:     undeleteUseCase,
		transferUseCase:     transferUseCase,
		inviteUseCase:       inviteUseCase,
		updateMemberUseCase: updateMemberUseCase,
		removeMemberUseCase: removeMemberUseCase,
	}
}

// Create handles POST /books requests.
func (c *BookController) Create(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), book.CreateBookInput{
		Name:    req.Name,
		OwnerID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBookResponse(output.Book))
}

// List handles GET /books requests.
func (c *BookController) List(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), book.ListBooksInput{
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	books := make([]dto.BookResponse, 0, len(output.Books))
	for _, b := range output.Books {
		books = append(books, dto.ToBookResponse(b))
	}

	ctx.JSON(http.StatusOK, dto.BookListResponse{Books: books})
}

// Get handles GET /books/:bookId requests.
func (c *BookController) Get(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), book.GetBookInput{
		BookID:      bookID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// Update handles PATCH /books/:bookId requests.
func (c *BookController) Update(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), book.UpdateBookInput{
		BookID:      bookID,
		RequesterID: userID,
		Name:        req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// Archive handles POST /books/:bookId/archive requests.
func (c *BookController) Archive(ctx *gin.Context) {
	c.lifecycle(ctx, func(bookID, userID uuid.UUID) (*entity.Book, error) {
		output, err := c.archiveUseCase.Execute(ctx.Request.Context(), book.ArchiveBookInput{
			BookID:      bookID,
			RequesterID: userID,
		})
		if err != nil {
			return nil, err
		}
		return output.Book, nil
	})
}

// Restore handles POST /books/:bookId/restore requests.
func (c *BookController) Restore(ctx *gin.Context) {
	c.lifecycle(ctx, func(bookID, userID uuid.UUID) (*entity.Book, error) {
		output, err := c.restoreUseCase.Execute(ctx.Request.Context(), book.RestoreBookInput{
			BookID:      bookID,
			RequesterID: userID,
		})
		if err != nil {
			return nil, err
		}
		return output.Book, nil
	})
}

// Delete handles DELETE /books/:bookId requests.
func (c *BookController) Delete(ctx *gin.Context) {
	c.lifecycle(ctx, func(bookID, userID uuid.UUID) (*entity.Book, error) {
		output, err := c.deleteUseCase.Execute(ctx.Request.Context(), book.DeleteBookInput{
			BookID:      bookID,
			RequesterID: userID,
		})
		if err != nil {
			return nil, err
		}
		return output.Book, nil
	})
}

// Undelete handles POST /books/:bookId/undelete requests.
func (c *BookController) Undelete(ctx *gin.Context) {
	c.lifecycle(ctx, func(bookID, userID uuid.UUID) (*entity.Book, error) {
		output, err := c.undeleteUseCase.Execute(ctx.Request.Context(), book.UndeleteBookInput{
			BookID:      bookID,
			RequesterID: userID,
		})
		if err != nil {
			return nil, err
		}
		return output.Book, nil
	})
}

// lifecycle runs a state transition keyed by path and principal and writes
// the resulting book.
func (c *BookController) lifecycle(ctx *gin.Context, fn func(bookID, userID uuid.UUID) (*entity.Book, error)) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	result, err := fn(bookID, userID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(result))
}

// Transfer handles POST /books/:bookId/transfer requests.
func (c *BookController) Transfer(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.TransferOwnershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	newOwnerID, err := uuid.Parse(req.NewOwnerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid new_owner_id",
		})
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), book.TransferOwnershipInput{
		BookID:     bookID,
		NewOwnerID: newOwnerID,
		ActorID:    userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// InviteMember handles POST /books/:bookId/members requests.
func (c *BookController) InviteMember(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user_id",
		})
		return
	}

	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), book.InviteMemberInput{
		BookID:      bookID,
		RequesterID: userID,
		UserID:      memberID,
		Role:        entity.Role(req.Role),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBookResponse(output.Book))
}

// UpdateMember handles PATCH /books/:bookId/members/:userId requests.
func (c *BookController) UpdateMember(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	memberID, ok := uuidParam(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateMemberUseCase.Execute(ctx.Request.Context(), book.UpdateMemberPermissionInput{
		BookID:      bookID,
		RequesterID: userID,
		UserID:      memberID,
		NewRole:     entity.Role(req.Role),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// RemoveMember handles DELETE /books/:bookId/members/:userId requests.
func (c *BookController) RemoveMember(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	memberID, ok := uuidParam(ctx, "userId")
	if !ok {
		return
	}

	output, err := c.removeMemberUseCase.Execute(ctx.Request.Context(), book.RemoveMemberInput{
		BookID:      bookID,
		RequesterID: userID,
		UserID:      memberID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}
