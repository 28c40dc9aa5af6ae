// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneybook/backend/internal/application/usecase/tag"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// TagController handles tag endpoints.
type TagController struct {
	createUseCase *tag.CreateTagUseCase
	listUseCase   *tag.ListTagsUseCase
	updateUseCase *tag.UpdateTagUseCase
	deleteUseCase *tag.DeleteTagUseCase
}

// NewTagController creates a new tag controller instance.
func NewTagController(
	createUseCase *tag.CreateTagUseCase,
	listUseCase *tag.ListTagsUseCase,
	updateUseCase *tag.UpdateTagUseCase,
	deleteUseCase *tag.DeleteTagUseCase,
) *TagController {
	return &TagController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /books/:bookId/tags requests.
func (c *TagController) Create(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), tag.CreateTagInput{
		BookID:      bookID,
		RequesterID: userID,
		Name:        req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTagResponse(output.Tag))
}

// List handles GET /books/:bookId/tags requests.
func (c *TagController) List(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), tag.ListTagsInput{
		BookID:      bookID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	tags := make([]dto.TagResponse, 0, len(output.Tags))
	for _, t := range output.Tags {
		tags = append(tags, dto.ToTagResponse(t))
	}

	ctx.JSON(http.StatusOK, dto.TagListResponse{Tags: tags})
}

// Update handles PATCH /books/:bookId/tags/:tagId requests.
func (c *TagController) Update(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	tagID, ok := uuidParam(ctx, "tagId")
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), tag.UpdateTagInput{
		BookID:      bookID,
		TagID:       tagID,
		RequesterID: userID,
		Name:        req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagResponse(output.Tag))
}

// Delete handles DELETE /books/:bookId/tags/:tagId requests.
func (c *TagController) Delete(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	tagID, ok := uuidParam(ctx, "tagId")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), tag.DeleteTagInput{
		BookID:      bookID,
		TagID:       tagID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Tag deleted"})
}
