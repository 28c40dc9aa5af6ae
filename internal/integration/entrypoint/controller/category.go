// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneybook/backend/internal/application/usecase/category"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase *category.CreateCategoryUseCase
	listUseCase   *category.ListCategoriesUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /books/:bookId/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		BookID:      bookID,
		RequesterID: userID,
		Name:        req.Name,
		Type:        entity.CategoryType(req.Type),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// List handles GET /books/:bookId/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		BookID:      bookID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	categories := make([]dto.CategoryResponse, 0, len(output.Categories))
	for _, cat := range output.Categories {
		categories = append(categories, dto.ToCategoryResponse(cat))
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// Update handles PATCH /books/:bookId/categories/:categoryId requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	categoryID, ok := uuidParam(ctx, "categoryId")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		BookID:      bookID,
		CategoryID:  categoryID,
		RequesterID: userID,
		Name:        req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /books/:bookId/categories/:categoryId requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	categoryID, ok := uuidParam(ctx, "categoryId")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		BookID:      bookID,
		CategoryID:  categoryID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted"})
}
