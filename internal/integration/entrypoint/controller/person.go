// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneybook/backend/internal/application/usecase/person"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// PersonController handles person endpoints.
type PersonController struct {
	createUseCase *person.CreatePersonUseCase
	listUseCase   *person.ListPersonsUseCase
	updateUseCase *person.UpdatePersonUseCase
	deleteUseCase *person.DeletePersonUseCase
}

// NewPersonController creates a new person controller instance.
func NewPersonController(
	createUseCase *person.CreatePersonUseCase,
	listUseCase *person.ListPersonsUseCase,
	updateUseCase *person.UpdatePersonUseCase,
	deleteUseCase *person.DeletePersonUseCase,
) *PersonController {
	return &PersonController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /books/:bookId/persons requests.
func (c *PersonController) Create(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	var req dto.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), person.CreatePersonInput{
		BookID:      bookID,
		RequesterID: userID,
		Name:        req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPersonResponse(output.Person))
}

// List handles GET /books/:bookId/persons requests.
func (c *PersonController) List(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), person.ListPersonsInput{
		BookID:      bookID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	persons := make([]dto.PersonResponse, 0, len(output.Persons))
	for _, p := range output.Persons {
		persons = append(persons, dto.ToPersonResponse(p))
	}

	ctx.JSON(http.StatusOK, dto.PersonListResponse{Persons: persons})
}

// Update handles PATCH /books/:bookId/persons/:personId requests.
func (c *PersonController) Update(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	personID, ok := uuidParam(ctx, "personId")
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), person.UpdatePersonInput{
		BookID:      bookID,
		PersonID:    personID,
		RequesterID: userID,
		Name:        req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonResponse(output.Person))
}

// Delete handles DELETE /books/:bookId/persons/:personId requests.
func (c *PersonController) Delete(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	personID, ok := uuidParam(ctx, "personId")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), person.DeletePersonInput{
		BookID:      bookID,
		PersonID:    personID,
		RequesterID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Person deleted"})
}
