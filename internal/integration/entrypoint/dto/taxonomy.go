// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneybook/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Type string `json:"type" binding:"required,oneof=income expense loan"`
}

// UpdateCategoryRequest represents the request body for category rename.
// The type is immutable after creation.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		BookID:    category.BookID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// CreateTagRequest represents the request body for tag creation.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateTagRequest represents the request body for tag rename.
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// TagResponse represents a tag in API responses.
type TagResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagListResponse represents the response for listing tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToTagResponse converts a domain Tag entity to a TagResponse DTO.
func ToTagResponse(tag *entity.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID.String(),
		BookID:    tag.BookID.String(),
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

// CreatePersonRequest represents the request body for person creation.
type CreatePersonRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdatePersonRequest represents the request body for person rename.
type UpdatePersonRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// PersonResponse represents a person in API responses.
type PersonResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonListResponse represents the response for listing persons.
type PersonListResponse struct {
	Persons []PersonResponse `json:"persons"`
}

// ToPersonResponse converts a domain Person entity to a PersonResponse DTO.
func ToPersonResponse(person *entity.Person) PersonResponse {
	return PersonResponse{
		ID:        person.ID.String(),
		BookID:    person.BookID.String(),
		Name:      person.Name,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
}
