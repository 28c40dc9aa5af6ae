// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category. It mirrors the transaction
// types: a transaction only aggregates into a category of the same type.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeLoan    CategoryType = "loan"
)

// IsValidCategoryType reports whether t is a known category type.
func IsValidCategoryType(t CategoryType) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense || t == CategoryTypeLoan
}

// Category represents a transaction category inside a book.
type Category struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	Name      string
	Type      CategoryType
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(bookID uuid.UUID, name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		BookID:    bookID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
