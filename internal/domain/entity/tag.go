// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a pure labelling entity inside a book, with no balance semantics.
type Tag struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	Name      string
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTag creates a new Tag entity.
func NewTag(bookID uuid.UUID, name string) *Tag {
	now := time.Now().UTC()

	return &Tag{
		ID:        uuid.New(),
		BookID:    bookID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
