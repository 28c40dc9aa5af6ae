// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Person is a related person referenced by transactions, with no balance
// semantics of its own.
type Person struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	Name      string
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPerson creates a new Person entity.
func NewPerson(bookID uuid.UUID, name string) *Person {
	now := time.Now().UTC()

	return &Person{
		ID:        uuid.New(),
		BookID:    bookID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
