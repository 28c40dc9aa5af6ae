// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// PersonModel represents the persons table in the database.
type PersonModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PersonModel.
func (PersonModel) TableName() string {
	return "persons"
}

// ToEntity converts a PersonModel to a domain Person entity.
func (m *PersonModel) ToEntity() *entity.Person {
	return &entity.Person{
		ID:        m.ID,
		BookID:    m.BookID,
		Name:      m.Name,
		IsDeleted: m.IsDeleted,
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PersonFromEntity creates a PersonModel from a domain Person entity.
func PersonFromEntity(person *entity.Person) *PersonModel {
	return &PersonModel{
		ID:        person.ID,
		BookID:    person.BookID,
		Name:      person.Name,
		IsDeleted: person.IsDeleted,
		DeletedAt: person.DeletedAt,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
}
