// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Type      string     `gorm:"type:varchar(10);not null"`
	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		BookID:    m.BookID,
		Name:      m.Name,
		Type:      entity.CategoryType(m.Type),
		IsDeleted: m.IsDeleted,
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		BookID:    category.BookID,
		Name:      category.Name,
		Type:      string(category.Type),
		IsDeleted: category.IsDeleted,
		DeletedAt: category.DeletedAt,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
