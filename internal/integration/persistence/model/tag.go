// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
)

// TagModel represents the tags table in the database.
type TagModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the TagModel.
func (TagModel) TableName() string {
	return "tags"
}

// ToEntity converts a TagModel to a domain Tag entity.
func (m *TagModel) ToEntity() *entity.Tag {
	return &entity.Tag{
		ID:        m.ID,
		BookID:    m.BookID,
		Name:      m.Name,
		IsDeleted: m.IsDeleted,
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TagFromEntity creates a TagModel from a domain Tag entity.
func TagFromEntity(tag *entity.Tag) *TagModel {
	return &TagModel{
		ID:        tag.ID,
		BookID:    tag.BookID,
		Name:      tag.Name,
		IsDeleted: tag.IsDeleted,
		DeletedAt: tag.DeletedAt,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
