// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Currency       string          `gorm:"type:varchar(8);not null;index"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsDeleted      bool            `gorm:"not null;default:false;index"`
	DeletedAt      *time.Time      `gorm:"type:timestamp"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:             m.ID,
		BookID:         m.BookID,
		Name:           m.Name,
		Currency:       m.Currency,
		InitialBalance: m.InitialBalance,
		IsDeleted:      m.IsDeleted,
		DeletedAt:      m.DeletedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:             account.ID,
		BookID:         account.BookID,
		Name:           account.Name,
		Currency:       account.Currency,
		InitialBalance: account.InitialBalance,
		IsDeleted:      account.IsDeleted,
		DeletedAt:      account.DeletedAt,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}
