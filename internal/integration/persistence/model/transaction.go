// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Date        time.Time       `gorm:"type:timestamp;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	PersonIDs   pq.StringArray  `gorm:"type:text"`
	TagIDs      pq.StringArray  `gorm:"type:text"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null"`
	IsDeleted   bool            `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time      `gorm:"type:timestamp"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		BookID:      m.BookID,
		AccountID:   m.AccountID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Date:        m.Date,
		Description: m.Description,
		PersonIDs:   parseUUIDs(m.PersonIDs),
		TagIDs:      parseUUIDs(m.TagIDs),
		CreatedBy:   m.CreatedBy,
		IsDeleted:   m.IsDeleted,
		DeletedAt:   m.DeletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		BookID:      transaction.BookID,
		AccountID:   transaction.AccountID,
		CategoryID:  transaction.CategoryID,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Date:        transaction.Date,
		Description: transaction.Description,
		PersonIDs:   uuidStrings(transaction.PersonIDs),
		TagIDs:      uuidStrings(transaction.TagIDs),
		CreatedBy:   transaction.CreatedBy,
		IsDeleted:   transaction.IsDeleted,
		DeletedAt:   transaction.DeletedAt,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
