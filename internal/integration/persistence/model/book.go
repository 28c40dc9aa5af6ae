// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/moneybook/backend/internal/domain/entity"
)

// BookModel represents the books table in the database. Soft-delete and
// archive state are explicit columns: every finder scopes them itself so
// includeDeleted reads stay possible.
type BookModel struct {
	ID                uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Name              string               `gorm:"type:varchar(100);not null"`
	OwnerID           uuid.UUID            `gorm:"type:uuid;not null;index"`
	// Members is serialized through pq's array codec into a text column so
	// the same LIKE-based membership lookup works on postgres and on the
	// sqlite test database.
	Members           pq.StringArray       `gorm:"type:text"`
	MemberPermissions MemberPermissionDocs `gorm:"type:jsonb"`
	Currencies        CurrencyDocs         `gorm:"type:jsonb"`
	DefaultCurrency   string               `gorm:"type:varchar(8);not null"`
	IsArchived        bool                 `gorm:"not null;default:false"`
	ArchivedAt        *time.Time           `gorm:"type:timestamp"`
	IsDeleted         bool                 `gorm:"not null;default:false;index"`
	DeletedAt         *time.Time           `gorm:"type:timestamp;index"`
	TransferHistory   TransferRecordDocs   `gorm:"type:jsonb"`
	InviteHistory     InviteRecordDocs     `gorm:"type:jsonb"`
	CreatedAt         time.Time            `gorm:"not null"`
	UpdatedAt         time.Time            `gorm:"not null"`
}

// TableName returns the table name for the BookModel.
func (BookModel) TableName() string {
	return "books"
}

// ToEntity converts a BookModel to a domain Book entity.
func (m *BookModel) ToEntity() *entity.Book {
	permissions := make([]entity.MemberPermission, len(m.MemberPermissions))
	for i, p := range m.MemberPermissions {
		permissions[i] = entity.MemberPermission{
			UserID:    p.UserID,
			Role:      entity.Role(p.Role),
			GrantedAt: p.GrantedAt,
			GrantedBy: p.GrantedBy,
		}
	}

	currencies := make([]entity.Currency, len(m.Currencies))
	for i, c := range m.Currencies {
		currencies[i] = entity.Currency{
			Code:   c.Code,
			Name:   c.Name,
			Symbol: c.Symbol,
			Rate:   c.Rate,
		}
	}

	transfers := make([]entity.TransferRecord, len(m.TransferHistory))
	for i, t := range m.TransferHistory {
		transfers[i] = entity.TransferRecord{
			FromUser: t.FromUser,
			ToUser:   t.ToUser,
			Date:     t.Date,
		}
	}

	invites := make([]entity.InviteRecord, len(m.InviteHistory))
	for i, inv := range m.InviteHistory {
		invites[i] = entity.InviteRecord{
			InvitedBy:   inv.InvitedBy,
			InvitedUser: inv.InvitedUser,
			Date:        inv.Date,
			Role:        entity.Role(inv.Role),
		}
	}

	return &entity.Book{
		ID:                m.ID,
		Name:              m.Name,
		OwnerID:           m.OwnerID,
		Members:           parseUUIDs(m.Members),
		MemberPermissions: permissions,
		Currencies:        currencies,
		DefaultCurrency:   m.DefaultCurrency,
		IsArchived:        m.IsArchived,
		ArchivedAt:        m.ArchivedAt,
		IsDeleted:         m.IsDeleted,
		DeletedAt:         m.DeletedAt,
		TransferHistory:   transfers,
		InviteHistory:     invites,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// BookFromEntity creates a BookModel from a domain Book entity.
func BookFromEntity(book *entity.Book) *BookModel {
	permissions := make(MemberPermissionDocs, len(book.MemberPermissions))
	for i, p := range book.MemberPermissions {
		permissions[i] = MemberPermissionDoc{
			UserID:    p.UserID,
			Role:      string(p.Role),
			GrantedAt: p.GrantedAt,
			GrantedBy: p.GrantedBy,
		}
	}

	currencies := make(CurrencyDocs, len(book.Currencies))
	for i, c := range book.Currencies {
		currencies[i] = CurrencyDoc{
			Code:   c.Code,
			Name:   c.Name,
			Symbol: c.Symbol,
			Rate:   c.Rate,
		}
	}

	transfers := make(TransferRecordDocs, len(book.TransferHistory))
	for i, t := range book.TransferHistory {
		transfers[i] = TransferRecordDoc{
			FromUser: t.FromUser,
			ToUser:   t.ToUser,
			Date:     t.Date,
		}
	}

	invites := make(InviteRecordDocs, len(book.InviteHistory))
	for i, inv := range book.InviteHistory {
		invites[i] = InviteRecordDoc{
			InvitedBy:   inv.InvitedBy,
			InvitedUser: inv.InvitedUser,
			Date:        inv.Date,
			Role:        string(inv.Role),
		}
	}

	return &BookModel{
		ID:                book.ID,
		Name:              book.Name,
		OwnerID:           book.OwnerID,
		Members:           uuidStrings(book.Members),
		MemberPermissions: permissions,
		Currencies:        currencies,
		DefaultCurrency:   book.DefaultCurrency,
		IsArchived:        book.IsArchived,
		ArchivedAt:        book.ArchivedAt,
		IsDeleted:         book.IsDeleted,
		DeletedAt:         book.DeletedAt,
		TransferHistory:   transfers,
		InviteHistory:     invites,
		CreatedAt:         book.CreatedAt,
		UpdatedAt:         book.UpdatedAt,
	}
}
