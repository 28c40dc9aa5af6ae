// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneybook/backend/internal/domain/entity"
)

// CreateBookRequest represents the request body for book creation.
type CreateBookRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateBookRequest represents the request body for book update.
type UpdateBookRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// TransferOwnershipRequest represents the request body for an ownership transfer.
type TransferOwnershipRequest struct {
	NewOwnerID string `json:"new_owner_id" binding:"required,uuid"`
}

// InviteMemberRequest represents the request body for inviting a member.
type InviteMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=admin editor viewer"`
}

// UpdateMemberRequest represents the request body for changing a member's role.
type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=admin editor viewer"`
}

// AddCurrencyRequest represents the request body for registering a currency.
// Rate is a decimal string: units of this currency per one base unit.
type AddCurrencyRequest struct {
	Code   string `json:"code" binding:"required,min=3,max=8"`
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Symbol string `json:"symbol" binding:"required,min=1,max=8"`
	Rate   string `json:"rate" binding:"required"`
}

// UpdateCurrencyRequest represents the request body for repricing a currency.
type UpdateCurrencyRequest struct {
	Rate string `json:"rate" binding:"required"`
}

// CurrencyResponse represents a registered currency in API responses.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Rate   string `json:"rate"`
}

// MemberResponse represents a member role grant in API responses.
type MemberResponse struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	GrantedAt time.Time `json:"granted_at"`
	GrantedBy string    `json:"granted_by"`
}

// TransferRecordResponse represents one ownership transfer history entry.
type TransferRecordResponse struct {
	FromUser string    `json:"from_user"`
	ToUser   string    `json:"to_user"`
	Date     time.Time `json:"date"`
}

// BookResponse represents a book in API responses.
type BookResponse struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	OwnerID         string                   `json:"owner_id"`
	Members         []string                 `json:"members"`
	Permissions     []MemberResponse         `json:"permissions"`
	Currencies      []CurrencyResponse       `json:"currencies"`
	DefaultCurrency string                   `json:"default_currency"`
	Status          string                   `json:"status"`
	ArchivedAt      *time.Time               `json:"archived_at,omitempty"`
	DeletedAt       *time.Time               `json:"deleted_at,omitempty"`
	TransferHistory []TransferRecordResponse `json:"transfer_history,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// BookListResponse represents the response for listing books.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
}

// ToBookResponse converts a domain Book entity to a BookResponse DTO.
func ToBookResponse(book *entity.Book) BookResponse {
	members := make([]string, 0, len(book.Members))
	for _, id := range book.Members {
		members = append(members, id.String())
	}

	permissions := make([]MemberResponse, 0, len(book.MemberPermissions))
	for _, p := range book.MemberPermissions {
		permissions = append(permissions, MemberResponse{
			UserID:    p.UserID.String(),
			Role:      string(p.Role),
			GrantedAt: p.GrantedAt,
			GrantedBy: p.GrantedBy.String(),
		})
	}

	currencies := make([]CurrencyResponse, 0, len(book.Currencies))
	for _, c := range book.Currencies {
		currencies = append(currencies, CurrencyResponse{
			Code:   c.Code,
			Name:   c.Name,
			Symbol: c.Symbol,
			Rate:   c.Rate.String(),
		})
	}

	transfers := make([]TransferRecordResponse, 0, len(book.TransferHistory))
	for _, t := range book.TransferHistory {
		transfers = append(transfers, TransferRecordResponse{
			FromUser: t.FromUser.String(),
			ToUser:   t.ToUser.String(),
			Date:     t.Date,
		})
	}

	status := "active"
	if book.IsDeleted {
		status = "deleted"
	} else if book.IsArchived {
		status = "archived"
	}

	return BookResponse{
		ID:              book.ID.String(),
		Name:            book.Name,
		OwnerID:         book.OwnerID.String(),
		Members:         members,
		Permissions:     permissions,
		Currencies:      currencies,
		DefaultCurrency: book.DefaultCurrency,
		Status:          status,
		ArchivedAt:      book.ArchivedAt,
		DeletedAt:       book.DeletedAt,
		TransferHistory: transfers,
		CreatedAt:       book.CreatedAt,
		UpdatedAt:       book.UpdatedAt,
	}
}
