// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role represents a member's authority level on a book.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	// RoleNone is the resolved role of a principal with no relation to the book.
	RoleNone Role = "none"
)

// roleLevels orders roles by authority. Higher wins.
var roleLevels = map[Role]int{
	RoleNone:   0,
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
	RoleOwner:  4,
}

// Level returns the authority level of the role. Unknown roles rank below viewer.
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether the role carries at least the authority of min.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// IsAssignable reports whether the role can be granted to a member.
// Owner is implicit (derived from Book.OwnerID) and never stored as a grant.
func (r Role) IsAssignable() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

// SystemCurrencies are always present on a book and can never be removed.
var SystemCurrencies = []string{"CNY", "USD", "THB"}

// DefaultBookCurrency is the base currency assigned to new books.
const DefaultBookCurrency = "CNY"

// Currency is a currency registered on a book. Rate is expressed as units of
// this currency per one unit of the book's base currency. The stored rate of
// the default currency is never read; conversion treats it as exactly 1.
type Currency struct {
	Code   string
	Name   string
	Symbol string
	Rate   decimal.Decimal
}

// MemberPermission is a role grant for a non-owner member of a book.
type MemberPermission struct {
	UserID    uuid.UUID
	Role      Role
	GrantedAt time.Time
	GrantedBy uuid.UUID
}

// TransferRecord is one entry of a book's ownership transfer history.
type TransferRecord struct {
	FromUser uuid.UUID
	ToUser   uuid.UUID
	Date     time.Time
}

// InviteRecord is one entry of a book's invite history.
type InviteRecord struct {
	InvitedBy   uuid.UUID
	InvitedUser uuid.UUID
	Date        time.Time
	Role        Role
}

// Book represents a ledger workspace: accounts, transactions, taxonomies,
// a currency set and a membership list with per-member roles.
type Book struct {
	ID                uuid.UUID
	Name              string
	OwnerID           uuid.UUID
	Members           []uuid.UUID
	MemberPermissions []MemberPermission
	Currencies        []Currency
	DefaultCurrency   string
	IsArchived        bool
	ArchivedAt        *time.Time
	IsDeleted         bool
	DeletedAt         *time.Time
	TransferHistory   []TransferRecord
	InviteHistory     []InviteRecord
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewBook creates a new Book owned by ownerID, seeded with the system
// currencies and the default base currency.
func NewBook(name string, ownerID uuid.UUID) *Book {
	now := time.Now().UTC()

	return &Book{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
		Members: []uuid.UUID{ownerID},
		Currencies: []Currency{
			{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Rate: decimal.NewFromInt(1)},
			{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: decimal.NewFromInt(1)},
			{Code: "THB", Name: "Thai Baht", Symbol: "฿", Rate: decimal.NewFromInt(1)},
		},
		DefaultCurrency: DefaultBookCurrency,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// FindCurrency returns the currency entry for code, or nil when the code is
// not registered on the book.
func (b *Book) FindCurrency(code string) *Currency {
	for i := range b.Currencies {
		if b.Currencies[i].Code == code {
			return &b.Currencies[i]
		}
	}
	return nil
}

// IsMember reports whether userID appears in the member set. The owner is
// always a member.
func (b *Book) IsMember(userID uuid.UUID) bool {
	if userID == b.OwnerID {
		return true
	}
	for _, id := range b.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// AddMember appends userID to the member set if not already present.
func (b *Book) AddMember(userID uuid.UUID) {
	for _, id := range b.Members {
		if id == userID {
			return
		}
	}
	b.Members = append(b.Members, userID)
}

// RemoveMember removes userID from the member set and drops its permission
// grant. Removing the owner is not meaningful and is ignored.
func (b *Book) RemoveMember(userID uuid.UUID) {
	if userID == b.OwnerID {
		return
	}
	members := b.Members[:0]
	for _, id := range b.Members {
		if id != userID {
			members = append(members, id)
		}
	}
	b.Members = members

	perms := b.MemberPermissions[:0]
	for _, p := range b.MemberPermissions {
		if p.UserID != userID {
			perms = append(perms, p)
		}
	}
	b.MemberPermissions = perms
}

// PermissionFor returns the stored role grant for userID, or nil when none
// exists. The owner never has a stored grant.
func (b *Book) PermissionFor(userID uuid.UUID) *MemberPermission {
	for i := range b.MemberPermissions {
		if b.MemberPermissions[i].UserID == userID {
			return &b.MemberPermissions[i]
		}
	}
	return nil
}

// IsSystemCurrency reports whether code is one of the fixed system currencies.
func IsSystemCurrency(code string) bool {
	for _, c := range SystemCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
