// Package permission resolves a principal's effective role on a book and
// authorizes operations against a fixed capability matrix. Every mutating
// use case calls Authorize before acting; reads additionally require
// membership regardless of the matrix.
package permission

import (
	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

// Operation identifies an action a principal can attempt on a book or its
// child entities.
type Operation string

const (
	// OpReadBook covers reading the book and all of its child entities.
	OpReadBook Operation = "book.read"

	// OpWriteEntities covers creating, updating and deleting transactions,
	// accounts, categories, tags and persons.
	OpWriteEntities Operation = "book.write_entities"

	// OpManageMembers covers inviting members, updating member permissions
	// and removing members.
	OpManageMembers Operation = "book.manage_members"

	// OpManageBook covers updating book metadata and managing currencies.
	OpManageBook Operation = "book.manage"

	// OpManageLifecycle covers archive, restore, delete and ownership transfer.
	OpManageLifecycle Operation = "book.lifecycle"
)

// capabilityMatrix maps each operation to the minimum role that may perform it.
var capabilityMatrix = map[Operation]entity.Role{
	OpReadBook:        entity.RoleViewer,
	OpWriteEntities:   entity.RoleEditor,
	OpManageMembers:   entity.RoleAdmin,
	OpManageBook:      entity.RoleAdmin,
	OpManageLifecycle: entity.RoleOwner,
}

// ResolveRole derives the principal's effective role on the book. The owner
// is implicitly RoleOwner and never needs a stored grant; everyone else gets
// the role from their permission entry, or RoleNone when they have none.
func ResolveRole(book *entity.Book, userID uuid.UUID) entity.Role {
	if book == nil || userID == uuid.Nil {
		return entity.RoleNone
	}
	if userID == book.OwnerID {
		return entity.RoleOwner
	}
	if perm := book.PermissionFor(userID); perm != nil {
		return perm.Role
	}
	return entity.RoleNone
}

// Authorize checks whether userID may perform op on the book. It returns a
// Forbidden domain error on denial: ErrNotBookMember for principals with no
// relation to the book, ErrInsufficientRole otherwise.
func Authorize(book *entity.Book, userID uuid.UUID, op Operation) error {
	role := ResolveRole(book, userID)
	if role == entity.RoleNone {
		return domainerror.NewBookError(
			domainerror.KindForbidden,
			domainerror.ErrCodeNotBookMember,
			"you are not a member of this book",
			domainerror.ErrNotBookMember,
		)
	}

	min, ok := capabilityMatrix[op]
	if !ok || !role.AtLeast(min) {
		return domainerror.NewBookError(
			domainerror.KindForbidden,
			domainerror.ErrCodeInsufficientRole,
			"your role does not permit this operation",
			domainerror.ErrInsufficientRole,
		)
	}

	return nil
}

// MinimumRole returns the minimum role required for op. Unknown operations
// report false.
func MinimumRole(op Operation) (entity.Role, bool) {
	role, ok := capabilityMatrix[op]
	return role, ok
}
