// Package permission resolves a principal's effective role on a book.
package permission

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

func newTestBook(ownerID uuid.UUID) *entity.Book {
	return entity.NewBook("household", ownerID)
}

func grant(book *entity.Book, userID uuid.UUID, role entity.Role) {
	book.AddMember(userID)
	book.MemberPermissions = append(book.MemberPermissions, entity.MemberPermission{
		UserID:    userID,
		Role:      role,
		GrantedAt: time.Now().UTC(),
		GrantedBy: book.OwnerID,
	})
}

func TestResolveRole(t *testing.T) {
	ownerID := uuid.New()
	book := newTestBook(ownerID)

	adminID := uuid.New()
	editorID := uuid.New()
	viewerID := uuid.New()
	grant(book, adminID, entity.RoleAdmin)
	grant(book, editorID, entity.RoleEditor)
	grant(book, viewerID, entity.RoleViewer)

	t.Run("owner is implicit without a stored grant", func(t *testing.T) {
		if got := ResolveRole(book, ownerID); got != entity.RoleOwner {
			t.Errorf("expected owner role, got %s", got)
		}
		if book.PermissionFor(ownerID) != nil {
			t.Error("owner must not have a stored permission entry")
		}
	})

	t.Run("members resolve to their granted role", func(t *testing.T) {
		cases := map[uuid.UUID]entity.Role{
			adminID:  entity.RoleAdmin,
			editorID: entity.RoleEditor,
			viewerID: entity.RoleViewer,
		}
		for userID, want := range cases {
			if got := ResolveRole(book, userID); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		}
	})

	t.Run("strangers resolve to none", func(t *testing.T) {
		if got := ResolveRole(book, uuid.New()); got != entity.RoleNone {
			t.Errorf("expected none, got %s", got)
		}
	})

	t.Run("nil principal resolves to none", func(t *testing.T) {
		if got := ResolveRole(book, uuid.Nil); got != entity.RoleNone {
			t.Errorf("expected none, got %s", got)
		}
	})
}

func TestAuthorize_CapabilityMatrix(t *testing.T) {
	ownerID := uuid.New()
	book := newTestBook(ownerID)

	adminID := uuid.New()
	editorID := uuid.New()
	viewerID := uuid.New()
	grant(book, adminID, entity.RoleAdmin)
	grant(book, editorID, entity.RoleEditor)
	grant(book, viewerID, entity.RoleViewer)

	principals := []struct {
		name string
		id   uuid.UUID
		role entity.Role
	}{
		{"owner", ownerID, entity.RoleOwner},
		{"admin", adminID, entity.RoleAdmin},
		{"editor", editorID, entity.RoleEditor},
		{"viewer", viewerID, entity.RoleViewer},
	}

	operations := []struct {
		op  Operation
		min entity.Role
	}{
		{OpReadBook, entity.RoleViewer},
		{OpWriteEntities, entity.RoleEditor},
		{OpManageMembers, entity.RoleAdmin},
		{OpManageBook, entity.RoleAdmin},
		{OpManageLifecycle, entity.RoleOwner},
	}

	for _, p := range principals {
		for _, o := range operations {
			allowed := p.role.AtLeast(o.min)
			name := p.name + " " + string(o.op)
			t.Run(name, func(t *testing.T) {
				err := Authorize(book, p.id, o.op)
				if allowed && err != nil {
					t.Errorf("expected allow, got %v", err)
				}
				if !allowed {
					if err == nil {
						t.Fatal("expected deny, got allow")
					}
					if !domainerror.IsKind(err, domainerror.KindForbidden) {
						t.Errorf("expected forbidden kind, got %v", err)
					}
				}
			})
		}
	}
}

func TestAuthorize_Monotonic(t *testing.T) {
	// Any operation permitted for a role must be permitted for every higher role.
	ownerID := uuid.New()
	book := newTestBook(ownerID)

	ordered := []entity.Role{entity.RoleViewer, entity.RoleEditor, entity.RoleAdmin}
	ids := make([]uuid.UUID, len(ordered))
	for i, role := range ordered {
		ids[i] = uuid.New()
		grant(book, ids[i], role)
	}

	ops := []Operation{OpReadBook, OpWriteEntities, OpManageMembers, OpManageBook, OpManageLifecycle}
	for _, op := range ops {
		for i := range ordered {
			if Authorize(book, ids[i], op) != nil {
				continue
			}
			for j := i + 1; j < len(ordered); j++ {
				if err := Authorize(book, ids[j], op); err != nil {
					t.Errorf("%s allowed for %s but denied for %s", op, ordered[i], ordered[j])
				}
			}
			if err := Authorize(book, ownerID, op); err != nil {
				t.Errorf("%s allowed for %s but denied for owner", op, ordered[i])
			}
		}
	}
}

func TestAuthorize_NonMemberDeniedEverything(t *testing.T) {
	book := newTestBook(uuid.New())
	stranger := uuid.New()

	ops := []Operation{OpReadBook, OpWriteEntities, OpManageMembers, OpManageBook, OpManageLifecycle}
	for _, op := range ops {
		err := Authorize(book, stranger, op)
		if err == nil {
			t.Fatalf("expected deny for non-member on %s", op)
		}
		if !domainerror.IsKind(err, domainerror.KindForbidden) {
			t.Errorf("expected forbidden kind for %s, got %v", op, err)
		}
	}
}

func TestAuthorize_OwnerOnlyDeniedToAdmin(t *testing.T) {
	book := newTestBook(uuid.New())
	adminID := uuid.New()
	grant(book, adminID, entity.RoleAdmin)

	if err := Authorize(book, adminID, OpManageLifecycle); err == nil {
		t.Fatal("expected admin to be denied owner-only operation")
	}
}
