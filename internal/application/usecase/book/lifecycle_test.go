package book

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/entity"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestArchiveBook(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("archives a live book", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		repo := newFakeBookRepo(b)
		sink := &fakeEventSink{}
		uc := NewArchiveBookUseCase(repo, &fakeClock{now: testNow}, sink)

		out, err := uc.Execute(ctx, ArchiveBookInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Book.IsArchived {
			t.Error("expected book to be archived")
		}
		if out.Book.ArchivedAt == nil || !out.Book.ArchivedAt.Equal(testNow) {
			t.Errorf("expected archivedAt %v, got %v", testNow, out.Book.ArchivedAt)
		}
		if len(sink.events) != 1 {
			t.Errorf("expected 1 event, got %d", len(sink.events))
		}
	})

	t.Run("archiving an archived book succeeds without change", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		earlier := testNow.Add(-time.Hour)
		b.IsArchived = true
		b.ArchivedAt = &earlier
		repo := newFakeBookRepo(b)
		uc := NewArchiveBookUseCase(repo, &fakeClock{now: testNow}, &fakeEventSink{})

		out, err := uc.Execute(ctx, ArchiveBookInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Book.ArchivedAt.Equal(earlier) {
			t.Error("expected archivedAt to be untouched on repeat archive")
		}
	})

	t.Run("archiving a deleted book is not found", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		b.IsDeleted = true
		b.DeletedAt = &testNow
		repo := newFakeBookRepo(b)
		uc := NewArchiveBookUseCase(repo, &fakeClock{now: testNow}, &fakeEventSink{})

		_, err := uc.Execute(ctx, ArchiveBookInput{BookID: b.ID, RequesterID: owner})
		if !domainerror.IsKind(err, domainerror.KindNotFound) {
			t.Errorf("expected NotFound, got %v", err)
		}
	})

	t.Run("admin cannot archive", func(t *testing.T) {
		admin := uuid.New()
		b := entity.NewBook("Household", owner)
		grantRole(b, admin, entity.RoleAdmin)
		repo := newFakeBookRepo(b)
		uc := NewArchiveBookUseCase(repo, &fakeClock{now: testNow}, &fakeEventSink{})

		_, err := uc.Execute(ctx, ArchiveBookInput{BookID: b.ID, RequesterID: admin})
		if !domainerror.IsKind(err, domainerror.KindForbidden) {
			t.Errorf("expected Forbidden, got %v", err)
		}
	})
}

func TestRestoreBook(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("restores an archived book", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		b.IsArchived = true
		b.ArchivedAt = &testNow
		repo := newFakeBookRepo(b)
		uc := NewRestoreBookUseCase(repo, &fakeClock{now: testNow}, &fakeEventSink{})

		out, err := uc.Execute(ctx, RestoreBookInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.IsArchived || out.Book.ArchivedAt != nil {
			t.Error("expected archive flags cleared")
		}
	})

	t.Run("restoring a live book conflicts", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		repo := newFakeBookRepo(b)
		uc := NewRestoreBookUseCase(repo, &fakeClock{now: testNow}, &fakeEventSink{})

		_, err := uc.Execute(ctx, RestoreBookInput{BookID: b.ID, RequesterID: owner})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("soft-deletes a live book", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		repo := newFakeBookRepo(b)
		sink := &fakeEventSink{}
		uc := NewDeleteBookUseCase(repo, &fakeClock{now: testNow}, sink)

		out, err := uc.Execute(ctx, DeleteBookInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Book.IsDeleted {
			t.Error("expected book to be deleted")
		}
		if out.Book.DeletedAt == nil || !out.Book.DeletedAt.Equal(testNow) {
			t.Errorf("expected deletedAt %v, got %v", testNow, out.Book.DeletedAt)
		}
	})

	t.Run("deleting twice succeeds and keeps the first deletedAt", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		repo := newFakeBookRepo(b)
		first := &fakeClock{now: testNow}
		uc := NewDeleteBookUseCase(repo, first, &fakeEventSink{})

		if _, err := uc.Execute(ctx, DeleteBookInput{BookID: b.ID, RequesterID: owner}); err != nil {
			t.Fatalf("first delete: %v", err)
		}

		later := NewDeleteBookUseCase(repo, &fakeClock{now: testNow.Add(time.Hour)}, &fakeEventSink{})
		out, err := later.Execute(ctx, DeleteBookInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("second delete: %v", err)
		}
		if !out.Book.DeletedAt.Equal(testNow) {
			t.Errorf("expected deletedAt to stay %v, got %v", testNow, out.Book.DeletedAt)
		}
	})
}

func TestUndeleteBook(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("undelete lands the book in the active state", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		b.IsArchived = true
		b.ArchivedAt = &testNow
		b.IsDeleted = true
		b.DeletedAt = &testNow
		repo := newFakeBookRepo(b)
		uc := NewUndeleteBookUseCase(repo, &fakeClock{now: testNow}, &fakeEventSink{})

		out, err := uc.Execute(ctx, UndeleteBookInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.IsDeleted || out.Book.IsArchived {
			t.Error("expected active state after undelete")
		}
		if out.Book.DeletedAt != nil || out.Book.ArchivedAt != nil {
			t.Error("expected timestamps cleared after undelete")
		}
	})

	t.Run("undeleting a live book conflicts", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		repo := newFakeBookRepo(b)
		uc := NewUndeleteBookUseCase(repo, &fakeClock{now: testNow}, &fakeEventSink{})

		_, err := uc.Execute(ctx, UndeleteBookInput{BookID: b.ID, RequesterID: owner})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})
}

// grantRole adds a member permission entry directly on the entity.
func grantRole(b *entity.Book, userID uuid.UUID, role entity.Role) {
	b.AddMember(userID)
	b.MemberPermissions = append(b.MemberPermissions, entity.MemberPermission{
		UserID:    userID,
		Role:      role,
		GrantedAt: testNow,
		GrantedBy: b.OwnerID,
	})
}
