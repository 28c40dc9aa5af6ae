package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/usecase/book"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

func newDeleteUseCase(userRepo *fakeUserRepo, bookRepo *fakeBookRepo) *DeleteUserUseCase {
	transfer := book.NewTransferOwnershipUseCase(bookRepo, userRepo, fakeTxManager{}, fakeClock{}, &fakeEventSink{})
	return NewDeleteUserUseCase(userRepo, bookRepo, transfer, fakeTxManager{}, fakeClock{}, &fakeEventSink{})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting without owned books needs no target", func(t *testing.T) {
		u := entity.NewUser("ada", "ada@example.com", "hash")
		userRepo := newFakeUserRepo(u)
		uc := newDeleteUseCase(userRepo, newFakeBookRepo())

		out, err := uc.Execute(ctx, DeleteUserInput{UserID: u.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || out.TransferredBooks != 0 {
			t.Errorf("unexpected output: %+v", out)
		}
		if !u.IsDeleted || u.DeletedAt == nil {
			t.Error("expected user soft-deleted")
		}
	})

	t.Run("owned books without a target fail with no state change", func(t *testing.T) {
		u := entity.NewUser("ada", "ada@example.com", "hash")
		b := entity.NewBook("Household", u.ID)
		userRepo := newFakeUserRepo(u)
		bookRepo := newFakeBookRepo(b)
		uc := newDeleteUseCase(userRepo, bookRepo)

		_, err := uc.Execute(ctx, DeleteUserInput{UserID: u.ID})
		if !domainerror.IsKind(err, domainerror.KindValidation) {
			t.Fatalf("expected Validation, got %v", err)
		}
		if u.IsDeleted {
			t.Error("expected user untouched")
		}
		if b.OwnerID != u.ID {
			t.Error("expected book ownership untouched")
		}
	})

	t.Run("self as transfer target is rejected", func(t *testing.T) {
		u := entity.NewUser("ada", "ada@example.com", "hash")
		b := entity.NewBook("Household", u.ID)
		uc := newDeleteUseCase(newFakeUserRepo(u), newFakeBookRepo(b))

		_, err := uc.Execute(ctx, DeleteUserInput{UserID: u.ID, TransferToUserID: &u.ID})
		if !domainerror.IsKind(err, domainerror.KindValidation) {
			t.Errorf("expected Validation, got %v", err)
		}
	})

	t.Run("transfers all owned books and leaves other memberships", func(t *testing.T) {
		u := entity.NewUser("ada", "ada@example.com", "hash")
		heir := entity.NewUser("bo", "bo@example.com", "hash")
		owned1 := entity.NewBook("Household", u.ID)
		owned2 := entity.NewBook("Travel", u.ID)
		shared := entity.NewBook("Club", heir.ID)
		shared.AddMember(u.ID)
		shared.MemberPermissions = append(shared.MemberPermissions, entity.MemberPermission{
			UserID: u.ID, Role: entity.RoleEditor, GrantedAt: testNow, GrantedBy: heir.ID,
		})
		userRepo := newFakeUserRepo(u, heir)
		bookRepo := newFakeBookRepo(owned1, owned2, shared)
		uc := newDeleteUseCase(userRepo, bookRepo)

		out, err := uc.Execute(ctx, DeleteUserInput{UserID: u.ID, TransferToUserID: &heir.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TransferredBooks != 2 {
			t.Errorf("expected 2 transferred books, got %d", out.TransferredBooks)
		}
		if owned1.OwnerID != heir.ID || owned2.OwnerID != heir.ID {
			t.Error("expected both owned books transferred")
		}
		if shared.IsMember(u.ID) {
			t.Error("expected shared membership removed")
		}
		if shared.PermissionFor(u.ID) != nil {
			t.Error("expected shared grant removed")
		}
		if !u.IsDeleted {
			t.Error("expected user soft-deleted")
		}
	})

	t.Run("deleting an already-deleted user succeeds", func(t *testing.T) {
		u := entity.NewUser("ada", "ada@example.com", "hash")
		u.IsDeleted = true
		u.DeletedAt = &testNow
		uc := newDeleteUseCase(newFakeUserRepo(u), newFakeBookRepo())

		out, err := uc.Execute(ctx, DeleteUserInput{UserID: u.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		uc := newDeleteUseCase(newFakeUserRepo(), newFakeBookRepo())

		_, err := uc.Execute(ctx, DeleteUserInput{UserID: uuid.New()})
		if !domainerror.IsKind(err, domainerror.KindNotFound) {
			t.Errorf("expected NotFound, got %v", err)
		}
	})
}

func TestRestoreUser(t *testing.T) {
	ctx := context.Background()

	t.Run("restores a deleted user", func(t *testing.T) {
		u := entity.NewUser("ada", "ada@example.com", "hash")
		u.IsDeleted = true
		u.DeletedAt = &testNow
		uc := NewRestoreUserUseCase(newFakeUserRepo(u), fakeClock{}, &fakeEventSink{})

		out, err := uc.Execute(ctx, RestoreUserInput{UserID: u.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.IsDeleted || out.User.DeletedAt != nil {
			t.Error("expected deletion flags cleared")
		}
	})

	t.Run("restoring a live user conflicts", func(t *testing.T) {
		u := entity.NewUser("ada", "ada@example.com", "hash")
		uc := NewRestoreUserUseCase(newFakeUserRepo(u), fakeClock{}, &fakeEventSink{})

		_, err := uc.Execute(ctx, RestoreUserInput{UserID: u.ID})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})
}
