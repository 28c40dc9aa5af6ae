package book

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/entity"
)

func newTransferUseCase(bookRepo *fakeBookRepo, userRepo *fakeUserRepo) *TransferOwnershipUseCase {
	return NewTransferOwnershipUseCase(bookRepo, userRepo, &fakeTxManager{}, &fakeClock{now: testNow}, &fakeEventSink{})
}

func TestTransferOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("transfers to a live user and records history", func(t *testing.T) {
		owner := uuid.New()
		target := entity.NewUser("bo", "bo@example.com", "hash")
		b := entity.NewBook("Household", owner)
		uc := newTransferUseCase(newFakeBookRepo(b), newFakeUserRepo(target))

		out, err := uc.Execute(ctx, TransferOwnershipInput{BookID: b.ID, NewOwnerID: target.ID, ActorID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.OwnerID != target.ID {
			t.Errorf("expected owner %s, got %s", target.ID, out.Book.OwnerID)
		}
		if !out.Book.IsMember(target.ID) {
			t.Error("expected new owner to be a member")
		}
		if len(out.Book.TransferHistory) != 1 {
			t.Fatalf("expected 1 history entry, got %d", len(out.Book.TransferHistory))
		}
		rec := out.Book.TransferHistory[0]
		if rec.FromUser != owner || rec.ToUser != target.ID {
			t.Errorf("unexpected history entry: %+v", rec)
		}
	})

	t.Run("repeat transfer with the same target is a no-op", func(t *testing.T) {
		owner := uuid.New()
		target := entity.NewUser("bo", "bo@example.com", "hash")
		b := entity.NewBook("Household", owner)
		uc := newTransferUseCase(newFakeBookRepo(b), newFakeUserRepo(target))

		in := TransferOwnershipInput{BookID: b.ID, NewOwnerID: target.ID, ActorID: owner}
		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("first transfer: %v", err)
		}
		// Second call is authorized against the new owner.
		in.ActorID = target.ID
		out, err := uc.Execute(ctx, in)
		if err != nil {
			t.Fatalf("second transfer: %v", err)
		}
		if len(out.Book.TransferHistory) != 1 {
			t.Errorf("expected exactly 1 history entry after repeat, got %d", len(out.Book.TransferHistory))
		}
		if out.Book.OwnerID != target.ID {
			t.Errorf("expected owner unchanged, got %s", out.Book.OwnerID)
		}
	})

	t.Run("rejects a deleted transfer target", func(t *testing.T) {
		owner := uuid.New()
		target := entity.NewUser("bo", "bo@example.com", "hash")
		target.IsDeleted = true
		target.DeletedAt = &testNow
		b := entity.NewBook("Household", owner)
		uc := newTransferUseCase(newFakeBookRepo(b), newFakeUserRepo(target))

		_, err := uc.Execute(ctx, TransferOwnershipInput{BookID: b.ID, NewOwnerID: target.ID, ActorID: owner})
		if !domainerror.IsKind(err, domainerror.KindValidation) {
			t.Errorf("expected Validation, got %v", err)
		}
	})

	t.Run("only the owner may transfer", func(t *testing.T) {
		owner := uuid.New()
		admin := uuid.New()
		target := entity.NewUser("bo", "bo@example.com", "hash")
		b := entity.NewBook("Household", owner)
		grantRole(b, admin, entity.RoleAdmin)
		uc := newTransferUseCase(newFakeBookRepo(b), newFakeUserRepo(target))

		_, err := uc.Execute(ctx, TransferOwnershipInput{BookID: b.ID, NewOwnerID: target.ID, ActorID: admin})
		if !domainerror.IsKind(err, domainerror.KindForbidden) {
			t.Errorf("expected Forbidden, got %v", err)
		}
	})

	t.Run("system actor bypasses the owner check", func(t *testing.T) {
		owner := uuid.New()
		target := entity.NewUser("bo", "bo@example.com", "hash")
		b := entity.NewBook("Household", owner)
		uc := newTransferUseCase(newFakeBookRepo(b), newFakeUserRepo(target))

		out, err := uc.Execute(ctx, TransferOwnershipInput{
			BookID:      b.ID,
			NewOwnerID:  target.ID,
			ActorID:     owner,
			SystemActor: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.OwnerID != target.ID {
			t.Errorf("expected owner %s, got %s", target.ID, out.Book.OwnerID)
		}
	})
}
