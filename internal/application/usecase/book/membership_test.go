package book

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/entity"
)

func TestInviteMember(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("admin can invite with an assignable role", func(t *testing.T) {
		admin := uuid.New()
		invitee := entity.NewUser("cat", "cat@example.com", "hash")
		b := entity.NewBook("Household", owner)
		grantRole(b, admin, entity.RoleAdmin)
		uc := NewInviteMemberUseCase(newFakeBookRepo(b), newFakeUserRepo(invitee), &fakeClock{now: testNow})

		out, err := uc.Execute(ctx, InviteMemberInput{
			BookID:      b.ID,
			RequesterID: admin,
			UserID:      invitee.ID,
			Role:        entity.RoleEditor,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Book.IsMember(invitee.ID) {
			t.Error("expected invitee to be a member")
		}
		perm := out.Book.PermissionFor(invitee.ID)
		if perm == nil || perm.Role != entity.RoleEditor {
			t.Errorf("expected editor grant, got %+v", perm)
		}
		if len(out.Book.InviteHistory) != 1 {
			t.Errorf("expected 1 invite history entry, got %d", len(out.Book.InviteHistory))
		}
	})

	t.Run("owner role cannot be granted", func(t *testing.T) {
		invitee := entity.NewUser("cat", "cat@example.com", "hash")
		b := entity.NewBook("Household", owner)
		uc := NewInviteMemberUseCase(newFakeBookRepo(b), newFakeUserRepo(invitee), &fakeClock{now: testNow})

		_, err := uc.Execute(ctx, InviteMemberInput{
			BookID:      b.ID,
			RequesterID: owner,
			UserID:      invitee.ID,
			Role:        entity.RoleOwner,
		})
		if !domainerror.IsKind(err, domainerror.KindValidation) {
			t.Errorf("expected Validation, got %v", err)
		}
	})

	t.Run("inviting an existing member conflicts", func(t *testing.T) {
		member := entity.NewUser("cat", "cat@example.com", "hash")
		b := entity.NewBook("Household", owner)
		grantRole(b, member.ID, entity.RoleViewer)
		uc := NewInviteMemberUseCase(newFakeBookRepo(b), newFakeUserRepo(member), &fakeClock{now: testNow})

		_, err := uc.Execute(ctx, InviteMemberInput{
			BookID:      b.ID,
			RequesterID: owner,
			UserID:      member.ID,
			Role:        entity.RoleViewer,
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})

	t.Run("editor cannot invite", func(t *testing.T) {
		editor := uuid.New()
		invitee := entity.NewUser("cat", "cat@example.com", "hash")
		b := entity.NewBook("Household", owner)
		grantRole(b, editor, entity.RoleEditor)
		uc := NewInviteMemberUseCase(newFakeBookRepo(b), newFakeUserRepo(invitee), &fakeClock{now: testNow})

		_, err := uc.Execute(ctx, InviteMemberInput{
			BookID:      b.ID,
			RequesterID: editor,
			UserID:      invitee.ID,
			Role:        entity.RoleViewer,
		})
		if !domainerror.IsKind(err, domainerror.KindForbidden) {
			t.Errorf("expected Forbidden, got %v", err)
		}
	})
}

func TestUpdateMemberPermission(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("changes an existing grant", func(t *testing.T) {
		member := uuid.New()
		b := entity.NewBook("Household", owner)
		grantRole(b, member, entity.RoleViewer)
		uc := NewUpdateMemberPermissionUseCase(newFakeBookRepo(b), &fakeClock{now: testNow})

		out, err := uc.Execute(ctx, UpdateMemberPermissionInput{
			BookID:      b.ID,
			RequesterID: owner,
			UserID:      member,
			NewRole:     entity.RoleAdmin,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		perm := out.Book.PermissionFor(member)
		if perm == nil || perm.Role != entity.RoleAdmin {
			t.Errorf("expected admin grant, got %+v", perm)
		}
	})

	t.Run("owner grant cannot be assigned", func(t *testing.T) {
		member := uuid.New()
		b := entity.NewBook("Household", owner)
		grantRole(b, member, entity.RoleViewer)
		uc := NewUpdateMemberPermissionUseCase(newFakeBookRepo(b), &fakeClock{now: testNow})

		_, err := uc.Execute(ctx, UpdateMemberPermissionInput{
			BookID:      b.ID,
			RequesterID: owner,
			UserID:      member,
			NewRole:     entity.RoleOwner,
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})

	t.Run("missing grant is not found", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewUpdateMemberPermissionUseCase(newFakeBookRepo(b), &fakeClock{now: testNow})

		_, err := uc.Execute(ctx, UpdateMemberPermissionInput{
			BookID:      b.ID,
			RequesterID: owner,
			UserID:      uuid.New(),
			NewRole:     entity.RoleEditor,
		})
		if !domainerror.IsKind(err, domainerror.KindNotFound) {
			t.Errorf("expected NotFound, got %v", err)
		}
	})
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("removes a member and their grant", func(t *testing.T) {
		member := uuid.New()
		b := entity.NewBook("Household", owner)
		grantRole(b, member, entity.RoleEditor)
		uc := NewRemoveMemberUseCase(newFakeBookRepo(b), &fakeClock{now: testNow})

		out, err := uc.Execute(ctx, RemoveMemberInput{BookID: b.ID, RequesterID: owner, UserID: member})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.IsMember(member) {
			t.Error("expected member removed")
		}
		if out.Book.PermissionFor(member) != nil {
			t.Error("expected grant removed")
		}
	})

	t.Run("the owner cannot be removed", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewRemoveMemberUseCase(newFakeBookRepo(b), &fakeClock{now: testNow})

		_, err := uc.Execute(ctx, RemoveMemberInput{BookID: b.ID, RequesterID: owner, UserID: owner})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})
}
