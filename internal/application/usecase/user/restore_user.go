// Package user contains user account and lifecycle use cases.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

// RestoreUserInput represents the input for restoring a soft-deleted user.
type RestoreUserInput struct {
	UserID uuid.UUID
}

// RestoreUserOutput represents the output of restoring a user.
type RestoreUserOutput struct {
	User *entity.User
}

// RestoreUserUseCase brings a soft-deleted user back before the purge sweep
// reclaims the row. Books transferred away during deletion stay with their
// new owner.
type RestoreUserUseCase struct {
	userRepo adapter.UserRepository
	clock    adapter.Clock
	events   adapter.EventSink
}

// NewRestoreUserUseCase creates a new RestoreUserUseCase instance.
func NewRestoreUserUseCase(userRepo adapter.UserRepository, clock adapter.Clock, events adapter.EventSink) *RestoreUserUseCase {
	return &RestoreUserUseCase{
		userRepo: userRepo,
		clock:    clock,
		events:   events,
	}
}

// Execute restores the user. Restoring a live user is a conflict.
func (uc *RestoreUserUseCase) Execute(ctx context.Context, input RestoreUserInput) (*RestoreUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewUserError(
			domainerror.KindNotFound,
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if !user.IsDeleted {
		return nil, domainerror.NewUserError(
			domainerror.KindConflict,
			domainerror.ErrCodeUserNotDeleted,
			"user is not deleted",
			domainerror.ErrUserNotDeleted,
		)
	}

	now := uc.clock.Now()
	user.IsDeleted = false
	user.DeletedAt = nil
	user.UpdatedAt = now

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to restore user: %w", err)
	}

	if err := uc.events.Publish(ctx, adapter.Event{
		Name:       adapter.EventUserRestored,
		UserID:     user.ID,
		ActorID:    user.ID,
		OccurredAt: now,
	}); err != nil {
		slog.WarnContext(ctx, "event publish failed", "event", adapter.EventUserRestored, "error", err)
	}

	return &RestoreUserOutput{User: user}, nil
}
