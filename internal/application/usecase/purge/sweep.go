// Package purge contains the retention sweep use case.
package purge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
)

// SweepInput represents the input for one purge sweep run.
type SweepInput struct {
	// Retention is how long a soft-deleted book or user is kept before the
	// row is reclaimed, measured from deletedAt.
	Retention time.Duration
}

// SweepOutput reports what one sweep run reclaimed.
type SweepOutput struct {
	PurgedBooks int
	PurgedUsers int
}

// SweepUseCase hard-deletes books and users whose retention window has
// elapsed. Each target is purged in its own transaction so an interrupted
// run leaves only whole targets behind; the next run picks them up again.
type SweepUseCase struct {
	bookRepo        adapter.BookRepository
	userRepo        adapter.UserRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	tagRepo         adapter.TagRepository
	personRepo      adapter.PersonRepository
	txm             adapter.TxManager
	clock           adapter.Clock
	events          adapter.EventSink
}

// NewSweepUseCase creates a new SweepUseCase instance.
func NewSweepUseCase(
	bookRepo adapter.BookRepository,
	userRepo adapter.UserRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	tagRepo adapter.TagRepository,
	personRepo adapter.PersonRepository,
	txm adapter.TxManager,
	clock adapter.Clock,
	events adapter.EventSink,
) *SweepUseCase {
	return &SweepUseCase{
		bookRepo:        bookRepo,
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		tagRepo:         tagRepo,
		personRepo:      personRepo,
		txm:             txm,
		clock:           clock,
		events:          events,
	}
}

// Execute runs one sweep. Records younger than the retention window are
// never touched, however often the sweep runs. A run over an already-clean
// state purges nothing and succeeds.
func (uc *SweepUseCase) Execute(ctx context.Context, input SweepInput) (*SweepOutput, error) {
	now := uc.clock.Now()
	cutoff := now.Add(-input.Retention)
	out := &SweepOutput{}

	books, err := uc.bookRepo.FindDeletedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list purgeable books: %w", err)
	}
	for _, book := range books {
		if err := uc.purgeBook(ctx, book.ID, now); err != nil {
			return out, fmt.Errorf("failed to purge book %s: %w", book.ID, err)
		}
		out.PurgedBooks++
	}

	users, err := uc.userRepo.FindDeletedBefore(ctx, cutoff)
	if err != nil {
		return out, fmt.Errorf("failed to list purgeable users: %w", err)
	}
	for _, user := range users {
		if err := uc.purgeUser(ctx, user.ID, now); err != nil {
			return out, fmt.Errorf("failed to purge user %s: %w", user.ID, err)
		}
		out.PurgedUsers++
	}

	return out, nil
}

// purgeBook reclaims one book and all its dependent rows atomically.
func (uc *SweepUseCase) purgeBook(ctx context.Context, bookID uuid.UUID, now time.Time) error {
	err := uc.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.transactionRepo.HardDeleteByBook(ctx, bookID); err != nil {
			return err
		}
		if err := uc.accountRepo.HardDeleteByBook(ctx, bookID); err != nil {
			return err
		}
		if err := uc.categoryRepo.HardDeleteByBook(ctx, bookID); err != nil {
			return err
		}
		if err := uc.tagRepo.HardDeleteByBook(ctx, bookID); err != nil {
			return err
		}
		if err := uc.personRepo.HardDeleteByBook(ctx, bookID); err != nil {
			return err
		}
		return uc.bookRepo.HardDelete(ctx, bookID)
	})
	if err != nil {
		return err
	}

	if err := uc.events.Publish(ctx, adapter.Event{
		Name:       adapter.EventBookPurged,
		BookID:     bookID,
		OccurredAt: now,
	}); err != nil {
		slog.WarnContext(ctx, "event publish failed", "event", adapter.EventBookPurged, "error", err)
	}
	return nil
}

// purgeUser reclaims one user row. Books the user still owned at purge time
// were soft-deleted with them and are reclaimed by the book pass.
func (uc *SweepUseCase) purgeUser(ctx context.Context, userID uuid.UUID, now time.Time) error {
	err := uc.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.userRepo.HardDelete(ctx, userID)
	})
	if err != nil {
		return err
	}

	if err := uc.events.Publish(ctx, adapter.Event{
		Name:       adapter.EventUserPurged,
		UserID:     userID,
		OccurredAt: now,
	}); err != nil {
		slog.WarnContext(ctx, "event publish failed", "event", adapter.EventUserPurged, "error", err)
	}
	return nil
}
