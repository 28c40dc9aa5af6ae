// Package book contains book-related use cases: CRUD, the archive and
// soft-delete state machines, ownership transfer and membership management.
package book

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

const (
	// MaxBookNameLength is the maximum allowed length for book names.
	MaxBookNameLength = 100
)

// findBook loads a book and converts absence into a NotFound domain error.
func findBook(ctx context.Context, repo adapter.BookRepository, id uuid.UUID, includeDeleted bool) (*entity.Book, error) {
	book, err := repo.FindByID(ctx, id, includeDeleted)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domainerror.NewBookError(
			domainerror.KindNotFound,
			domainerror.ErrCodeBookNotFound,
			"book not found",
			domainerror.ErrBookNotFound,
		)
	}
	return book, nil
}

// publish delivers a lifecycle event best-effort. Sink failures are logged
// and never propagated; domain correctness does not depend on the sink.
func publish(ctx context.Context, sink adapter.EventSink, event adapter.Event) {
	if sink == nil {
		return
	}
	if err := sink.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish lifecycle event", "event", event.Name, "error", err)
	}
}

// validateName checks book name constraints shared by create and update.
func validateName(name string) error {
	if name == "" {
		return domainerror.NewBookError(
			domainerror.KindValidation,
			domainerror.ErrCodeBookNameRequired,
			"book name is required",
			domainerror.ErrBookNameRequired,
		)
	}
	if len(name) > MaxBookNameLength {
		return domainerror.NewBookError(
			domainerror.KindValidation,
			domainerror.ErrCodeBookNameRequired,
			"book name too long",
			domainerror.ErrBookNameRequired,
		)
	}
	return nil
}
