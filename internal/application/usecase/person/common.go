// Package person contains person-related use cases.
package person

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

// findBook loads a live book or reports NotFound. Child-entity writes are
// additionally rejected while the book is archived.
func findBook(ctx context.Context, repo adapter.BookRepository, id uuid.UUID, forWrite bool) (*entity.Book, error) {
	book, err := repo.FindByID(ctx, id, false)
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
	if forWrite && book.IsArchived {
		return nil, domainerror.NewBookError(
			domainerror.KindConflict,
			domainerror.ErrCodeBookArchived,
			"book is archived",
			domainerror.ErrBookArchived,
		)
	}
	return book, nil
}

// findPerson loads a live person belonging to the book or reports NotFound.
func findPerson(ctx context.Context, repo adapter.PersonRepository, id, bookID uuid.UUID) (*entity.Person, error) {
	person, err := repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if person == nil || person.BookID != bookID {
		return nil, domainerror.NewTaxonomyError(
			domainerror.KindNotFound,
			domainerror.ErrCodePersonNotFound,
			"person not found",
			domainerror.ErrPersonNotFound,
		)
	}
	return person, nil
}
