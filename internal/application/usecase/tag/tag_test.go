package tag

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeBookRepo struct {
	books map[uuid.UUID]*entity.Book
}

func newFakeBookRepo(books ...*entity.Book) *fakeBookRepo {
	repo := &fakeBookRepo{books: make(map[uuid.UUID]*entity.Book)}
	for _, b := range books {
		repo.books[b.ID] = b
	}
	return repo
}

func (r *fakeBookRepo) Create(_ context.Context, book *entity.Book) error {
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uuid.UUID, includeDeleted bool) (*entity.Book, error) {
	book, ok := r.books[id]
	if !ok || (book.IsDeleted && !includeDeleted) {
		return nil, nil
	}
	return book, nil
}

func (r *fakeBookRepo) FindByMember(_ context.Context, _ uuid.UUID, _ bool) ([]*entity.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) FindByOwner(_ context.Context, _ uuid.UUID, _ bool) ([]*entity.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) FindDeletedBefore(_ context.Context, _ time.Time) ([]*entity.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *entity.Book) error {
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	delete(r.books, id)
	return nil
}

type fakeTagRepo struct {
	tags map[uuid.UUID]*entity.Tag
}

func newFakeTagRepo(tags ...*entity.Tag) *fakeTagRepo {
	repo := &fakeTagRepo{tags: make(map[uuid.UUID]*entity.Tag)}
	for _, tg := range tags {
		repo.tags[tg.ID] = tg
	}
	return repo
}

func (r *fakeTagRepo) Create(_ context.Context, tag *entity.Tag) error {
	r.tags[tag.ID] = tag
	return nil
}

func (r *fakeTagRepo) FindByID(_ context.Context, id uuid.UUID, includeDeleted bool) (*entity.Tag, error) {
	tag, ok := r.tags[id]
	if !ok || (tag.IsDeleted && !includeDeleted) {
		return nil, nil
	}
	return tag, nil
}

func (r *fakeTagRepo) FindByBook(_ context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, tg := range r.tags {
		if tg.BookID == bookID && (includeDeleted || !tg.IsDeleted) {
			out = append(out, tg)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) Update(_ context.Context, tag *entity.Tag) error {
	r.tags[tag.ID] = tag
	return nil
}

func (r *fakeTagRepo) HardDeleteByBook(_ context.Context, bookID uuid.UUID) error {
	for id, tg := range r.tags {
		if tg.BookID == bookID {
			delete(r.tags, id)
		}
	}
	return nil
}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return testNow }

var _ adapter.BookRepository = (*fakeBookRepo)(nil)
var _ adapter.TagRepository = (*fakeTagRepo)(nil)

func TestArchivedBookGuards(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	b := entity.NewBook("Household", owner)
	b.IsArchived = true
	tag := entity.NewTag(b.ID, "travel")
	bookRepo := newFakeBookRepo(b)
	tagRepo := newFakeTagRepo(tag)

	t.Run("create is rejected", func(t *testing.T) {
		uc := NewCreateTagUseCase(bookRepo, tagRepo)
		_, err := uc.Execute(ctx, CreateTagInput{
			BookID:      b.ID,
			RequesterID: owner,
			Name:        "work",
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
		if len(tagRepo.tags) != 1 {
			t.Error("expected nothing persisted on an archived book")
		}
	})

	t.Run("update is rejected", func(t *testing.T) {
		uc := NewUpdateTagUseCase(bookRepo, tagRepo, fakeClock{})
		_, err := uc.Execute(ctx, UpdateTagInput{
			BookID:      b.ID,
			TagID:       tag.ID,
			RequesterID: owner,
			Name:        "vacation",
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})

	t.Run("delete is rejected", func(t *testing.T) {
		uc := NewDeleteTagUseCase(bookRepo, tagRepo, fakeClock{})
		_, err := uc.Execute(ctx, DeleteTagInput{
			BookID:      b.ID,
			TagID:       tag.ID,
			RequesterID: owner,
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
		if tag.IsDeleted {
			t.Error("expected the tag untouched")
		}
	})

	t.Run("list still works", func(t *testing.T) {
		uc := NewListTagsUseCase(bookRepo, tagRepo)
		out, err := uc.Execute(ctx, ListTagsInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tags) != 1 {
			t.Errorf("expected 1 tag, got %d", len(out.Tags))
		}
	})
}
