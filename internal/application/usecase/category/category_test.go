package category

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

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID, includeDeleted bool) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || (category.IsDeleted && !includeDeleted) {
		return nil, nil
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByBook(_ context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.BookID == bookID && (includeDeleted || !c.IsDeleted) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) HardDeleteByBook(_ context.Context, bookID uuid.UUID) error {
	for id, c := range r.categories {
		if c.BookID == bookID {
			delete(r.categories, id)
		}
	}
	return nil
}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return testNow }

var _ adapter.BookRepository = (*fakeBookRepo)(nil)
var _ adapter.CategoryRepository = (*fakeCategoryRepo)(nil)

func TestArchivedBookGuards(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	b := entity.NewBook("Household", owner)
	b.IsArchived = true
	category := entity.NewCategory(b.ID, "Food", entity.CategoryTypeExpense)
	bookRepo := newFakeBookRepo(b)
	categoryRepo := newFakeCategoryRepo(category)

	t.Run("create is rejected", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(bookRepo, categoryRepo)
		_, err := uc.Execute(ctx, CreateCategoryInput{
			BookID:      b.ID,
			RequesterID: owner,
			Name:        "Salary",
			Type:        entity.CategoryTypeIncome,
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
		if len(categoryRepo.categories) != 1 {
			t.Error("expected nothing persisted on an archived book")
		}
	})

	t.Run("update is rejected", func(t *testing.T) {
		uc := NewUpdateCategoryUseCase(bookRepo, categoryRepo, fakeClock{})
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			BookID:      b.ID,
			CategoryID:  category.ID,
			RequesterID: owner,
			Name:        "Groceries",
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})

	t.Run("delete is rejected", func(t *testing.T) {
		uc := NewDeleteCategoryUseCase(bookRepo, categoryRepo, fakeClock{})
		_, err := uc.Execute(ctx, DeleteCategoryInput{
			BookID:      b.ID,
			CategoryID:  category.ID,
			RequesterID: owner,
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
		if category.IsDeleted {
			t.Error("expected the category untouched")
		}
	})

	t.Run("list still works", func(t *testing.T) {
		uc := NewListCategoriesUseCase(bookRepo, categoryRepo)
		out, err := uc.Execute(ctx, ListCategoriesInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 1 {
			t.Errorf("expected 1 category, got %d", len(out.Categories))
		}
	})
}
