package person

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

type fakePersonRepo struct {
	persons map[uuid.UUID]*entity.Person
}

func newFakePersonRepo(persons ...*entity.Person) *fakePersonRepo {
	repo := &fakePersonRepo{persons: make(map[uuid.UUID]*entity.Person)}
	for _, p := range persons {
		repo.persons[p.ID] = p
	}
	return repo
}

func (r *fakePersonRepo) Create(_ context.Context, person *entity.Person) error {
	r.persons[person.ID] = person
	return nil
}

func (r *fakePersonRepo) FindByID(_ context.Context, id uuid.UUID, includeDeleted bool) (*entity.Person, error) {
	person, ok := r.persons[id]
	if !ok || (person.IsDeleted && !includeDeleted) {
		return nil, nil
	}
	return person, nil
}

func (r *fakePersonRepo) FindByBook(_ context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Person, error) {
	var out []*entity.Person
	for _, p := range r.persons {
		if p.BookID == bookID && (includeDeleted || !p.IsDeleted) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePersonRepo) Update(_ context.Context, person *entity.Person) error {
	r.persons[person.ID] = person
	return nil
}

func (r *fakePersonRepo) HardDeleteByBook(_ context.Context, bookID uuid.UUID) error {
	for id, p := range r.persons {
		if p.BookID == bookID {
			delete(r.persons, id)
		}
	}
	return nil
}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return testNow }

var _ adapter.BookRepository = (*fakeBookRepo)(nil)
var _ adapter.PersonRepository = (*fakePersonRepo)(nil)

func TestArchivedBookGuards(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	b := entity.NewBook("Household", owner)
	b.IsArchived = true
	person := entity.NewPerson(b.ID, "Alice")
	bookRepo := newFakeBookRepo(b)
	personRepo := newFakePersonRepo(person)

	t.Run("create is rejected", func(t *testing.T) {
		uc := NewCreatePersonUseCase(bookRepo, personRepo)
		_, err := uc.Execute(ctx, CreatePersonInput{
			BookID:      b.ID,
			RequesterID: owner,
			Name:        "Bob",
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
		if len(personRepo.persons) != 1 {
			t.Error("expected nothing persisted on an archived book")
		}
	})

	t.Run("update is rejected", func(t *testing.T) {
		uc := NewUpdatePersonUseCase(bookRepo, personRepo, fakeClock{})
		_, err := uc.Execute(ctx, UpdatePersonInput{
			BookID:      b.ID,
			PersonID:    person.ID,
			RequesterID: owner,
			Name:        "Alicia",
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})

	t.Run("delete is rejected", func(t *testing.T) {
		uc := NewDeletePersonUseCase(bookRepo, personRepo, fakeClock{})
		_, err := uc.Execute(ctx, DeletePersonInput{
			BookID:      b.ID,
			PersonID:    person.ID,
			RequesterID: owner,
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
		if person.IsDeleted {
			t.Error("expected the person untouched")
		}
	})

	t.Run("list still works", func(t *testing.T) {
		uc := NewListPersonsUseCase(bookRepo, personRepo)
		out, err := uc.Execute(ctx, ListPersonsInput{BookID: b.ID, RequesterID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Persons) != 1 {
			t.Errorf("expected 1 person, got %d", len(out.Persons))
		}
	})
}
