package book

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
)

// fakeBookRepo is an in-memory BookRepository for unit tests.
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

func (r *fakeBookRepo) FindByMember(_ context.Context, userID uuid.UUID, includeDeleted bool) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, b := range r.books {
		if b.IsDeleted && !includeDeleted {
			continue
		}
		if b.OwnerID == userID || b.IsMember(userID) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) FindByOwner(_ context.Context, ownerID uuid.UUID, includeDeleted bool) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, b := range r.books {
		if b.IsDeleted && !includeDeleted {
			continue
		}
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) FindDeletedBefore(_ context.Context, cutoff time.Time) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, b := range r.books {
		if b.IsDeleted && b.DeletedAt != nil && !b.DeletedAt.After(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *entity.Book) error {
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	delete(r.books, id)
	return nil
}

// fakeUserRepo is an in-memory UserRepository covering what the book use
// cases need.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID, includeDeleted bool) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok || (user.IsDeleted && !includeDeleted) {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string, includeDeleted bool) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			if u.IsDeleted && !includeDeleted {
				return nil, nil
			}
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindDeletedBefore(_ context.Context, cutoff time.Time) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.IsDeleted && u.DeletedAt != nil && !u.DeletedAt.After(cutoff) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

// fakeClock returns a fixed instant.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// fakeEventSink records published events.
type fakeEventSink struct {
	events []adapter.Event
}

func (s *fakeEventSink) Publish(_ context.Context, event adapter.Event) error {
	s.events = append(s.events, event)
	return nil
}

// fakeTxManager runs the function directly; the fakes have no transactions.
type fakeTxManager struct{}

func (m *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ adapter.BookRepository = (*fakeBookRepo)(nil)
var _ adapter.UserRepository = (*fakeUserRepo)(nil)
var _ adapter.Clock = (*fakeClock)(nil)
var _ adapter.EventSink = (*fakeEventSink)(nil)
var _ adapter.TxManager = (*fakeTxManager)(nil)
