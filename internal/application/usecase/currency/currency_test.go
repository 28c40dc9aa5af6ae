package currency

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

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

// fakeAccountRepo only answers the currency-in-use check.
type fakeAccountRepo struct {
	inUse map[string]bool
}

func (r *fakeAccountRepo) Create(_ context.Context, _ *entity.Account) error { return nil }
func (r *fakeAccountRepo) FindByID(_ context.Context, _ uuid.UUID, _ bool) (*entity.Account, error) {
	return nil, nil
}
func (r *fakeAccountRepo) FindByBook(_ context.Context, _ uuid.UUID, _ bool) ([]*entity.Account, error) {
	return nil, nil
}
func (r *fakeAccountRepo) Update(_ context.Context, _ *entity.Account) error { return nil }
func (r *fakeAccountRepo) ExistsByBookAndCurrency(_ context.Context, _ uuid.UUID, code string) (bool, error) {
	return r.inUse[code], nil
}
func (r *fakeAccountRepo) HardDeleteByBook(_ context.Context, _ uuid.UUID) error { return nil }

type fakeClock struct{}

func (fakeClock) Now() time.Time { return testNow }

var _ adapter.BookRepository = (*fakeBookRepo)(nil)
var _ adapter.AccountRepository = (*fakeAccountRepo)(nil)

func TestAddCurrency(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("adds a currency with a positive rate", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewAddCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		out, err := uc.Execute(ctx, AddCurrencyInput{
			BookID:      b.ID,
			RequesterID: owner,
			Code:        "eur",
			Name:        "Euro",
			Symbol:      "€",
			Rate:        decimal.RequireFromString("0.13"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cur := out.Book.FindCurrency("EUR")
		if cur == nil {
			t.Fatal("expected EUR registered with an uppercased code")
		}
		if !cur.Rate.Equal(decimal.RequireFromString("0.13")) {
			t.Errorf("unexpected rate %s", cur.Rate)
		}
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewAddCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		_, err := uc.Execute(ctx, AddCurrencyInput{
			BookID:      b.ID,
			RequesterID: owner,
			Code:        "USD",
			Name:        "US Dollar",
			Rate:        decimal.NewFromInt(7),
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})

	t.Run("non-positive rate is rejected", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewAddCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
			_, err := uc.Execute(ctx, AddCurrencyInput{
				BookID:      b.ID,
				RequesterID: owner,
				Code:        "EUR",
				Name:        "Euro",
				Rate:        rate,
			})
			if !domainerror.IsKind(err, domainerror.KindValidation) {
				t.Errorf("rate %s: expected Validation, got %v", rate, err)
			}
		}
	})

	t.Run("editor cannot manage currencies", func(t *testing.T) {
		editor := uuid.New()
		b := entity.NewBook("Household", owner)
		b.AddMember(editor)
		b.MemberPermissions = append(b.MemberPermissions, entity.MemberPermission{
			UserID: editor, Role: entity.RoleEditor, GrantedAt: testNow, GrantedBy: owner,
		})
		uc := NewAddCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		_, err := uc.Execute(ctx, AddCurrencyInput{
			BookID:      b.ID,
			RequesterID: editor,
			Code:        "EUR",
			Name:        "Euro",
			Rate:        decimal.NewFromInt(1),
		})
		if !domainerror.IsKind(err, domainerror.KindForbidden) {
			t.Errorf("expected Forbidden, got %v", err)
		}
	})
}

func TestUpdateCurrency(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("reprices a non-default currency", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewUpdateCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		out, err := uc.Execute(ctx, UpdateCurrencyInput{
			BookID:      b.ID,
			RequesterID: owner,
			Code:        "USD",
			Rate:        decimal.NewFromInt(7),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Book.FindCurrency("USD").Rate.Equal(decimal.NewFromInt(7)) {
			t.Error("expected USD repriced to 7")
		}
	})

	t.Run("the default currency cannot be repriced", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewUpdateCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		_, err := uc.Execute(ctx, UpdateCurrencyInput{
			BookID:      b.ID,
			RequesterID: owner,
			Code:        entity.DefaultBookCurrency,
			Rate:        decimal.NewFromInt(2),
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict, got %v", err)
		}
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewUpdateCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		_, err := uc.Execute(ctx, UpdateCurrencyInput{
			BookID:      b.ID,
			RequesterID: owner,
			Code:        "EUR",
			Rate:        decimal.NewFromInt(1),
		})
		if !domainerror.IsKind(err, domainerror.KindNotFound) {
			t.Errorf("expected NotFound, got %v", err)
		}
	})

	t.Run("the code is matched case-insensitively", func(t *testing.T) {
		b := entity.NewBook("Household", owner)
		uc := NewUpdateCurrencyUseCase(newFakeBookRepo(b), fakeClock{})

		out, err := uc.Execute(ctx, UpdateCurrencyInput{
			BookID:      b.ID,
			RequesterID: owner,
			Code:        "usd",
			Rate:        decimal.NewFromInt(7),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Book.FindCurrency("USD").Rate.Equal(decimal.NewFromInt(7)) {
			t.Error("expected USD repriced to 7")
		}

		_, err = uc.Execute(ctx, UpdateCurrencyInput{
			BookID:      b.ID,
			RequesterID: owner,
			Code:        "cny",
			Rate:        decimal.NewFromInt(2),
		})
		if !domainerror.IsKind(err, domainerror.KindConflict) {
			t.Errorf("expected Conflict for the default currency, got %v", err)
		}
	})
}

func TestDeleteCurrency(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	newBookWithEUR := func() *entity.Book {
		b := entity.NewBook("Household", owner)
		b.Currencies = append(b.Currencies, entity.Currency{
			Code: "EUR", Name: "Euro", Symbol: "€", Rate: decimal.RequireFromString("0.13"),
		})
		return b
	}

	t.Run("deletes a removable currency", func(t *testing.T) {
		b := newBookWithEUR()
		uc := NewDeleteCurrencyUseCase(newFakeBookRepo(b), &fakeAccountRepo{}, fakeClock{})

		out, err := uc.Execute(ctx, DeleteCurrencyInput{BookID: b.ID, RequesterID: owner, Code: "EUR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.FindCurrency("EUR") != nil {
			t.Error("expected EUR removed")
		}
	})

	t.Run("guards", func(t *testing.T) {
		tests := []struct {
			name  string
			code  string
			inUse map[string]bool
		}{
			{name: "default currency", code: entity.DefaultBookCurrency},
			{name: "lowercased default currency", code: "cny"},
			{name: "system currency", code: "THB"},
			{name: "lowercased system currency", code: "thb"},
			{name: "currency in use", code: "EUR", inUse: map[string]bool{"EUR": true}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := newBookWithEUR()
				uc := NewDeleteCurrencyUseCase(newFakeBookRepo(b), &fakeAccountRepo{inUse: tt.inUse}, fakeClock{})

				_, err := uc.Execute(ctx, DeleteCurrencyInput{BookID: b.ID, RequesterID: owner, Code: tt.code})
				if !domainerror.IsKind(err, domainerror.KindConflict) {
					t.Errorf("expected Conflict, got %v", err)
				}
				if b.FindCurrency(strings.ToUpper(tt.code)) == nil {
					t.Error("expected currency to remain registered")
				}
			})
		}
	})
}
