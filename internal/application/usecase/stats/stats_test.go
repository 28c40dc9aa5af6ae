package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func txn(book *entity.Book, account *entity.Account, category *entity.Category, amount string, typ entity.TransactionType, on time.Time) *entity.Transaction {
	return entity.NewTransaction(
		book.ID, account.ID, category.ID,
		decimal.RequireFromString(amount), typ, on, "", book.OwnerID,
	)
}

func TestAggregate(t *testing.T) {
	owner := uuid.New()

	newFixture := func() (*entity.Book, *entity.Account, *entity.Account, *entity.Category, *entity.Category) {
		book := entity.NewBook("Household", owner)
		// USD trades at 7 units per base unit.
		book.FindCurrency("USD").Rate = decimal.NewFromInt(7)
		cny := entity.NewAccount(book.ID, "Cash", "CNY", decimal.Zero)
		usd := entity.NewAccount(book.ID, "Card", "USD", decimal.Zero)
		salary := entity.NewCategory(book.ID, "Salary", entity.CategoryTypeIncome)
		food := entity.NewCategory(book.ID, "Food", entity.CategoryTypeExpense)
		return book, cny, usd, salary, food
	}

	t.Run("totals convert to base currency", func(t *testing.T) {
		book, cny, usd, salary, food := newFixture()
		transactions := []*entity.Transaction{
			txn(book, cny, salary, "1000", entity.TransactionTypeIncome, date(2025, 3, 1)),
			txn(book, usd, salary, "700", entity.TransactionTypeIncome, date(2025, 3, 2)),
			txn(book, cny, food, "200", entity.TransactionTypeExpense, date(2025, 3, 3)),
		}

		rep, err := aggregate(book, []*entity.Account{cny, usd}, []*entity.Category{salary, food}, transactions, "2006-01-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1000 CNY + 700/7 USD = 1100 base units.
		if !rep.TotalIncome.Equal(decimal.NewFromInt(1100)) {
			t.Errorf("expected income 1100, got %s", rep.TotalIncome)
		}
		if !rep.TotalExpense.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected expense 200, got %s", rep.TotalExpense)
		}
		if !rep.NetIncome.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected net 900, got %s", rep.NetIncome)
		}
	})

	t.Run("account stats carry raw and converted totals", func(t *testing.T) {
		book, cny, usd, salary, food := newFixture()
		transactions := []*entity.Transaction{
			txn(book, usd, salary, "700", entity.TransactionTypeIncome, date(2025, 3, 2)),
		}

		rep, err := aggregate(book, []*entity.Account{cny, usd}, []*entity.Category{salary, food}, transactions, "2006-01-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var usdStat *AccountStat
		for i := range rep.AccountStats {
			if rep.AccountStats[i].AccountID == usd.ID {
				usdStat = &rep.AccountStats[i]
			}
		}
		if usdStat == nil {
			t.Fatal("missing USD account stat")
		}
		if !usdStat.Income.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected raw income 700, got %s", usdStat.Income)
		}
		if !usdStat.IncomeBase.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected converted income 100, got %s", usdStat.IncomeBase)
		}
	})

	t.Run("category buckets require a matching type", func(t *testing.T) {
		book, cny, _, salary, food := newFixture()
		transactions := []*entity.Transaction{
			txn(book, cny, salary, "1000", entity.TransactionTypeIncome, date(2025, 3, 1)),
			// Miscategorized: an expense pointing at an income category.
			txn(book, cny, salary, "50", entity.TransactionTypeExpense, date(2025, 3, 2)),
		}

		rep, err := aggregate(book, []*entity.Account{cny}, []*entity.Category{salary, food}, transactions, "2006-01-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var salaryStat *CategoryStat
		for i := range rep.CategoryStats {
			if rep.CategoryStats[i].CategoryID == salary.ID {
				salaryStat = &rep.CategoryStats[i]
			}
		}
		if salaryStat == nil {
			t.Fatal("missing salary category stat")
		}
		if !salaryStat.Total.Equal(decimal.NewFromInt(1000)) || salaryStat.Count != 1 {
			t.Errorf("expected only the matching transaction bucketed, got %s over %d", salaryStat.Total, salaryStat.Count)
		}
		// The mismatched expense still counts toward the book totals.
		if !rep.TotalExpense.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected expense 50, got %s", rep.TotalExpense)
		}
	})

	t.Run("loan transactions stay out of totals and date buckets", func(t *testing.T) {
		book, cny, _, salary, food := newFixture()
		loans := entity.NewCategory(book.ID, "Loans", entity.CategoryTypeLoan)
		transactions := []*entity.Transaction{
			txn(book, cny, loans, "400", entity.TransactionTypeLoan, date(2025, 3, 1)),
		}

		rep, err := aggregate(book, []*entity.Account{cny}, []*entity.Category{salary, food, loans}, transactions, "2006-01-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rep.TotalIncome.IsZero() || !rep.TotalExpense.IsZero() {
			t.Errorf("expected zero totals, got income %s expense %s", rep.TotalIncome, rep.TotalExpense)
		}
		if len(rep.DateStats) != 0 {
			t.Errorf("expected no date buckets, got %d", len(rep.DateStats))
		}
		// The loan still lands in its own category bucket.
		for _, cs := range rep.CategoryStats {
			if cs.CategoryID == loans.ID && !cs.Total.Equal(decimal.NewFromInt(400)) {
				t.Errorf("expected loan bucket 400, got %s", cs.Total)
			}
		}
	})

	t.Run("date buckets sort ascending", func(t *testing.T) {
		book, cny, _, salary, food := newFixture()
		transactions := []*entity.Transaction{
			txn(book, cny, food, "10", entity.TransactionTypeExpense, date(2025, 3, 15)),
			txn(book, cny, salary, "100", entity.TransactionTypeIncome, date(2025, 3, 1)),
			txn(book, cny, food, "20", entity.TransactionTypeExpense, date(2025, 3, 8)),
		}

		rep, err := aggregate(book, []*entity.Account{cny}, []*entity.Category{salary, food}, transactions, "2006-01-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"2025-03-01", "2025-03-08", "2025-03-15"}
		if len(rep.DateStats) != len(want) {
			t.Fatalf("expected %d buckets, got %d", len(want), len(rep.DateStats))
		}
		for i, b := range want {
			if rep.DateStats[i].Bucket != b {
				t.Errorf("bucket %d: expected %s, got %s", i, b, rep.DateStats[i].Bucket)
			}
		}
	})

	t.Run("monthly format folds days into months", func(t *testing.T) {
		book, cny, _, salary, food := newFixture()
		transactions := []*entity.Transaction{
			txn(book, cny, salary, "100", entity.TransactionTypeIncome, date(2025, 3, 1)),
			txn(book, cny, salary, "200", entity.TransactionTypeIncome, date(2025, 3, 28)),
			txn(book, cny, food, "30", entity.TransactionTypeExpense, date(2025, 4, 2)),
		}

		rep, err := aggregate(book, []*entity.Account{cny}, []*entity.Category{salary, food}, transactions, "2006-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rep.DateStats) != 2 {
			t.Fatalf("expected 2 month buckets, got %d", len(rep.DateStats))
		}
		march := rep.DateStats[0]
		if march.Bucket != "2025-03" || !march.Income.Equal(decimal.NewFromInt(300)) {
			t.Errorf("unexpected march bucket: %+v", march)
		}
	})

	t.Run("deleted transactions are excluded", func(t *testing.T) {
		book, cny, _, salary, food := newFixture()
		deleted := txn(book, cny, salary, "500", entity.TransactionTypeIncome, date(2025, 3, 1))
		deleted.IsDeleted = true

		rep, err := aggregate(book, []*entity.Account{cny}, []*entity.Category{salary, food}, []*entity.Transaction{deleted}, "2006-01-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rep.TotalIncome.IsZero() {
			t.Errorf("expected zero income, got %s", rep.TotalIncome)
		}
	})

	t.Run("unknown account currency is an integrity failure", func(t *testing.T) {
		book, _, _, salary, food := newFixture()
		orphan := entity.NewAccount(book.ID, "Legacy", "EUR", decimal.Zero)
		transactions := []*entity.Transaction{
			txn(book, orphan, salary, "10", entity.TransactionTypeIncome, date(2025, 3, 1)),
		}

		_, err := aggregate(book, []*entity.Account{orphan}, []*entity.Category{salary, food}, transactions, "2006-01-02")
		if !domainerror.IsKind(err, domainerror.KindIntegrity) {
			t.Errorf("expected Integrity, got %v", err)
		}
	})
}
