// Package stats contains reporting use cases. All monetary aggregation runs
// in the book's base currency.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/domain/ledger"
)

// AccountStat aggregates one account's activity. Income and Expense are in
// the account's native currency; IncomeBase and ExpenseBase are converted.
type AccountStat struct {
	AccountID   uuid.UUID
	Name        string
	Currency    string
	Income      decimal.Decimal
	Expense     decimal.Decimal
	IncomeBase  decimal.Decimal
	ExpenseBase decimal.Decimal
}

// CategoryStat aggregates one category's activity in base currency. A
// transaction only lands in a category bucket when its type matches the
// category's declared type.
type CategoryStat struct {
	CategoryID uuid.UUID
	Name       string
	Type       entity.CategoryType
	Total      decimal.Decimal
	Count      int
}

// DateStat aggregates one date bucket in base currency. Bucket is either a
// day ("2006-01-02") or a month ("2006-01").
type DateStat struct {
	Bucket  string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// report is the shared aggregate shape produced by both stats use cases.
type report struct {
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	NetIncome     decimal.Decimal
	AccountStats  []AccountStat
	CategoryStats []CategoryStat
	DateStats     []DateStat
}

// findBook loads a live book or reports NotFound.
func findBook(ctx context.Context, repo adapter.BookRepository, id uuid.UUID) (*entity.Book, error) {
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
	return book, nil
}

// aggregate folds the transaction snapshot into account, category and date
// buckets. bucketFormat selects daily or monthly date buckets. An account
// currency missing from the book surfaces as an Integrity error.
func aggregate(
	book *entity.Book,
	accounts []*entity.Account,
	categories []*entity.Category,
	transactions []*entity.Transaction,
	bucketFormat string,
) (*report, error) {
	accountByID := make(map[uuid.UUID]*entity.Account, len(accounts))
	accountStats := make(map[uuid.UUID]*AccountStat, len(accounts))
	for _, a := range accounts {
		accountByID[a.ID] = a
		accountStats[a.ID] = &AccountStat{
			AccountID:   a.ID,
			Name:        a.Name,
			Currency:    a.Currency,
			Income:      decimal.Zero,
			Expense:     decimal.Zero,
			IncomeBase:  decimal.Zero,
			ExpenseBase: decimal.Zero,
		}
	}

	categoryByID := make(map[uuid.UUID]*entity.Category, len(categories))
	categoryStats := make(map[uuid.UUID]*CategoryStat, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
		categoryStats[c.ID] = &CategoryStat{
			CategoryID: c.ID,
			Name:       c.Name,
			Type:       c.Type,
			Total:      decimal.Zero,
		}
	}

	dateStats := make(map[string]*DateStat)

	rep := &report{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, txn := range transactions {
		if txn.IsDeleted {
			continue
		}

		account, ok := accountByID[txn.AccountID]
		if !ok {
			continue
		}

		converted, err := ledger.ToBaseCurrency(txn.Amount, account.Currency, book)
		if err != nil {
			return nil, err
		}

		as := accountStats[txn.AccountID]
		switch txn.Type {
		case entity.TransactionTypeIncome:
			as.Income = as.Income.Add(txn.Amount)
			as.IncomeBase = as.IncomeBase.Add(converted)
			rep.TotalIncome = rep.TotalIncome.Add(converted)
		case entity.TransactionTypeExpense:
			as.Expense = as.Expense.Add(txn.Amount)
			as.ExpenseBase = as.ExpenseBase.Add(converted)
			rep.TotalExpense = rep.TotalExpense.Add(converted)
		}

		if category, ok := categoryByID[txn.CategoryID]; ok {
			// Consistency guard against miscategorized rows: a bucket only
			// grows when the transaction type matches the category type.
			if entity.CategoryType(txn.Type) == category.Type {
				cs := categoryStats[txn.CategoryID]
				cs.Total = cs.Total.Add(converted)
				cs.Count++
			}
		}

		if txn.Type == entity.TransactionTypeIncome || txn.Type == entity.TransactionTypeExpense {
			bucket := txn.Date.Format(bucketFormat)
			ds, ok := dateStats[bucket]
			if !ok {
				ds = &DateStat{Bucket: bucket, Income: decimal.Zero, Expense: decimal.Zero}
				dateStats[bucket] = ds
			}
			if txn.Type == entity.TransactionTypeIncome {
				ds.Income = ds.Income.Add(converted)
			} else {
				ds.Expense = ds.Expense.Add(converted)
			}
		}
	}

	rep.NetIncome = rep.TotalIncome.Sub(rep.TotalExpense)

	for _, a := range accounts {
		rep.AccountStats = append(rep.AccountStats, *accountStats[a.ID])
	}
	for _, c := range categories {
		rep.CategoryStats = append(rep.CategoryStats, *categoryStats[c.ID])
	}
	for _, ds := range dateStats {
		rep.DateStats = append(rep.DateStats, *ds)
	}
	sort.Slice(rep.DateStats, func(i, j int) bool {
		return rep.DateStats[i].Bucket < rep.DateStats[j].Bucket
	})

	return rep, nil
}

// dateRangeFilter builds the snapshot filter for an optional date range.
func dateRangeFilter(bookID uuid.UUID, start, end *time.Time) adapter.TransactionFilter {
	return adapter.TransactionFilter{
		BookID:    bookID,
		StartDate: start,
		EndDate:   end,
	}
}
