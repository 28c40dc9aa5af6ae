// Package stats contains reporting use cases.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/permission"
)

// MonthlyStatsInput represents the input for the monthly breakdown.
type MonthlyStatsInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

// MonthlyStatsOutput represents the monthly breakdown: totals in base
// currency plus per-month buckets sorted ascending.
type MonthlyStatsOutput struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetIncome    decimal.Decimal
	MonthStats   []DateStat
}

// MonthlyStatsUseCase produces the monthly breakdown report.
type MonthlyStatsUseCase struct {
	bookRepo        adapter.BookRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewMonthlyStatsUseCase creates a new MonthlyStatsUseCase instance.
func NewMonthlyStatsUseCase(
	bookRepo adapter.BookRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *MonthlyStatsUseCase {
	return &MonthlyStatsUseCase{
		bookRepo:        bookRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the monthly breakdown. Requires membership.
func (uc *MonthlyStatsUseCase) Execute(ctx context.Context, input MonthlyStatsInput) (*MonthlyStatsOutput, error) {
	book, err := findBook(ctx, uc.bookRepo, input.BookID)
	if err != nil {
		return nil, err
	}

	if err := permission.Authorize(book, input.RequesterID, permission.OpReadBook); err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.FindByBook(ctx, book.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	categories, err := uc.categoryRepo.FindByBook(ctx, book.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, dateRangeFilter(book.ID, input.StartDate, input.EndDate))
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	rep, err := aggregate(book, accounts, categories, transactions, "2006-01")
	if err != nil {
		return nil, err
	}

	return &MonthlyStatsOutput{
		TotalIncome:  rep.TotalIncome,
		TotalExpense: rep.TotalExpense,
		NetIncome:    rep.NetIncome,
		MonthStats:   rep.DateStats,
	}, nil
}
