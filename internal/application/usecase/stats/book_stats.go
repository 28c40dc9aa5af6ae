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

// BookStatsInput represents the input for the general book report.
type BookStatsInput struct {
	BookID      uuid.UUID
	RequesterID uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

// BookStatsOutput represents the general book report: totals in base
// currency, plus per-account, per-category and per-day buckets.
type BookStatsOutput struct {
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	NetIncome     decimal.Decimal
	AccountStats  []AccountStat
	CategoryStats []CategoryStat
	DateStats     []DateStat
}

// BookStatsUseCase produces the general book report with daily date buckets.
type BookStatsUseCase struct {
	bookRepo        adapter.BookRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewBookStatsUseCase creates a new BookStatsUseCase instance.
func NewBookStatsUseCase(
	bookRepo adapter.BookRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *BookStatsUseCase {
	return &BookStatsUseCase{
		bookRepo:        bookRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the report from a single transaction snapshot. Requires
// membership.
func (uc *BookStatsUseCase) Execute(ctx context.Context, input BookStatsInput) (*BookStatsOutput, error) {
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

	rep, err := aggregate(book, accounts, categories, transactions, "2006-01-02")
	if err != nil {
		return nil, err
	}

	return &BookStatsOutput{
		TotalIncome:   rep.TotalIncome,
		TotalExpense:  rep.TotalExpense,
		NetIncome:     rep.NetIncome,
		AccountStats:  rep.AccountStats,
		CategoryStats: rep.CategoryStats,
		DateStats:     rep.DateStats,
	}, nil
}
