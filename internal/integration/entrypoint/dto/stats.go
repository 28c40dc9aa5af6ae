// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/moneybook/backend/internal/application/usecase/stats"

// AccountStatResponse represents one account's aggregated activity. Raw
// figures are in the account's currency, base figures in the book's base
// currency.
type AccountStatResponse struct {
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	Currency    string `json:"currency"`
	Income      string `json:"income"`
	Expense     string `json:"expense"`
	IncomeBase  string `json:"income_base"`
	ExpenseBase string `json:"expense_base"`
}

// CategoryStatResponse represents one category's aggregated activity in base
// currency.
type CategoryStatResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Total      string `json:"total"`
	Count      int    `json:"count"`
}

// DateStatResponse represents one date bucket in base currency.
type DateStatResponse struct {
	Bucket  string `json:"bucket"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// BookStatsResponse represents the general book report.
type BookStatsResponse struct {
	TotalIncome   string                 `json:"total_income"`
	TotalExpense  string                 `json:"total_expense"`
	NetIncome     string                 `json:"net_income"`
	AccountStats  []AccountStatResponse  `json:"account_stats"`
	CategoryStats []CategoryStatResponse `json:"category_stats"`
	DateStats     []DateStatResponse     `json:"date_stats"`
}

// MonthlyStatsResponse represents the monthly breakdown report.
type MonthlyStatsResponse struct {
	TotalIncome  string             `json:"total_income"`
	TotalExpense string             `json:"total_expense"`
	NetIncome    string             `json:"net_income"`
	MonthStats   []DateStatResponse `json:"month_stats"`
}

// ToBookStatsResponse converts a book stats output to its DTO.
func ToBookStatsResponse(out *stats.BookStatsOutput) BookStatsResponse {
	accounts := make([]AccountStatResponse, 0, len(out.AccountStats))
	for _, s := range out.AccountStats {
		accounts = append(accounts, AccountStatResponse{
			AccountID:   s.AccountID.String(),
			Name:        s.Name,
			Currency:    s.Currency,
			Income:      s.Income.String(),
			Expense:     s.Expense.String(),
			IncomeBase:  s.IncomeBase.String(),
			ExpenseBase: s.ExpenseBase.String(),
		})
	}

	categories := make([]CategoryStatResponse, 0, len(out.CategoryStats))
	for _, s := range out.CategoryStats {
		categories = append(categories, CategoryStatResponse{
			CategoryID: s.CategoryID.String(),
			Name:       s.Name,
			Type:       string(s.Type),
			Total:      s.Total.String(),
			Count:      s.Count,
		})
	}

	return BookStatsResponse{
		TotalIncome:   out.TotalIncome.String(),
		TotalExpense:  out.TotalExpense.String(),
		NetIncome:     out.NetIncome.String(),
		AccountStats:  accounts,
		CategoryStats: categories,
		DateStats:     toDateStatResponses(out.DateStats),
	}
}

// ToMonthlyStatsResponse converts a monthly stats output to its DTO.
func ToMonthlyStatsResponse(out *stats.MonthlyStatsOutput) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		TotalIncome:  out.TotalIncome.String(),
		TotalExpense: out.TotalExpense.String(),
		NetIncome:    out.NetIncome.String(),
		MonthStats:   toDateStatResponses(out.MonthStats),
	}
}

func toDateStatResponses(in []stats.DateStat) []DateStatResponse {
	buckets := make([]DateStatResponse, 0, len(in))
	for _, s := range in {
		buckets = append(buckets, DateStatResponse{
			Bucket:  s.Bucket,
			Income:  s.Income.String(),
			Expense: s.Expense.String(),
		})
	}
	return buckets
}
