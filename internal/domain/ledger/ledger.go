// Package ledger computes per-account balances and converts amounts between
// a book's registered currencies and its base currency. All functions are
// pure; callers supply a consistent snapshot of the transactions involved.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

// ComputeAccountBalance sums the account's non-deleted transactions by type.
// Loan transactions are tracked but never affect the balance: they belong to
// neither the income nor the expense sum.
//
//	currentBalance = initialBalance + totalIncome - totalExpense
func ComputeAccountBalance(account *entity.Account, transactions []*entity.Transaction) entity.BalanceSummary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, txn := range transactions {
		if txn.IsDeleted || txn.AccountID != account.ID {
			continue
		}
		switch txn.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(txn.Amount)
		}
	}

	return entity.BalanceSummary{
		CurrentBalance: account.InitialBalance.Add(income).Sub(expense),
		TotalIncome:    income,
		TotalExpense:   expense,
	}
}

// ToBaseCurrency converts amount from the given currency into the book's
// base currency. The rate of a currency is the number of its units per one
// unit of the base currency, so conversion divides by the rate. The default
// currency converts to itself regardless of any stored rate value.
//
// An unregistered code is a data-integrity failure: conversion never falls
// back to rate 1, since silently assuming parity would misstate statistics.
func ToBaseCurrency(amount decimal.Decimal, currencyCode string, book *entity.Book) (decimal.Decimal, error) {
	if currencyCode == book.DefaultCurrency {
		return amount, nil
	}

	cur := book.FindCurrency(currencyCode)
	if cur == nil {
		return decimal.Zero, domainerror.NewCurrencyError(
			domainerror.KindIntegrity,
			domainerror.ErrCodeCurrencyIntegrity,
			"currency "+currencyCode+" is not registered on book "+book.ID.String(),
			domainerror.ErrCurrencyNotFound,
		)
	}

	// Rates are validated positive at write time; a non-positive stored rate
	// is corrupt data and must surface, not divide by zero.
	if !cur.Rate.IsPositive() {
		return decimal.Zero, domainerror.NewCurrencyError(
			domainerror.KindIntegrity,
			domainerror.ErrCodeCurrencyIntegrity,
			"currency "+currencyCode+" has a non-positive stored rate",
			domainerror.ErrInvalidCurrencyRate,
		)
	}

	return amount.Div(cur.Rate), nil
}
