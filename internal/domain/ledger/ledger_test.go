// Package ledger computes per-account balances and currency conversion.
package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneybook/backend/internal/domain/entity"
	domainerror "github.com/moneybook/backend/internal/domain/error"
)

func txn(accountID uuid.UUID, amount int64, txnType entity.TransactionType) *entity.Transaction {
	return entity.NewTransaction(
		uuid.New(), accountID, uuid.New(),
		decimal.NewFromInt(amount), txnType,
		time.Now().UTC(), "", uuid.New(),
	)
}

func TestComputeAccountBalance(t *testing.T) {
	account := entity.NewAccount(uuid.New(), "checking", "CNY", decimal.NewFromInt(1000))

	t.Run("balance is initial plus income minus expense", func(t *testing.T) {
		txns := []*entity.Transaction{
			txn(account.ID, 500, entity.TransactionTypeIncome),
			txn(account.ID, 200, entity.TransactionTypeExpense),
		}

		summary := ComputeAccountBalance(account, txns)

		if !summary.CurrentBalance.Equal(decimal.NewFromInt(1300)) {
			t.Errorf("expected balance 1300, got %s", summary.CurrentBalance)
		}
		if !summary.TotalIncome.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected income 500, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpense.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected expense 200, got %s", summary.TotalExpense)
		}
	})

	t.Run("loan transactions never affect the sums", func(t *testing.T) {
		txns := []*entity.Transaction{
			txn(account.ID, 500, entity.TransactionTypeIncome),
			txn(account.ID, 9999, entity.TransactionTypeLoan),
		}

		summary := ComputeAccountBalance(account, txns)

		if !summary.CurrentBalance.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected balance 1500, got %s", summary.CurrentBalance)
		}
		if !summary.TotalIncome.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected income 500, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpense.IsZero() {
			t.Errorf("expected zero expense, got %s", summary.TotalExpense)
		}
	})

	t.Run("deleted transactions are excluded", func(t *testing.T) {
		deleted := txn(account.ID, 700, entity.TransactionTypeIncome)
		deleted.IsDeleted = true

		summary := ComputeAccountBalance(account, []*entity.Transaction{deleted})

		if !summary.CurrentBalance.Equal(account.InitialBalance) {
			t.Errorf("expected balance %s, got %s", account.InitialBalance, summary.CurrentBalance)
		}
	})

	t.Run("other accounts' transactions are excluded", func(t *testing.T) {
		other := txn(uuid.New(), 700, entity.TransactionTypeIncome)

		summary := ComputeAccountBalance(account, []*entity.Transaction{other})

		if !summary.CurrentBalance.Equal(account.InitialBalance) {
			t.Errorf("expected balance %s, got %s", account.InitialBalance, summary.CurrentBalance)
		}
	})
}

func TestToBaseCurrency(t *testing.T) {
	book := entity.NewBook("travel", uuid.New())
	// CNY base; USD rate 7 means seven USD units per one base unit.
	usd := book.FindCurrency("USD")
	usd.Rate = decimal.NewFromInt(7)

	t.Run("non-default currency divides by rate", func(t *testing.T) {
		got, err := ToBaseCurrency(decimal.NewFromInt(100), "USD", book)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := decimal.NewFromInt(100).Div(decimal.NewFromInt(7))
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("default currency returns amount unchanged regardless of stored rate", func(t *testing.T) {
		cny := book.FindCurrency("CNY")
		cny.Rate = decimal.NewFromInt(42) // stored rate for the default entry is ignored

		got, err := ToBaseCurrency(decimal.NewFromInt(250), "CNY", book)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected 250, got %s", got)
		}
	})

	t.Run("unknown currency is an integrity error, not rate 1", func(t *testing.T) {
		_, err := ToBaseCurrency(decimal.NewFromInt(10), "EUR", book)
		if err == nil {
			t.Fatal("expected error for unregistered currency")
		}
		if !domainerror.IsKind(err, domainerror.KindIntegrity) {
			t.Errorf("expected integrity kind, got %v", err)
		}
	})

	t.Run("non-positive stored rate is an integrity error", func(t *testing.T) {
		usd.Rate = decimal.Zero
		defer func() { usd.Rate = decimal.NewFromInt(7) }()

		_, err := ToBaseCurrency(decimal.NewFromInt(10), "USD", book)
		if err == nil {
			t.Fatal("expected error for zero rate")
		}
		if !domainerror.IsKind(err, domainerror.KindIntegrity) {
			t.Errorf("expected integrity kind, got %v", err)
		}
	})
}
