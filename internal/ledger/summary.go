package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Summary holds the figures shown for one month.
type Summary struct {
	Year         int
	Month        time.Month
	TotalBalance decimal.Decimal
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Result       decimal.Decimal
}

// MonthlySummary totals income and expense dated in month/year. Transactions
// on savings or investment accounts move reserves and are left out. Paid
// status is ignored: a pending card purchase is still this month's expense.
// TotalBalance is the sum of the accounts' current balances, so accounts are
// expected to be the output of CalculateBalances.
func MonthlySummary(accounts []Account, txs []Transaction, year int, month time.Month) Summary {
	reserves := make(map[uuid.UUID]struct{})
	s := Summary{
		Year:         year,
		Month:        month,
		TotalBalance: decimal.Zero,
		Income:       decimal.Zero,
		Expense:      decimal.Zero,
	}
	for _, acc := range accounts {
		s.TotalBalance = s.TotalBalance.Add(acc.CurrentBalance)
		if !acc.Type.Operational() {
			reserves[acc.ID] = struct{}{}
		}
	}

	for _, tx := range txs {
		if !InMonth(tx.Date, year, month) {
			continue
		}
		if tx.AccountID.Valid {
			if _, ok := reserves[tx.AccountID.UUID]; ok {
				continue
			}
		}
		switch tx.Type {
		case TransactionTypeIncome:
			s.Income = s.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	s.Result = s.Income.Sub(s.Expense)
	return s
}
