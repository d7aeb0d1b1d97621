package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ReferenceKind names the kind of dangling reference found during reconciliation.
type ReferenceKind string

const (
	UnresolvedAccount ReferenceKind = "account"
	UnresolvedCard    ReferenceKind = "card"
)

// UnresolvedReference records a transaction pointing at a target that is not
// in the input set. Such transactions are left out of every derived figure.
type UnresolvedReference struct {
	TransactionID uuid.UUID
	Kind          ReferenceKind
	TargetID      uuid.UUID
}

// BalanceResult is the output of CalculateBalances.
type BalanceResult struct {
	Accounts   []Account
	Unresolved []UnresolvedReference
}

// CalculateBalances folds paid, account bound transactions into the balances
// of accounts. Each returned account has CurrentBalance = InitialBalance plus
// paid income minus paid expense. Neither input slice is modified, and the
// result does not depend on the order of txs.
func CalculateBalances(accounts []Account, txs []Transaction) BalanceResult {
	index := make(map[uuid.UUID]int, len(accounts))
	deltas := make([]decimal.Decimal, len(accounts))
	for i, acc := range accounts {
		index[acc.ID] = i
		deltas[i] = decimal.Zero
	}

	var unresolved []UnresolvedReference
	for _, tx := range txs {
		if !tx.AccountID.Valid {
			continue
		}
		i, ok := index[tx.AccountID.UUID]
		if !ok {
			unresolved = append(unresolved, UnresolvedReference{
				TransactionID: tx.ID,
				Kind:          UnresolvedAccount,
				TargetID:      tx.AccountID.UUID,
			})
			continue
		}
		if !tx.IsPaid {
			continue
		}
		switch tx.Type {
		case TransactionTypeIncome:
			deltas[i] = deltas[i].Add(tx.Amount)
		case TransactionTypeExpense:
			deltas[i] = deltas[i].Sub(tx.Amount)
		}
	}

	out := make([]Account, len(accounts))
	for i, acc := range accounts {
		acc.CurrentBalance = acc.InitialBalance.Add(deltas[i])
		out[i] = acc
	}
	return BalanceResult{Accounts: out, Unresolved: unresolved}
}

// FindUnresolvedCards reports card bound transactions whose card is not in cards.
func FindUnresolvedCards(cards []CreditCard, txs []Transaction) []UnresolvedReference {
	known := make(map[uuid.UUID]struct{}, len(cards))
	for _, c := range cards {
		known[c.ID] = struct{}{}
	}
	var unresolved []UnresolvedReference
	for _, tx := range txs {
		if !tx.CardID.Valid {
			continue
		}
		if _, ok := known[tx.CardID.UUID]; !ok {
			unresolved = append(unresolved, UnresolvedReference{
				TransactionID: tx.ID,
				Kind:          UnresolvedCard,
				TargetID:      tx.CardID.UUID,
			})
		}
	}
	return unresolved
}
