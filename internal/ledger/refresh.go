package ledger

import "time"

// Snapshot is everything one user owns, as fetched at the start of a refresh.
type Snapshot struct {
	Accounts     []Account
	Transactions []Transaction
	Cards        []CreditCard
	Categories   []Category
	Recurring    []RecurringTransaction
}

// RefreshResult is the materialized view produced by Refresh.
type RefreshResult struct {
	Accounts     []Account
	Transactions []Transaction
	Cards        []CreditCard
	Categories   []Category

	// Generated lists the recurring postings created by this pass. They are
	// also part of Transactions and still need to be persisted by the caller.
	Generated  []Transaction
	Unresolved []UnresolvedReference
}

// Refresh runs one reconciliation pass: recurring postings for month/year are
// generated first, then every transaction, old and new, is folded into the
// account balances. Cards and categories pass through unchanged.
func Refresh(snap Snapshot, month time.Month, year int) RefreshResult {
	generated := MaterializeRecurring(snap.Transactions, snap.Recurring, month, year)

	all := make([]Transaction, 0, len(snap.Transactions)+len(generated))
	all = append(all, snap.Transactions...)
	all = append(all, generated...)

	balances := CalculateBalances(snap.Accounts, all)
	unresolved := append(balances.Unresolved, FindUnresolvedCards(snap.Cards, all)...)

	return RefreshResult{
		Accounts:     balances.Accounts,
		Transactions: all,
		Cards:        snap.Cards,
		Categories:   snap.Categories,
		Generated:    generated,
		Unresolved:   unresolved,
	}
}
