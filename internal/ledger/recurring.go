package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// MaterializeRecurring returns this month's posting for every active
// recurring config that has none yet. A config already has a posting when an
// existing transaction carries its id in RelatedRecurringID and is dated in
// month/year. Only new transactions are returned, so calling it again after
// merging the result yields nothing.
//
// The posting is dated on the config's DayOfMonth, clamped to the last day of
// month. Income and account bound expenses are paid immediately, card bound
// expenses stay unpaid until the invoice is settled. Configs bound to both or
// neither an account and a card are skipped.
func MaterializeRecurring(existing []Transaction, configs []RecurringTransaction, month time.Month, year int) []Transaction {
	posted := make(map[uuid.UUID]struct{})
	for _, tx := range existing {
		if tx.RelatedRecurringID.Valid && InMonth(tx.Date, year, month) {
			posted[tx.RelatedRecurringID.UUID] = struct{}{}
		}
	}

	var created []Transaction
	for _, cfg := range configs {
		if !cfg.Active || !cfg.HasSingleBinding() {
			continue
		}
		if _, ok := posted[cfg.ID]; ok {
			continue
		}
		created = append(created, Transaction{
			ID:                 NewID(),
			Description:        cfg.Description,
			Amount:             cfg.Amount,
			Date:               ClampedDate(year, month, cfg.DayOfMonth),
			Type:               cfg.Type,
			CategoryID:         cfg.CategoryID,
			AccountID:          cfg.AccountID,
			CardID:             cfg.CardID,
			IsPaid:             recurringPaid(cfg),
			RelatedRecurringID: uuid.NullUUID{UUID: cfg.ID, Valid: true},
		})
		// a config listed twice must still post once
		posted[cfg.ID] = struct{}{}
	}
	return created
}

func recurringPaid(cfg RecurringTransaction) bool {
	if cfg.Type == TransactionTypeIncome {
		return true
	}
	return cfg.Type == TransactionTypeExpense && cfg.AccountID.Valid
}
