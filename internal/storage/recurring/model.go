package recurring

import (
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const TableName = "recurring_transactions"

var ErrNotFound = errors.New("recurring transaction not found")

type row struct {
	ID          uuid.UUID       `db:"id"`
	UserID      string          `db:"user_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	DayOfMonth  int16           `db:"day_of_month"`
	Type        string          `db:"type"`
	CategoryID  string          `db:"category_id"`
	AccountID   uuid.NullUUID   `db:"account_id"`
	CardID      uuid.NullUUID   `db:"card_id"`
	Active      bool            `db:"active"`
}

var writeColumns = []string{
	"id",
	"user_id",
	"description",
	"amount",
	"day_of_month",
	"type",
	"category_id",
	"account_id",
	"card_id",
	"active",
}

func selectColumns() []any {
	cols := make([]any, len(writeColumns))
	for i, c := range writeColumns {
		cols[i] = c
	}
	return cols
}

func (r row) toRecurring() ledger.RecurringTransaction {
	return ledger.RecurringTransaction{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		DayOfMonth:  int(r.DayOfMonth),
		Type:        ledger.TransactionType(r.Type),
		CategoryID:  r.CategoryID,
		AccountID:   r.AccountID,
		CardID:      r.CardID,
		Active:      r.Active,
	}
}

func values(userID string, cfg ledger.RecurringTransaction) []any {
	return []any{
		cfg.ID,
		userID,
		transaction.TruncateDescription(cfg.Description),
		cfg.Amount,
		int16(cfg.DayOfMonth),
		string(cfg.Type),
		cfg.CategoryID,
		cfg.AccountID,
		cfg.CardID,
		cfg.Active,
	}
}
