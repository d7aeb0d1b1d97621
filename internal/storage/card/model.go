package card

import (
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const TableName = "credit_cards"

var ErrNotFound = errors.New("card not found")

type row struct {
	ID         uuid.UUID       `db:"id"`
	UserID     string          `db:"user_id"`
	Name       string          `db:"name"`
	LimitTotal decimal.Decimal `db:"limit_total"`
	ClosingDay int16           `db:"closing_day"`
	DueDay     int16           `db:"due_day"`
	Color      string          `db:"color"`
}

var writeColumns = []string{"id", "user_id", "name", "limit_total", "closing_day", "due_day", "color"}

func selectColumns() []any {
	cols := make([]any, len(writeColumns))
	for i, c := range writeColumns {
		cols[i] = c
	}
	return cols
}

func (r row) toCard() ledger.CreditCard {
	return ledger.CreditCard{
		ID:         r.ID,
		Name:       r.Name,
		LimitTotal: r.LimitTotal,
		ClosingDay: int(r.ClosingDay),
		DueDay:     int(r.DueDay),
		Color:      r.Color,
	}
}

func values(userID string, c ledger.CreditCard) []any {
	return []any{c.ID, userID, c.Name, c.LimitTotal, int16(c.ClosingDay), int16(c.DueDay), c.Color}
}
