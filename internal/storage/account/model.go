package account

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const TableName = "accounts"

var ErrNotFound = errors.New("account not found")

type row struct {
	ID             uuid.UUID       `db:"id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	Type           string          `db:"type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	Color          string          `db:"color"`
	CreatedAt      time.Time       `db:"created_at"`
}

var writeColumns = []string{"id", "user_id", "name", "type", "initial_balance", "color"}

func selectColumns() []any {
	return []any{"id", "user_id", "name", "type", "initial_balance", "color", "created_at"}
}

// CurrentBalance starts at the initial balance until a reconciliation pass
// recomputes it.
func (r row) toAccount() ledger.Account {
	return ledger.Account{
		ID:             r.ID,
		Name:           r.Name,
		Type:           ledger.AccountType(r.Type),
		InitialBalance: r.InitialBalance,
		CurrentBalance: r.InitialBalance,
		Color:          r.Color,
	}
}

func values(userID string, a ledger.Account) []any {
	return []any{a.ID, userID, a.Name, string(a.Type), a.InitialBalance, a.Color}
}
