package category

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const TableName = "categories"

type row struct {
	ID     string         `db:"id"`
	UserID sql.NullString `db:"user_id"`
	Name   string         `db:"name"`
	Icon   string         `db:"icon"`
	Color  string         `db:"color"`
	Type   string         `db:"type"`
}

// Reader lists categories. Rows without a user are shared defaults.
type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) ListForUser(ctx context.Context, userID string) ([]ledger.Category, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "icon", "color", "type"),
		sm.From(TableName),
		sm.Where(psql.Or(
			psql.Quote("user_id").IsNull(),
			psql.Quote("user_id").EQ(psql.Arg(userID)),
		)),
		sm.OrderBy(psql.Quote("type")).Asc(),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	categories := make([]ledger.Category, len(rows))
	for i, rw := range rows {
		categories[i] = ledger.Category{
			ID:    rw.ID,
			Name:  rw.Name,
			Icon:  rw.Icon,
			Color: rw.Color,
			Type:  ledger.TransactionType(rw.Type),
		}
	}
	return categories, nil
}
