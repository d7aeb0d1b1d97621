package recurring

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListByUser returns active and inactive configs alike.
func (r *Reader) ListByUser(ctx context.Context, userID string) ([]ledger.RecurringTransaction, error) {
	q := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(TableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("day_of_month")).Asc(),
		sm.OrderBy(psql.Quote("description")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	configs := make([]ledger.RecurringTransaction, len(rows))
	for i, rw := range rows {
		configs[i] = rw.toRecurring()
	}
	return configs, nil
}
