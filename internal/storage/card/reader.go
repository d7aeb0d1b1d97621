package card

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
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

func (r *Reader) ListByUser(ctx context.Context, userID string) ([]ledger.CreditCard, error) {
	q := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(TableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	cards := make([]ledger.CreditCard, len(rows))
	for i, rw := range rows {
		cards[i] = rw.toCard()
	}
	return cards, nil
}

// FindByID returns nil without an error when the user owns no such card.
func (r *Reader) FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.CreditCard, error) {
	q := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(TableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	rw, err := bob.One(ctx, r.exec, q, scan.StructMapper[row]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := rw.toCard()
	return &c, nil
}
