package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const defaultLimit = 20

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListByUser returns every transaction the user owns, oldest first.
func (r *Reader) ListByUser(ctx context.Context, userID string) ([]ledger.Transaction, error) {
	q := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(TableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("date")).Asc(),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
	)
	return r.all(ctx, q)
}

// FindByID returns nil without an error when the user owns no such transaction.
func (r *Reader) FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.Transaction, error) {
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
	return &rw.toRecord().Transaction, nil
}

// List returns one page of the user's transactions, latest date first. It
// fetches one row past the limit so the caller can tell whether another page
// exists.
func (r *Reader) List(ctx context.Context, userID string, filter Filter) ([]*Record, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(selectColumns()...),
		sm.From(TableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if !filter.From.IsZero() {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(ledger.Day(filter.From)))))
	}
	if !filter.To.IsZero() {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(ledger.Day(filter.To)))))
	}
	if filter.AccountID.Valid {
		queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(filter.AccountID.UUID))))
	}
	if filter.CardID.Valid {
		queryMods = append(queryMods, sm.Where(psql.Quote("card_id").EQ(psql.Arg(filter.CardID.UUID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
		sm.Limit(limit+1),
		sm.Offset(filter.Offset),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	records := make([]*Record, len(rows))
	for i, rw := range rows {
		records[i] = rw.toRecord()
	}
	return records, nil
}

func unpaidByCardQuery(userID string, cardID uuid.UUID, from, to time.Time, extra ...bob.Mod[*dialect.SelectQuery]) bob.Query {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(selectColumns()...),
		sm.From(TableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("card_id").EQ(psql.Arg(cardID))),
		sm.Where(psql.Quote("is_paid").EQ(psql.Arg(false))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(ledger.Day(from)))),
		sm.Where(psql.Quote("date").LTE(psql.Arg(ledger.Day(to)))),
		sm.OrderBy(psql.Quote("date")).Asc(),
	}
	return psql.Select(append(queryMods, extra...)...)
}

func (r *Reader) all(ctx context.Context, q bob.Query) ([]ledger.Transaction, error) {
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	txs := make([]ledger.Transaction, len(rows))
	for i, rw := range rows {
		txs[i] = rw.toRecord().Transaction
	}
	return txs, nil
}
