package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// LockUnpaidByCard returns the card's unpaid transactions dated within
// [from, to] and locks them until the surrounding database transaction ends.
func (w *Writer) LockUnpaidByCard(ctx context.Context, userID string, cardID uuid.UUID, from, to time.Time) ([]ledger.Transaction, error) {
	return w.all(ctx, unpaidByCardQuery(userID, cardID, from, to, sm.ForUpdate()))
}

func (w *Writer) Insert(ctx context.Context, userID string, tx ledger.Transaction) error {
	q := psql.Insert(
		im.Into(TableName, writeColumns...),
		im.Values(psql.Arg(values(userID, tx)...)),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// Upsert inserts txs, replacing rows with the same id that belong to userID.
func (w *Writer) Upsert(ctx context.Context, userID string, txs []ledger.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(TableName, writeColumns...),
	}
	for _, tx := range txs {
		queryMods = append(queryMods, im.Values(psql.Arg(values(userID, tx)...)))
	}
	queryMods = append(queryMods, im.OnConflict("id").DoUpdate(
		im.SetExcluded(writeColumns[2:]...),
		im.Where(psql.Quote(TableName, "user_id").EQ(psql.Raw("EXCLUDED.user_id"))),
	))

	_, err := bob.Exec(ctx, w.tx, psql.Insert(queryMods...))
	return err
}

// MarkInvoicePaid flips every unpaid transaction of the card dated within
// [from, to] to paid and returns how many rows changed.
func (w *Writer) MarkInvoicePaid(ctx context.Context, userID string, cardID uuid.UUID, from, to time.Time) (int64, error) {
	q := psql.Update(
		um.Table(TableName),
		um.SetCol("is_paid").ToArg(true),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("card_id").EQ(psql.Arg(cardID))),
		um.Where(psql.Quote("is_paid").EQ(psql.Arg(false))),
		um.Where(psql.Quote("date").GTE(psql.Arg(ledger.Day(from)))),
		um.Where(psql.Quote("date").LTE(psql.Arg(ledger.Day(to)))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (w *Writer) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(TableName),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
