package card

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"

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

func (w *Writer) Upsert(ctx context.Context, userID string, c ledger.CreditCard) error {
	q := psql.Insert(
		im.Into(TableName, writeColumns...),
		im.Values(psql.Arg(values(userID, c)...)),
		im.OnConflict("id").DoUpdate(
			im.SetExcluded(writeColumns[2:]...),
			im.Where(psql.Quote(TableName, "user_id").EQ(psql.Raw("EXCLUDED.user_id"))),
		),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// Delete removes the card. Transactions bound to it are kept and surface as
// unresolved references on the next refresh.
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
