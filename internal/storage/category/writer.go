package category

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
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

// Upsert stores a category owned by userID. It reports false when the id
// already belongs to someone else or to the shared defaults, which are never
// overwritten.
func (w *Writer) Upsert(ctx context.Context, userID string, c ledger.Category) (bool, error) {
	q := psql.Insert(
		im.Into(TableName, "id", "user_id", "name", "icon", "color", "type"),
		im.Values(psql.Arg(c.ID, userID, c.Name, c.Icon, c.Color, string(c.Type))),
		im.OnConflict("id").DoUpdate(
			im.SetExcluded("name", "icon", "color", "type"),
			im.Where(psql.Quote(TableName, "user_id").EQ(psql.Raw("EXCLUDED.user_id"))),
		),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
