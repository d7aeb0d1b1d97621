package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// UpsertTransactions writes already computed transactions, such as recurring
// postings produced by a reconciliation pass.
type UpsertTransactions struct {
	UserID       string
	Transactions []ledger.Transaction

	IAction
}

func (u *UpsertTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transaction.Upsert(ctx, u.UserID, u.Transactions)
}
