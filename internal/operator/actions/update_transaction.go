package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// UpdateTransaction replaces the editable fields of one stored transaction.
// Installment numbering and the group and recurring links stay as stored, so
// editing one installment never re-splits the purchase.
type UpdateTransaction struct {
	UserID      string
	Transaction ledger.Transaction
	Currency    ledger.Currency

	// set on success
	Updated ledger.Transaction

	IAction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	tx, err := prepareTransaction(u.Transaction, u.Currency)
	if err != nil {
		return err
	}

	existing, err := writer.Transaction.FindByID(ctx, u.UserID, tx.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}
	if _, err := resolveBinding(ctx, writer, u.UserID, tx); err != nil {
		return err
	}

	tx.InstallmentCurrent = existing.InstallmentCurrent
	tx.InstallmentTotal = existing.InstallmentTotal
	tx.RelatedTransactionID = existing.RelatedTransactionID
	tx.RelatedRecurringID = existing.RelatedRecurringID

	if err := writer.Transaction.Upsert(ctx, u.UserID, []ledger.Transaction{tx}); err != nil {
		return err
	}
	u.Updated = tx
	return nil
}
