package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// CreateTransaction stores a new transaction, split into monthly installments
// when it is a card purchase with more than one installment.
type CreateTransaction struct {
	UserID      string
	Transaction ledger.Transaction
	Currency    ledger.Currency

	// set on success
	Created []ledger.Transaction

	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	tx, err := prepareTransaction(t.Transaction, t.Currency)
	if err != nil {
		return err
	}

	if tx.CardID.Valid && tx.InstallmentTotal > 1 {
		if !ledger.CanSplit(tx.Amount, tx.InstallmentTotal, t.Currency.Places) {
			return fmt.Errorf("%w: %s is too small for %d installments", ErrInvalidInput, tx.Amount, tx.InstallmentTotal)
		}
	} else {
		tx.InstallmentTotal = 0
	}
	tx.InstallmentCurrent = 0

	card, err := resolveBinding(ctx, writer, t.UserID, tx)
	if err != nil {
		return err
	}

	postings := ledger.SplitInstallments(tx, card, t.Currency.Places)
	ledger.AssertInstallmentSum(tx.Amount, postings)

	if err := writer.Transaction.Upsert(ctx, t.UserID, postings); err != nil {
		return err
	}

	t.Created = postings
	return nil
}

// prepareTransaction validates tx and rounds its amount to the currency.
func prepareTransaction(tx ledger.Transaction, currency ledger.Currency) (ledger.Transaction, error) {
	if err := validateTransaction(tx); err != nil {
		return tx, err
	}
	tx.Amount = currency.Round(tx.Amount)
	if !tx.Amount.IsPositive() {
		return tx, fmt.Errorf("%w: amount rounds to zero", ErrInvalidInput)
	}
	return tx, nil
}

// resolveBinding checks that the account or card tx settles against belongs
// to the user. The card is returned for card bound transactions.
func resolveBinding(ctx context.Context, writer *storage.Writer, userID string, tx ledger.Transaction) (*ledger.CreditCard, error) {
	if tx.CardID.Valid {
		card, err := writer.Card.FindByID(ctx, userID, tx.CardID.UUID)
		if err != nil {
			return nil, err
		}
		if card == nil {
			return nil, ErrCardNotFound
		}
		return card, nil
	}

	account, err := writer.Account.FindByID(ctx, userID, tx.AccountID.UUID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return nil, nil
}

func validateTransaction(tx ledger.Transaction) error {
	switch {
	case !tx.Type.Valid():
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, tx.Type)
	case tx.AccountID.Valid == tx.CardID.Valid:
		return fmt.Errorf("%w: exactly one of account or card is required", ErrInvalidInput)
	case !tx.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	case tx.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
