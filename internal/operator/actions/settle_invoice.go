package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

var ErrInvoiceChanged = errors.New("invoice changed during settlement")

// SettleInvoice pays a card's open invoice for the calendar month of
// MonthDate from an account. The payment insert and the paid flag flip
// commit together or not at all.
type SettleInvoice struct {
	UserID    string
	CardID    uuid.UUID
	AccountID uuid.UUID
	Amount    decimal.Decimal
	MonthDate time.Time
	Today     time.Time

	// set on success
	Payment ledger.Transaction
	Settled int64

	IAction
}

func (s *SettleInvoice) Perform(ctx context.Context, writer *storage.Writer) error {
	card, err := writer.Card.FindByID(ctx, s.UserID, s.CardID)
	if err != nil {
		return err
	}
	if card == nil {
		return ErrCardNotFound
	}

	account, err := writer.Account.FindByID(ctx, s.UserID, s.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	from, to := ledger.MonthWindow(s.MonthDate)
	open, err := writer.Transaction.LockUnpaidByCard(ctx, s.UserID, card.ID, from, to)
	if err != nil {
		return err
	}

	invoice := ledger.OpenInvoice(*card, open, s.MonthDate)
	if err := ledger.CheckSettlement(invoice, s.Amount); err != nil {
		return err
	}

	payment := ledger.NewInvoicePayment(*card, account.ID, s.Amount, s.MonthDate, s.Today)
	if err := writer.Transaction.Insert(ctx, s.UserID, payment); err != nil {
		return err
	}

	settled, err := writer.Transaction.MarkInvoicePaid(ctx, s.UserID, card.ID, from, to)
	if err != nil {
		return err
	}
	if settled != int64(len(invoice.Transactions)) {
		return fmt.Errorf("%w: expected %d transactions, updated %d", ErrInvoiceChanged, len(invoice.Transactions), settled)
	}

	s.Payment = payment
	s.Settled = settled
	return nil
}
