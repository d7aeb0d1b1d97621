package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// InvoiceState is the settlement state of one card invoice month.
type InvoiceState string

const (
	InvoiceOpen InvoiceState = "OPEN"
	InvoicePaid InvoiceState = "PAID"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvoiceMismatch = errors.New("amount does not match open invoice total")
	ErrNothingToSettle = errors.New("invoice has no unpaid transactions")
)

// Invoice is the aggregate of a card's unpaid transactions in a billing window.
//
// The window is the calendar month of the requested date, not the card's
// closing-day cycle: a purchase made after the closing day is still counted in
// its calendar month.
type Invoice struct {
	CardID       uuid.UUID
	From         time.Time
	To           time.Time
	Transactions []Transaction
	Total        decimal.Decimal
}

// State reports OPEN while unpaid transactions remain and PAID otherwise.
func (i Invoice) State() InvoiceState {
	if len(i.Transactions) > 0 {
		return InvoiceOpen
	}
	return InvoicePaid
}

// OpenInvoice collects the unpaid transactions bound to card and dated in the
// calendar month of monthDate.
func OpenInvoice(card CreditCard, txs []Transaction, monthDate time.Time) Invoice {
	from, to := MonthWindow(monthDate)
	inv := Invoice{CardID: card.ID, From: from, To: to, Total: decimal.Zero}
	for _, tx := range txs {
		if tx.IsPaid || !tx.BoundToCard(card.ID) || !InWindow(tx.Date, from, to) {
			continue
		}
		inv.Transactions = append(inv.Transactions, tx)
		inv.Total = inv.Total.Add(tx.Amount)
	}
	return inv
}

// AvailableCredit is the card limit minus its open invoice for the month of monthDate.
func AvailableCredit(card CreditCard, txs []Transaction, monthDate time.Time) decimal.Decimal {
	return card.LimitTotal.Sub(OpenInvoice(card, txs, monthDate).Total)
}

// CardMonthTotal adds every transaction on the card in the month, paid or not.
func CardMonthTotal(cardID uuid.UUID, txs []Transaction, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.BoundToCard(cardID) && InMonth(tx.Date, year, month) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CheckSettlement validates a settlement request against the computed invoice.
func CheckSettlement(inv Invoice, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if len(inv.Transactions) == 0 {
		return ErrNothingToSettle
	}
	if !amount.Equal(inv.Total) {
		return fmt.Errorf("%w: requested %s, open %s", ErrInvoiceMismatch, amount, inv.Total)
	}
	return nil
}

// NewInvoicePayment builds the expense that pays a card invoice from accountID.
// It is dated today, already paid, and filed under PaymentCategoryID.
func NewInvoicePayment(card CreditCard, accountID uuid.UUID, amount decimal.Decimal, monthDate, today time.Time) Transaction {
	return Transaction{
		ID:          NewID(),
		Description: InvoicePaymentDescription(card.Name, monthDate),
		Amount:      amount,
		Date:        Day(today),
		Type:        TransactionTypeExpense,
		CategoryID:  PaymentCategoryID,
		AccountID:   uuid.NullUUID{UUID: accountID, Valid: true},
		IsPaid:      true,
	}
}

// InvoicePaymentDescription labels an invoice payment with the card and month.
func InvoicePaymentDescription(cardName string, monthDate time.Time) string {
	return fmt.Sprintf("INVOICE PAYMENT: %s (%02d/%d)", cardName, int(monthDate.Month()), monthDate.Year())
}
