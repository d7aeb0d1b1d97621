package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInvoice_CalendarMonthWindow(t *testing.T) {
	card := CreditCard{ID: newUUID(), Name: "Visa", LimitTotal: dec("1000.00"), ClosingDay: 10, DueDay: 20}
	other := newUUID()

	txs := []Transaction{
		cardTx(card.ID, "100.00", false, "2025-03-01"),
		cardTx(card.ID, "100.00", false, "2025-03-15"),
		// after the closing day, still counted in March
		cardTx(card.ID, "100.00", false, "2025-03-31"),
		cardTx(card.ID, "70.00", true, "2025-03-02"),
		cardTx(card.ID, "80.00", false, "2025-02-28"),
		cardTx(card.ID, "90.00", false, "2025-04-01"),
		cardTx(other, "60.00", false, "2025-03-05"),
		accountTx(newUUID(), TransactionTypeExpense, "10.00", false, "2025-03-05"),
	}

	inv := OpenInvoice(card, txs, day("2025-03-20"))

	assert.Equal(t, card.ID, inv.CardID)
	assert.Equal(t, "2025-03-01", inv.From.Format(DateFormat))
	assert.Equal(t, "2025-03-31", inv.To.Format(DateFormat))
	require.Len(t, inv.Transactions, 3)
	assert.True(t, inv.Total.Equal(dec("300.00")))
	assert.Equal(t, InvoiceOpen, inv.State())
}

func TestOpenInvoice_PaidWhenNothingOpen(t *testing.T) {
	card := CreditCard{ID: newUUID()}
	inv := OpenInvoice(card, []Transaction{cardTx(card.ID, "10", true, "2025-03-01")}, day("2025-03-01"))

	assert.Empty(t, inv.Transactions)
	assert.True(t, inv.Total.IsZero())
	assert.Equal(t, InvoicePaid, inv.State())
}

func TestAvailableCredit(t *testing.T) {
	card := CreditCard{ID: newUUID(), LimitTotal: dec("1000.00")}
	txs := []Transaction{
		cardTx(card.ID, "250.50", false, "2025-03-03"),
		cardTx(card.ID, "100.00", true, "2025-03-03"),
		cardTx(card.ID, "300.00", false, "2025-04-03"),
	}

	assert.True(t, AvailableCredit(card, txs, day("2025-03-01")).Equal(dec("749.50")))
	assert.True(t, AvailableCredit(card, txs, day("2025-04-30")).Equal(dec("700.00")))
	assert.True(t, AvailableCredit(card, txs, day("2025-05-01")).Equal(dec("1000.00")))
}

func TestCardMonthTotal_IncludesPaid(t *testing.T) {
	cardID := newUUID()
	txs := []Transaction{
		cardTx(cardID, "10.00", false, "2025-03-03"),
		cardTx(cardID, "15.00", true, "2025-03-09"),
		cardTx(cardID, "99.00", false, "2025-04-01"),
	}

	assert.True(t, CardMonthTotal(cardID, txs, 2025, time.March).Equal(dec("25.00")))
}

func TestCheckSettlement(t *testing.T) {
	card := CreditCard{ID: newUUID()}
	inv := OpenInvoice(card, []Transaction{
		cardTx(card.ID, "100.00", false, "2025-03-03"),
		cardTx(card.ID, "200.00", false, "2025-03-04"),
	}, day("2025-03-01"))

	assert.NoError(t, CheckSettlement(inv, dec("300.00")))
	assert.ErrorIs(t, CheckSettlement(inv, dec("0")), ErrInvalidAmount)
	assert.ErrorIs(t, CheckSettlement(inv, dec("-300")), ErrInvalidAmount)
	assert.ErrorIs(t, CheckSettlement(inv, dec("250.00")), ErrInvoiceMismatch)

	empty := OpenInvoice(card, nil, day("2025-03-01"))
	assert.ErrorIs(t, CheckSettlement(empty, dec("10")), ErrNothingToSettle)
}

func TestNewInvoicePayment(t *testing.T) {
	card := CreditCard{ID: newUUID(), Name: "Visa Gold"}
	accountID := newUUID()
	today := time.Date(2025, time.April, 2, 15, 30, 0, 0, time.UTC)

	payment := NewInvoicePayment(card, accountID, dec("300.00"), day("2025-03-10"), today)

	assert.Equal(t, "INVOICE PAYMENT: Visa Gold (03/2025)", payment.Description)
	assert.Equal(t, TransactionTypeExpense, payment.Type)
	assert.True(t, payment.IsPaid)
	assert.Equal(t, some(accountID), payment.AccountID)
	assert.False(t, payment.CardID.Valid)
	assert.Equal(t, PaymentCategoryID, payment.CategoryID)
	assert.Equal(t, "2025-04-02", payment.Date.Format(DateFormat))
	assert.True(t, payment.Amount.Equal(dec("300.00")))
}
