package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

type settleFixture struct {
	card    ledger.CreditCard
	account ledger.Account
	open    []ledger.Transaction
	action  *SettleInvoice
}

func newSettleFixture() settleFixture {
	card := ledger.CreditCard{ID: newID(), Name: "Visa", LimitTotal: dec("1000"), ClosingDay: 5, DueDay: 12}
	account := ledger.Account{ID: newID(), Name: "Checking", Type: ledger.AccountTypeBank}
	open := []ledger.Transaction{
		{ID: newID(), Amount: dec("100.00"), Date: day("2025-03-02"), Type: ledger.TransactionTypeExpense, CardID: some(card.ID)},
		{ID: newID(), Amount: dec("50.50"), Date: day("2025-03-30"), Type: ledger.TransactionTypeExpense, CardID: some(card.ID)},
	}
	return settleFixture{
		card:    card,
		account: account,
		open:    open,
		action: &SettleInvoice{
			UserID:    userID,
			CardID:    card.ID,
			AccountID: account.ID,
			Amount:    dec("150.50"),
			MonthDate: day("2025-03-15"),
			Today:     day("2025-04-10"),
		},
	}
}

func TestSettleInvoice_Success(t *testing.T) {
	f := newSettleFixture()
	writer, m := newTestWriter()
	from, to := day("2025-03-01"), day("2025-03-31")

	m.cards.On("FindByID", mock.Anything, userID, f.card.ID).Return(&f.card, nil)
	m.accounts.On("FindByID", mock.Anything, userID, f.account.ID).Return(&f.account, nil)
	m.transactions.On("LockUnpaidByCard", mock.Anything, userID, f.card.ID, from, to).Return(f.open, nil)
	m.transactions.On("Insert", mock.Anything, userID, mock.MatchedBy(func(tx ledger.Transaction) bool {
		return tx.Amount.Equal(dec("150.50")) &&
			tx.BoundToAccount(f.account.ID) &&
			tx.IsPaid &&
			tx.CategoryID == ledger.PaymentCategoryID &&
			tx.Description == "INVOICE PAYMENT: Visa (03/2025)" &&
			tx.Date.Equal(day("2025-04-10"))
	})).Return(nil)
	m.transactions.On("MarkInvoicePaid", mock.Anything, userID, f.card.ID, from, to).Return(int64(2), nil)

	err := f.action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), f.action.Settled)
	assert.True(t, f.action.Payment.Amount.Equal(dec("150.50")))
	m.transactions.AssertExpectations(t)
}

func TestSettleInvoice_CardNotFound(t *testing.T) {
	f := newSettleFixture()
	writer, m := newTestWriter()
	m.cards.On("FindByID", mock.Anything, userID, f.card.ID).Return(nil, nil)

	err := f.action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrCardNotFound)
	m.transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleInvoice_AccountNotFound(t *testing.T) {
	f := newSettleFixture()
	writer, m := newTestWriter()
	m.cards.On("FindByID", mock.Anything, userID, f.card.ID).Return(&f.card, nil)
	m.accounts.On("FindByID", mock.Anything, userID, f.account.ID).Return(nil, nil)

	err := f.action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrAccountNotFound)
	m.transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleInvoice_AmountMismatch(t *testing.T) {
	f := newSettleFixture()
	f.action.Amount = dec("100.00")
	writer, m := newTestWriter()
	m.cards.On("FindByID", mock.Anything, userID, f.card.ID).Return(&f.card, nil)
	m.accounts.On("FindByID", mock.Anything, userID, f.account.ID).Return(&f.account, nil)
	m.transactions.On("LockUnpaidByCard", mock.Anything, userID, f.card.ID, mock.Anything, mock.Anything).Return(f.open, nil)

	err := f.action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrInvoiceMismatch)
	m.transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleInvoice_FlipFailureReturnsError(t *testing.T) {
	f := newSettleFixture()
	writer, m := newTestWriter()
	m.cards.On("FindByID", mock.Anything, userID, f.card.ID).Return(&f.card, nil)
	m.accounts.On("FindByID", mock.Anything, userID, f.account.ID).Return(&f.account, nil)
	m.transactions.On("LockUnpaidByCard", mock.Anything, userID, f.card.ID, mock.Anything, mock.Anything).Return(f.open, nil)
	m.transactions.On("Insert", mock.Anything, userID, mock.Anything).Return(nil)
	m.transactions.On("MarkInvoicePaid", mock.Anything, userID, f.card.ID, mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection reset"))

	err := f.action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "connection reset")
	assert.Equal(t, ledger.Transaction{}, f.action.Payment, "payment only reported after both writes")
}

func TestSettleInvoice_ConcurrentChangeDetected(t *testing.T) {
	f := newSettleFixture()
	writer, m := newTestWriter()
	m.cards.On("FindByID", mock.Anything, userID, f.card.ID).Return(&f.card, nil)
	m.accounts.On("FindByID", mock.Anything, userID, f.account.ID).Return(&f.account, nil)
	m.transactions.On("LockUnpaidByCard", mock.Anything, userID, f.card.ID, mock.Anything, mock.Anything).Return(f.open, nil)
	m.transactions.On("Insert", mock.Anything, userID, mock.Anything).Return(nil)
	m.transactions.On("MarkInvoicePaid", mock.Anything, userID, f.card.ID, mock.Anything, mock.Anything).Return(int64(3), nil)

	err := f.action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrInvoiceChanged)
}
