package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

type ledgerFixture struct {
	checking ledger.Account
	card     ledger.CreditCard
	salary   ledger.RecurringTransaction
	txs      []ledger.Transaction
}

func newLedgerFixture() ledgerFixture {
	checking := ledger.Account{ID: newID(), Name: "Checking", Type: ledger.AccountTypeBank, InitialBalance: dec("1000.00")}
	card := ledger.CreditCard{ID: newID(), Name: "Visa", LimitTotal: dec("2000.00"), ClosingDay: 5, DueDay: 12}
	return ledgerFixture{
		checking: checking,
		card:     card,
		salary: ledger.RecurringTransaction{
			ID:          newID(),
			Description: "Salary",
			Amount:      dec("3000.00"),
			DayOfMonth:  31,
			Type:        ledger.TransactionTypeIncome,
			CategoryID:  "salary",
			AccountID:   some(checking.ID),
			Active:      true,
		},
		txs: []ledger.Transaction{
			{ID: newID(), Amount: dec("200.00"), Date: day("2025-03-02"), Type: ledger.TransactionTypeExpense, AccountID: some(checking.ID), IsPaid: true},
			{ID: newID(), Amount: dec("150.00"), Date: day("2025-03-03"), Type: ledger.TransactionTypeExpense, CardID: some(card.ID)},
		},
	}
}

func (f ledgerFixture) expectReads(reader *mockReader) {
	reader.On("ListAccounts", mock.Anything, userID).Return([]ledger.Account{f.checking}, nil)
	reader.On("ListTransactions", mock.Anything, userID).Return(f.txs, nil)
	reader.On("ListCards", mock.Anything, userID).Return([]ledger.CreditCard{f.card}, nil)
	reader.On("ListCategories", mock.Anything, userID).Return([]ledger.Category{{ID: "salary", Type: ledger.TransactionTypeIncome}}, nil)
	reader.On("ListRecurring", mock.Anything, userID).Return([]ledger.RecurringTransaction{f.salary}, nil)
}

func TestRefresh_GeneratesAndPersists(t *testing.T) {
	f := newLedgerFixture()
	reader := new(mockReader)
	processor := new(mockProcessor)
	f.expectReads(reader)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		upsert, ok := a.(*actions.UpsertTransactions)
		return ok && upsert.UserID == userID && len(upsert.Transactions) == 1
	})).Return(nil)

	svc := NewReconciliationService(reader, processor, testOptions())
	result, err := svc.Refresh(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, result.Generated, 1)
	assert.Equal(t, "2025-03-31", result.Generated[0].Date.Format(ledger.DateFormat))
	assert.Len(t, result.Transactions, 3)
	// 1000 - 200 + 3000, the card purchase never touches the account
	assert.True(t, result.Accounts[0].CurrentBalance.Equal(dec("3800.00")), result.Accounts[0].CurrentBalance.String())
	assert.Len(t, result.Categories, 1)
	assert.Empty(t, result.Unresolved)
	processor.AssertExpectations(t)
}

func TestRefresh_NothingToGenerate(t *testing.T) {
	f := newLedgerFixture()
	f.salary.Active = false
	reader := new(mockReader)
	processor := new(mockProcessor)
	f.expectReads(reader)

	svc := NewReconciliationService(reader, processor, testOptions())
	result, err := svc.Refresh(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, result.Generated)
	assert.True(t, result.Accounts[0].CurrentBalance.Equal(dec("800.00")))
	processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestRefresh_WriteBackFailureStillReturnsView(t *testing.T) {
	f := newLedgerFixture()
	reader := new(mockReader)
	processor := new(mockProcessor)
	f.expectReads(reader)
	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("deadlock detected"))

	svc := NewReconciliationService(reader, processor, testOptions())
	result, err := svc.Refresh(context.Background(), userID)

	assert.ErrorContains(t, err, "deadlock detected")
	require.NotNil(t, result)
	assert.Len(t, result.Generated, 1)
}

func TestRefresh_ReadFailure(t *testing.T) {
	reader := new(mockReader)
	processor := new(mockProcessor)
	reader.On("ListAccounts", mock.Anything, userID).Return(nil, errors.New("database unavailable"))

	svc := NewReconciliationService(reader, processor, testOptions())
	result, err := svc.Refresh(context.Background(), userID)

	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, result)
}

func TestRefresh_ReportsUnresolved(t *testing.T) {
	f := newLedgerFixture()
	f.salary.Active = false
	f.txs = append(f.txs, ledger.Transaction{
		ID: newID(), Amount: dec("10"), Date: day("2025-03-01"), Type: ledger.TransactionTypeIncome, AccountID: some(newID()), IsPaid: true,
	})
	reader := new(mockReader)
	f.expectReads(reader)

	svc := NewReconciliationService(reader, new(mockProcessor), testOptions())
	result, err := svc.Refresh(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, result.Unresolved, 1)
	assert.Equal(t, ledger.UnresolvedAccount, result.Unresolved[0].Kind)
}

func TestSummary(t *testing.T) {
	f := newLedgerFixture()
	reader := new(mockReader)
	reader.On("ListAccounts", mock.Anything, userID).Return([]ledger.Account{f.checking}, nil)
	reader.On("ListTransactions", mock.Anything, userID).Return(f.txs, nil)

	svc := NewReconciliationService(reader, new(mockProcessor), testOptions())
	summary, err := svc.Summary(context.Background(), userID, 2025, time.March)

	require.NoError(t, err)
	assert.True(t, summary.TotalBalance.Equal(dec("800.00")))
	assert.True(t, summary.Expense.Equal(dec("350.00")))
	assert.True(t, summary.Income.IsZero())
}
