package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

func TestCreateAccount_Success(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		upsert, ok := a.(*actions.UpsertAccount)
		return ok &&
			upsert.UserID == userID &&
			upsert.Account.ID != uuid.Nil &&
			upsert.Account.InitialBalance.Equal(dec("250.00"))
	})).Return(nil)

	svc := NewAccountService(new(mockReader), processor)
	id, err := svc.CreateAccount(context.Background(), userID, ledger.Account{
		Name:           "Wallet",
		Type:           ledger.AccountTypeWallet,
		InitialBalance: dec("250.00"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	processor.AssertExpectations(t)
}

func TestCreateAccount_ProcessError(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := NewAccountService(new(mockReader), processor)
	id, err := svc.CreateAccount(context.Background(), userID, ledger.Account{Name: "Wallet", Type: ledger.AccountTypeWallet})

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}

func TestUpdateAccount_RequiresExisting(t *testing.T) {
	processor := new(mockProcessor)
	acc := ledger.Account{ID: newID(), Name: "Savings", Type: ledger.AccountTypeSavings}
	processor.On("Process", mock.Anything, &actions.UpsertAccount{UserID: userID, Account: acc, Existing: true}).
		Return(actions.ErrAccountNotFound)

	err := NewAccountService(new(mockReader), processor).UpdateAccount(context.Background(), userID, acc)

	assert.True(t, IsNotFound(err))
	processor.AssertExpectations(t)
}

func TestDeleteAccount(t *testing.T) {
	processor := new(mockProcessor)
	id := newID()
	processor.On("Process", mock.Anything, &actions.DeleteAccount{UserID: userID, ID: id}).Return(account.ErrNotFound)

	err := NewAccountService(new(mockReader), processor).DeleteAccount(context.Background(), userID, id)

	assert.True(t, IsNotFound(err))
}

func TestCategoryService_SaveAssignsID(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		upsert, ok := a.(*actions.UpsertCategory)
		return ok && upsert.UserID == userID && upsert.Category.ID != "" && upsert.Category.Name == "Pets"
	})).Return(nil)

	svc := NewCategoryService(new(mockReader), processor)
	id, err := svc.SaveCategory(context.Background(), userID, ledger.Category{Name: "Pets", Type: ledger.TransactionTypeExpense})

	require.NoError(t, err)
	_, parseErr := uuid.FromString(id)
	assert.NoError(t, parseErr)

	kept, err := svc.SaveCategory(context.Background(), userID, ledger.Category{ID: "pets", Name: "Pets", Type: ledger.TransactionTypeExpense})
	require.NoError(t, err)
	assert.Equal(t, "pets", kept)
}

func TestCategoryService_SaveError(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.Anything).Return(actions.ErrInvalidInput)

	id, err := NewCategoryService(new(mockReader), processor).SaveCategory(context.Background(), userID, ledger.Category{ID: "payment"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, id)
}

func TestListAccounts_ReturnsReconciledBalances(t *testing.T) {
	f := newLedgerFixture()
	reader := new(mockReader)
	reader.On("ListAccounts", mock.Anything, userID).Return([]ledger.Account{f.checking}, nil)
	reader.On("ListTransactions", mock.Anything, userID).Return(f.txs, nil)

	svc := NewAccountService(reader, new(mockProcessor))
	accounts, err := svc.ListAccounts(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].CurrentBalance.Equal(dec("800.00")))
}

func TestRecurringService(t *testing.T) {
	reader := new(mockReader)
	processor := new(mockProcessor)
	cfg := ledger.RecurringTransaction{Description: "Gym", Amount: dec("99.90"), DayOfMonth: 5, Type: ledger.TransactionTypeExpense, AccountID: some(newID()), Active: true}

	reader.On("ListRecurring", mock.Anything, userID).Return([]ledger.RecurringTransaction{cfg}, nil)
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.UpsertRecurring")).Return(nil)
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.DeleteRecurring")).Return(nil)

	svc := NewRecurringService(reader, processor)

	configs, err := svc.ListRecurring(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, configs, 1)

	id, err := svc.SaveRecurring(context.Background(), userID, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	assert.NoError(t, svc.DeleteRecurring(context.Background(), userID, id))
	processor.AssertNumberOfCalls(t, "Process", 2)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(new(mockReader), new(mockProcessor), Options{Currency: ledger.Currency{Code: "BRL", Places: 2}})

	assert.NotNil(t, svc.Reconciliation.now)
	assert.NotNil(t, svc.Invoice.logger)
	assert.NotNil(t, svc.Category)
}
