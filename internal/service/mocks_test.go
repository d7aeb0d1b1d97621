package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) ListAccounts(ctx context.Context, userID string) ([]ledger.Account, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]ledger.Account)
	return v, args.Error(1)
}

func (m *mockReader) ListTransactions(ctx context.Context, userID string) ([]ledger.Transaction, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]ledger.Transaction)
	return v, args.Error(1)
}

func (m *mockReader) ListCards(ctx context.Context, userID string) ([]ledger.CreditCard, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]ledger.CreditCard)
	return v, args.Error(1)
}

func (m *mockReader) ListCategories(ctx context.Context, userID string) ([]ledger.Category, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]ledger.Category)
	return v, args.Error(1)
}

func (m *mockReader) ListRecurring(ctx context.Context, userID string) ([]ledger.RecurringTransaction, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]ledger.RecurringTransaction)
	return v, args.Error(1)
}

func (m *mockReader) ListTransactionPage(ctx context.Context, userID string, filter transaction.Filter) ([]*transaction.Record, error) {
	args := m.Called(ctx, userID, filter)
	v, _ := args.Get(0).([]*transaction.Record)
	return v, args.Error(1)
}

func (m *mockReader) FindCard(ctx context.Context, userID string, id uuid.UUID) (*ledger.CreditCard, error) {
	args := m.Called(ctx, userID, id)
	v, _ := args.Get(0).(*ledger.CreditCard)
	return v, args.Error(1)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

const userID = "user-1"

var fixedNow = time.Date(2025, time.March, 20, 14, 0, 0, 0, time.UTC)

func testOptions() Options {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return Options{
		Currency:          ledger.Currency{Code: "BRL", Places: 2},
		SettlementTimeout: time.Second,
		Logger:            logger,
		Now:               func() time.Time { return fixedNow },
	}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func some(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	d, err := ledger.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
