package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type mockAccountWriter struct {
	mock.Mock
}

func (m *mockAccountWriter) FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.Account, error) {
	args := m.Called(ctx, userID, id)
	acc, _ := args.Get(0).(*ledger.Account)
	return acc, args.Error(1)
}

func (m *mockAccountWriter) Upsert(ctx context.Context, userID string, acc ledger.Account) error {
	return m.Called(ctx, userID, acc).Error(0)
}

func (m *mockAccountWriter) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockCardWriter struct {
	mock.Mock
}

func (m *mockCardWriter) FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.CreditCard, error) {
	args := m.Called(ctx, userID, id)
	c, _ := args.Get(0).(*ledger.CreditCard)
	return c, args.Error(1)
}

func (m *mockCardWriter) Upsert(ctx context.Context, userID string, c ledger.CreditCard) error {
	return m.Called(ctx, userID, c).Error(0)
}

func (m *mockCardWriter) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, userID, id)
	tx, _ := args.Get(0).(*ledger.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionWriter) LockUnpaidByCard(ctx context.Context, userID string, cardID uuid.UUID, from, to time.Time) ([]ledger.Transaction, error) {
	args := m.Called(ctx, userID, cardID, from, to)
	txs, _ := args.Get(0).([]ledger.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, userID string, tx ledger.Transaction) error {
	return m.Called(ctx, userID, tx).Error(0)
}

func (m *mockTransactionWriter) Upsert(ctx context.Context, userID string, txs []ledger.Transaction) error {
	return m.Called(ctx, userID, txs).Error(0)
}

func (m *mockTransactionWriter) MarkInvoicePaid(ctx context.Context, userID string, cardID uuid.UUID, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, cardID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionWriter) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockRecurringWriter struct {
	mock.Mock
}

func (m *mockRecurringWriter) Upsert(ctx context.Context, userID string, cfg ledger.RecurringTransaction) error {
	return m.Called(ctx, userID, cfg).Error(0)
}

func (m *mockRecurringWriter) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) Upsert(ctx context.Context, userID string, c ledger.Category) (bool, error) {
	args := m.Called(ctx, userID, c)
	return args.Bool(0), args.Error(1)
}

type mocks struct {
	accounts     *mockAccountWriter
	cards        *mockCardWriter
	transactions *mockTransactionWriter
	recurring    *mockRecurringWriter
	categories   *mockCategoryWriter
}

func newTestWriter() (*storage.Writer, mocks) {
	m := mocks{
		accounts:     new(mockAccountWriter),
		cards:        new(mockCardWriter),
		transactions: new(mockTransactionWriter),
		recurring:    new(mockRecurringWriter),
		categories:   new(mockCategoryWriter),
	}
	return &storage.Writer{
		Account:     m.accounts,
		Card:        m.cards,
		Transaction: m.transactions,
		Recurring:   m.recurring,
		Category:    m.categories,
	}, m
}

const userID = "user-1"

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
