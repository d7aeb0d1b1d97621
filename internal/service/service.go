package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/card"
	"github.com/carson-networks/ledger-server/internal/storage/recurring"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = actions.ErrInvalidInput
)

// IsNotFound reports whether err means the requested record does not exist
// for the user.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, actions.ErrAccountNotFound) ||
		errors.Is(err, actions.ErrCardNotFound) ||
		errors.Is(err, actions.ErrTransactionNotFound) ||
		errors.Is(err, account.ErrNotFound) ||
		errors.Is(err, card.ErrNotFound) ||
		errors.Is(err, transaction.ErrNotFound) ||
		errors.Is(err, recurring.ErrNotFound)
}

// LedgerReader loads everything a user owns.
type LedgerReader interface {
	ListAccounts(ctx context.Context, userID string) ([]ledger.Account, error)
	ListTransactions(ctx context.Context, userID string) ([]ledger.Transaction, error)
	ListCards(ctx context.Context, userID string) ([]ledger.CreditCard, error)
	ListCategories(ctx context.Context, userID string) ([]ledger.Category, error)
	ListRecurring(ctx context.Context, userID string) ([]ledger.RecurringTransaction, error)
}

// Reader is the read side of storage the services use.
type Reader interface {
	LedgerReader
	ListTransactionPage(ctx context.Context, userID string, filter transaction.Filter) ([]*transaction.Record, error)
	FindCard(ctx context.Context, userID string, id uuid.UUID) (*ledger.CreditCard, error)
}

// ActionProcessor runs a write action in its own database transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type Options struct {
	Currency          ledger.Currency
	SettlementTimeout time.Duration
	Logger            *logrus.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service holds all business logic services.
type Service struct {
	Reconciliation *ReconciliationService
	Transaction    *TransactionService
	Account        *AccountService
	Card           *CardService
	Invoice        *InvoiceService
	Recurring      *RecurringService
	Category       *CategoryService
}

// NewService creates a new Service over the given storage reader and write processor.
func NewService(reader Reader, processor ActionProcessor, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Currency.Code == "" {
		opts.Currency, _ = ledger.LookupCurrency(ledger.DefaultCurrency)
	}

	return &Service{
		Reconciliation: NewReconciliationService(reader, processor, opts),
		Transaction:    NewTransactionService(reader, processor, opts),
		Account:        NewAccountService(reader, processor),
		Card:           NewCardService(reader, processor, opts),
		Invoice:        NewInvoiceService(processor, opts),
		Recurring:      NewRecurringService(reader, processor),
		Category:       NewCategoryService(reader, processor),
	}
}

func loadSnapshot(ctx context.Context, reader LedgerReader, userID string) (ledger.Snapshot, error) {
	var snap ledger.Snapshot
	var err error

	if snap.Accounts, err = logging.Timed(ctx, "listAccountsMs", func() ([]ledger.Account, error) {
		return reader.ListAccounts(ctx, userID)
	}); err != nil {
		return snap, err
	}
	if snap.Transactions, err = logging.Timed(ctx, "listTransactionsMs", func() ([]ledger.Transaction, error) {
		return reader.ListTransactions(ctx, userID)
	}); err != nil {
		return snap, err
	}
	if snap.Cards, err = reader.ListCards(ctx, userID); err != nil {
		return snap, err
	}
	if snap.Categories, err = reader.ListCategories(ctx, userID); err != nil {
		return snap, err
	}
	if snap.Recurring, err = reader.ListRecurring(ctx, userID); err != nil {
		return snap, err
	}
	return snap, nil
}

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return ledger.NewID()
	}
	return id
}
