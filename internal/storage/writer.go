package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/card"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/recurring"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transactor ends a database transaction.
type Transactor interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type AccountWriter interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.Account, error)
	Upsert(ctx context.Context, userID string, acc ledger.Account) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type TransactionWriter interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.Transaction, error)
	LockUnpaidByCard(ctx context.Context, userID string, cardID uuid.UUID, from, to time.Time) ([]ledger.Transaction, error)
	Insert(ctx context.Context, userID string, tx ledger.Transaction) error
	Upsert(ctx context.Context, userID string, txs []ledger.Transaction) error
	MarkInvoicePaid(ctx context.Context, userID string, cardID uuid.UUID, from, to time.Time) (int64, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type CardWriter interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*ledger.CreditCard, error)
	Upsert(ctx context.Context, userID string, c ledger.CreditCard) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type RecurringWriter interface {
	Upsert(ctx context.Context, userID string, cfg ledger.RecurringTransaction) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type CategoryWriter interface {
	Upsert(ctx context.Context, userID string, c ledger.Category) (bool, error)
}

// Writer groups table writers that share one database transaction.
type Writer struct {
	Tx          Transactor
	Account     AccountWriter
	Transaction TransactionWriter
	Card        CardWriter
	Recurring   RecurringWriter
	Category    CategoryWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:          tx,
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Card:        card.NewWriter(tx),
		Recurring:   recurring.NewWriter(tx),
		Category:    category.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
