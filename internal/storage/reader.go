package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/card"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/recurring"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type Reader struct {
	Accounts     *account.Reader
	Transactions *transaction.Reader
	Cards        *card.Reader
	Categories   *category.Reader
	Recurring    *recurring.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Cards:        card.NewReader(exec),
		Categories:   category.NewReader(exec),
		Recurring:    recurring.NewReader(exec),
	}
}

func (r *Reader) ListAccounts(ctx context.Context, userID string) ([]ledger.Account, error) {
	return r.Accounts.ListByUser(ctx, userID)
}

func (r *Reader) ListTransactions(ctx context.Context, userID string) ([]ledger.Transaction, error) {
	return r.Transactions.ListByUser(ctx, userID)
}

func (r *Reader) ListTransactionPage(ctx context.Context, userID string, filter transaction.Filter) ([]*transaction.Record, error) {
	return r.Transactions.List(ctx, userID, filter)
}

func (r *Reader) ListCards(ctx context.Context, userID string) ([]ledger.CreditCard, error) {
	return r.Cards.ListByUser(ctx, userID)
}

func (r *Reader) FindCard(ctx context.Context, userID string, id uuid.UUID) (*ledger.CreditCard, error) {
	return r.Cards.FindByID(ctx, userID, id)
}

func (r *Reader) ListCategories(ctx context.Context, userID string) ([]ledger.Category, error) {
	return r.Categories.ListForUser(ctx, userID)
}

func (r *Reader) ListRecurring(ctx context.Context, userID string) ([]ledger.RecurringTransaction, error) {
	return r.Recurring.ListByUser(ctx, userID)
}
