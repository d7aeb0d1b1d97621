package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	reader    Reader
	processor ActionProcessor
	currency  ledger.Currency
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader Reader, processor ActionProcessor, opts Options) *TransactionService {
	return &TransactionService{reader: reader, processor: processor, currency: opts.Currency}
}

// CreateTransaction stores tx and returns every posting written. A card
// purchase with more than one installment yields one posting per month.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, tx ledger.Transaction) ([]ledger.Transaction, error) {
	action := &actions.CreateTransaction{
		UserID:      userID,
		Transaction: tx,
		Currency:    s.currency,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Created, nil
}

// UpdateTransaction replaces the editable fields of the transaction with tx.ID.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID string, tx ledger.Transaction) (ledger.Transaction, error) {
	action := &actions.UpdateTransaction{
		UserID:      userID,
		Transaction: tx,
		Currency:    s.currency,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.Transaction{}, err
	}
	return action.Updated, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id})
}

// ListTransactions returns one page of the user's transactions, latest date
// first, narrowed by q.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, q TransactionQuery) (TransactionPage, error) {
	if q.AccountID.Valid && q.CardID.Valid {
		return TransactionPage{}, fmt.Errorf("%w: filter by account or by card, not both", ErrInvalidInput)
	}

	filter := transaction.Filter{
		AccountID: q.AccountID,
		CardID:    q.CardID,
		Limit:     q.Limit,
		Offset:    q.Offset,
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultLimit
	case filter.Limit > maxLimit:
		filter.Limit = maxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if !q.Month.IsZero() {
		filter.From, filter.To = ledger.MonthWindow(q.Month)
	}

	rows, err := s.reader.ListTransactionPage(ctx, userID, filter)
	if err != nil {
		return TransactionPage{}, err
	}

	var page TransactionPage
	if len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
		next := filter.Offset + filter.Limit
		page.NextOffset = &next
	}

	page.Transactions = make([]Transaction, len(rows))
	for i, row := range rows {
		page.Transactions[i] = Transaction{
			Transaction: row.Transaction,
			CreatedAt:   row.CreatedAt,
		}
	}
	return page, nil
}
