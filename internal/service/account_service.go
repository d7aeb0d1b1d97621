package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// AccountService handles account business logic.
type AccountService struct {
	reader    LedgerReader
	processor ActionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader LedgerReader, processor ActionProcessor) *AccountService {
	return &AccountService{reader: reader, processor: processor}
}

// CreateAccount stores a new account and returns its ID.
func (s *AccountService) CreateAccount(ctx context.Context, userID string, account ledger.Account) (uuid.UUID, error) {
	account.ID = ensureID(account.ID)
	account.CurrentBalance = account.InitialBalance

	if err := s.processor.Process(ctx, &actions.UpsertAccount{UserID: userID, Account: account}); err != nil {
		return uuid.Nil, err
	}
	return account.ID, nil
}

// UpdateAccount replaces the editable fields of the account with account.ID.
func (s *AccountService) UpdateAccount(ctx context.Context, userID string, account ledger.Account) error {
	return s.processor.Process(ctx, &actions.UpsertAccount{UserID: userID, Account: account, Existing: true})
}

// DeleteAccount removes the account and keeps its transactions.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteAccount{UserID: userID, ID: id})
}

// ListAccounts returns the user's accounts with balances recomputed from
// their transactions.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]ledger.Account, error) {
	accounts, err := s.reader.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.reader.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.CalculateBalances(accounts, txs).Accounts, nil
}
