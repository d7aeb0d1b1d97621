package service

import (
	"context"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// ReconciliationService runs reconciliation passes for a user.
type ReconciliationService struct {
	reader    LedgerReader
	processor ActionProcessor
	logger    *logrus.Logger
	now       func() time.Time
}

func NewReconciliationService(reader LedgerReader, processor ActionProcessor, opts Options) *ReconciliationService {
	return &ReconciliationService{
		reader:    reader,
		processor: processor,
		logger:    opts.Logger,
		now:       opts.Now,
	}
}

// Refresh loads the user's ledger, posts recurring transactions due in the
// current month, and recomputes every account balance. Generated postings
// are written back. When that write fails the computed result is still
// returned together with the error.
func (s *ReconciliationService) Refresh(ctx context.Context, userID string) (*ledger.RefreshResult, error) {
	snap, err := loadSnapshot(ctx, s.reader, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := ledger.Refresh(snap, now.Month(), now.Year())

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("generatedCount", len(result.Generated))
		logData.AddData("unresolvedCount", len(result.Unresolved))
	}
	s.reportUnresolved(userID, result.Unresolved)

	if len(result.Generated) == 0 {
		return &result, nil
	}

	err = s.processor.Process(ctx, &actions.UpsertTransactions{
		UserID:       userID,
		Transactions: result.Generated,
	})
	if err != nil {
		return &result, fmt.Errorf("persisting recurring postings: %w", err)
	}
	return &result, nil
}

// Summary computes the dashboard figures for one month.
func (s *ReconciliationService) Summary(ctx context.Context, userID string, year int, month time.Month) (ledger.Summary, error) {
	accounts, err := s.reader.ListAccounts(ctx, userID)
	if err != nil {
		return ledger.Summary{}, err
	}
	txs, err := s.reader.ListTransactions(ctx, userID)
	if err != nil {
		return ledger.Summary{}, err
	}

	balances := ledger.CalculateBalances(accounts, txs)
	s.reportUnresolved(userID, balances.Unresolved)
	return ledger.MonthlySummary(balances.Accounts, txs, year, month), nil
}

func (s *ReconciliationService) reportUnresolved(userID string, unresolved []ledger.UnresolvedReference) {
	if len(unresolved) == 0 {
		return
	}
	entry := s.logger.WithFields(logrus.Fields{
		"userID":          userID,
		"unresolvedCount": len(unresolved),
	})
	entry.Warn("ReconciliationService.Refresh.unresolvedReferences")
	if s.logger.IsLevelEnabled(logrus.DebugLevel) {
		entry.Debug(spew.Sdump(unresolved))
	}
}
