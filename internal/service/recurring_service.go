package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

type RecurringService struct {
	reader    LedgerReader
	processor ActionProcessor
}

func NewRecurringService(reader LedgerReader, processor ActionProcessor) *RecurringService {
	return &RecurringService{reader: reader, processor: processor}
}

func (s *RecurringService) ListRecurring(ctx context.Context, userID string) ([]ledger.RecurringTransaction, error) {
	return s.reader.ListRecurring(ctx, userID)
}

// SaveRecurring creates the config, or replaces it when cfg.ID is set.
func (s *RecurringService) SaveRecurring(ctx context.Context, userID string, cfg ledger.RecurringTransaction) (uuid.UUID, error) {
	cfg.ID = ensureID(cfg.ID)
	if err := s.processor.Process(ctx, &actions.UpsertRecurring{UserID: userID, Recurring: cfg}); err != nil {
		return uuid.Nil, err
	}
	return cfg.ID, nil
}

func (s *RecurringService) DeleteRecurring(ctx context.Context, userID string, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteRecurring{UserID: userID, ID: id})
}
