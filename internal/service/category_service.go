package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

type CategoryService struct {
	reader    LedgerReader
	processor ActionProcessor
}

func NewCategoryService(reader LedgerReader, processor ActionProcessor) *CategoryService {
	return &CategoryService{reader: reader, processor: processor}
}

// ListCategories returns the shared defaults together with the user's own.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]ledger.Category, error) {
	return s.reader.ListCategories(ctx, userID)
}

// SaveCategory creates or replaces one of the user's categories and returns
// its id. Shared defaults cannot be replaced.
func (s *CategoryService) SaveCategory(ctx context.Context, userID string, category ledger.Category) (string, error) {
	if category.ID == "" {
		category.ID = ledger.NewID().String()
	}
	if err := s.processor.Process(ctx, &actions.UpsertCategory{UserID: userID, Category: category}); err != nil {
		return "", err
	}
	return category.ID, nil
}
