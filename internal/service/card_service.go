package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// Card is a credit card with its figures for the current month.
type Card struct {
	ledger.CreditCard
	AvailableCredit decimal.Decimal
	OpenInvoice     decimal.Decimal
	MonthTotal      decimal.Decimal
}

type CardService struct {
	reader    Reader
	processor ActionProcessor
	now       func() time.Time
}

func NewCardService(reader Reader, processor ActionProcessor, opts Options) *CardService {
	return &CardService{reader: reader, processor: processor, now: opts.Now}
}

func (s *CardService) CreateCard(ctx context.Context, userID string, card ledger.CreditCard) (uuid.UUID, error) {
	card.ID = ensureID(card.ID)
	if err := s.processor.Process(ctx, &actions.UpsertCard{UserID: userID, Card: card}); err != nil {
		return uuid.Nil, err
	}
	return card.ID, nil
}

func (s *CardService) UpdateCard(ctx context.Context, userID string, card ledger.CreditCard) error {
	return s.processor.Process(ctx, &actions.UpsertCard{UserID: userID, Card: card, Existing: true})
}

// DeleteCard removes the card. Purchases made on it are kept.
func (s *CardService) DeleteCard(ctx context.Context, userID string, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteCard{UserID: userID, ID: id})
}

func (s *CardService) ListCards(ctx context.Context, userID string) ([]Card, error) {
	cards, err := s.reader.ListCards(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.reader.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := make([]Card, len(cards))
	for i, c := range cards {
		result[i] = Card{
			CreditCard:      c,
			AvailableCredit: ledger.AvailableCredit(c, txs, today),
			OpenInvoice:     ledger.OpenInvoice(c, txs, today).Total,
			MonthTotal:      ledger.CardMonthTotal(c.ID, txs, today.Year(), today.Month()),
		}
	}
	return result, nil
}

// GetInvoice returns the card's open invoice for the calendar month of monthDate.
func (s *CardService) GetInvoice(ctx context.Context, userID string, cardID uuid.UUID, monthDate time.Time) (*ledger.Invoice, error) {
	card, err := s.reader.FindCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrNotFound
	}

	txs, err := s.reader.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoice := ledger.OpenInvoice(*card, txs, monthDate)
	return &invoice, nil
}
