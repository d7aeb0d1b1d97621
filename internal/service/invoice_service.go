package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

type InvoiceService struct {
	processor ActionProcessor
	currency  ledger.Currency
	logger    *logrus.Logger
	timeout   time.Duration
	now       func() time.Time
}

func NewInvoiceService(processor ActionProcessor, opts Options) *InvoiceService {
	return &InvoiceService{
		processor: processor,
		currency:  opts.Currency,
		logger:    opts.Logger,
		timeout:   opts.SettlementTimeout,
		now:       opts.Now,
	}
}

// SettleInvoice pays the card's open invoice for the calendar month of
// monthDate from accountID. It reports false when nothing was written. The
// payment and the paid flags are committed together or not at all.
func (s *InvoiceService) SettleInvoice(ctx context.Context, userID string, cardID, accountID uuid.UUID, amount decimal.Decimal, monthDate time.Time) bool {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	action := &actions.SettleInvoice{
		UserID:    userID,
		CardID:    cardID,
		AccountID: accountID,
		Amount:    amount,
		MonthDate: monthDate,
		Today:     s.now(),
	}

	log := s.logger.WithFields(logrus.Fields{
		"userID":    userID,
		"cardID":    cardID.String(),
		"accountID": accountID.String(),
		"amount":    s.currency.Format(amount),
		"month":     monthDate.Format("2006-01"),
	})

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("settleInvoiceMs")
	}
	err := s.processor.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		log.WithError(err).Warn("InvoiceService.SettleInvoice.failed")
		return false
	}

	log.WithField("settled", action.Settled).Info("InvoiceService.SettleInvoice.complete")
	return true
}
