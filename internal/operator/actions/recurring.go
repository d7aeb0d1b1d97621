package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type UpsertRecurring struct {
	UserID    string
	Recurring ledger.RecurringTransaction

	IAction
}

func (u *UpsertRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	cfg := u.Recurring
	switch {
	case !cfg.HasSingleBinding():
		return fmt.Errorf("%w: exactly one of account or card is required", ErrInvalidInput)
	case !cfg.Type.Valid():
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, cfg.Type)
	case !validDay(cfg.DayOfMonth):
		return fmt.Errorf("%w: day of month must be within 1-31", ErrInvalidInput)
	case !cfg.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	return writer.Recurring.Upsert(ctx, u.UserID, cfg)
}

type DeleteRecurring struct {
	UserID string
	ID     uuid.UUID

	IAction
}

func (d *DeleteRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Recurring.Delete(ctx, d.UserID, d.ID)
}
