package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type UpsertCard struct {
	UserID string
	Card   ledger.CreditCard
	// Existing makes the write an update that fails when the user owns no
	// card with this id.
	Existing bool

	IAction
}

func (c *UpsertCard) Perform(ctx context.Context, writer *storage.Writer) error {
	switch {
	case strings.TrimSpace(c.Card.Name) == "":
		return fmt.Errorf("%w: card name is required", ErrInvalidInput)
	case !validDay(c.Card.ClosingDay), !validDay(c.Card.DueDay):
		return fmt.Errorf("%w: closing and due day must be within 1-31", ErrInvalidInput)
	case c.Card.LimitTotal.IsNegative():
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	if c.Existing {
		found, err := writer.Card.FindByID(ctx, c.UserID, c.Card.ID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrCardNotFound
		}
	}
	return writer.Card.Upsert(ctx, c.UserID, c.Card)
}

type DeleteCard struct {
	UserID string
	ID     uuid.UUID

	IAction
}

func (d *DeleteCard) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Card.Delete(ctx, d.UserID, d.ID)
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}
