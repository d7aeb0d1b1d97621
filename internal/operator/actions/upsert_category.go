package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type UpsertCategory struct {
	UserID   string
	Category ledger.Category

	IAction
}

func (u *UpsertCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	c := u.Category
	switch {
	case strings.TrimSpace(c.ID) == "":
		return fmt.Errorf("%w: category id is required", ErrInvalidInput)
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	case !c.Type.Valid():
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, c.Type)
	}

	written, err := writer.Category.Upsert(ctx, u.UserID, c)
	if err != nil {
		return err
	}
	if !written {
		return fmt.Errorf("%w: category %q cannot be changed", ErrInvalidInput, c.ID)
	}
	return nil
}
