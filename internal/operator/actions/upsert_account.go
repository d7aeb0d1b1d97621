package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type UpsertAccount struct {
	UserID  string
	Account ledger.Account
	// Existing makes the write an update that fails when the user owns no
	// account with this id.
	Existing bool

	IAction
}

func (c *UpsertAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if strings.TrimSpace(c.Account.Name) == "" {
		return fmt.Errorf("%w: account name is required", ErrInvalidInput)
	}
	if !c.Account.Type.Valid() {
		return fmt.Errorf("%w: unknown account type %q", ErrInvalidInput, c.Account.Type)
	}
	if c.Existing {
		found, err := writer.Account.FindByID(ctx, c.UserID, c.Account.ID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrAccountNotFound
		}
	}
	return writer.Account.Upsert(ctx, c.UserID, c.Account)
}

// DeleteAccount removes an account. Its transactions stay and are reported
// as unresolved by later refreshes.
type DeleteAccount struct {
	UserID string
	ID     uuid.UUID

	IAction
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Account.Delete(ctx, d.UserID, d.ID)
}
