package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger-server/internal/storage"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrCardNotFound        = errors.New("card not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidInput        = errors.New("invalid input")
)

// IAction is one unit of work run inside a single database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
