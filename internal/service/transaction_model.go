package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Transaction is a stored transaction as listed page by page.
type Transaction struct {
	ledger.Transaction
	CreatedAt time.Time
}

// TransactionQuery narrows a transaction listing. A zero Month lists every
// month. At most one of AccountID and CardID may be set.
type TransactionQuery struct {
	Month     time.Time
	AccountID uuid.NullUUID
	CardID    uuid.NullUUID
	Limit     int
	Offset    int
}

// TransactionPage is one page of a listing. NextOffset is nil on the last page.
type TransactionPage struct {
	Transactions []Transaction
	NextOffset   *int
}
