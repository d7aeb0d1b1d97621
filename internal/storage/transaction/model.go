package transaction

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const (
	TableName = "transactions"

	// MaxDescriptionLength matches the description column width.
	MaxDescriptionLength = 100
)

var ErrNotFound = errors.New("transaction not found")

// Record is a stored transaction with its bookkeeping columns.
type Record struct {
	ledger.Transaction
	CreatedAt time.Time
}

// Filter narrows a paginated listing. Zero From or To leave that end of the
// date range open. At most one of AccountID and CardID is expected.
type Filter struct {
	From      time.Time
	To        time.Time
	AccountID uuid.NullUUID
	CardID    uuid.NullUUID
	Limit     int
	Offset    int
}

type row struct {
	ID                   uuid.UUID       `db:"id"`
	UserID               string          `db:"user_id"`
	Description          string          `db:"description"`
	Amount               decimal.Decimal `db:"amount"`
	Date                 time.Time       `db:"date"`
	Type                 string          `db:"type"`
	CategoryID           string          `db:"category_id"`
	AccountID            uuid.NullUUID   `db:"account_id"`
	CardID               uuid.NullUUID   `db:"card_id"`
	IsPaid               bool            `db:"is_paid"`
	InstallmentCurrent   sql.NullInt32   `db:"installment_current"`
	InstallmentTotal     sql.NullInt32   `db:"installment_total"`
	RelatedTransactionID uuid.NullUUID   `db:"related_transaction_id"`
	RelatedRecurringID   uuid.NullUUID   `db:"related_recurring_id"`
	CreatedAt            time.Time       `db:"created_at"`
}

// writeColumns are the columns an insert or upsert sets, in values order.
var writeColumns = []string{
	"id",
	"user_id",
	"description",
	"amount",
	"date",
	"type",
	"category_id",
	"account_id",
	"card_id",
	"is_paid",
	"installment_current",
	"installment_total",
	"related_transaction_id",
	"related_recurring_id",
}

func selectColumns() []any {
	cols := make([]any, 0, len(writeColumns)+1)
	for _, c := range writeColumns {
		cols = append(cols, c)
	}
	return append(cols, "created_at")
}

func (r row) toRecord() *Record {
	return &Record{
		Transaction: ledger.Transaction{
			ID:                   r.ID,
			Description:          r.Description,
			Amount:               r.Amount,
			Date:                 ledger.Day(r.Date),
			Type:                 ledger.TransactionType(r.Type),
			CategoryID:           r.CategoryID,
			AccountID:            r.AccountID,
			CardID:               r.CardID,
			IsPaid:               r.IsPaid,
			InstallmentCurrent:   int(r.InstallmentCurrent.Int32),
			InstallmentTotal:     int(r.InstallmentTotal.Int32),
			RelatedTransactionID: r.RelatedTransactionID,
			RelatedRecurringID:   r.RelatedRecurringID,
		},
		CreatedAt: r.CreatedAt,
	}
}

func values(userID string, tx ledger.Transaction) []any {
	return []any{
		tx.ID,
		userID,
		TruncateDescription(tx.Description),
		tx.Amount,
		ledger.Day(tx.Date),
		string(tx.Type),
		tx.CategoryID,
		tx.AccountID,
		tx.CardID,
		tx.IsPaid,
		nullInt(tx.InstallmentCurrent),
		nullInt(tx.InstallmentTotal),
		tx.RelatedTransactionID,
		tx.RelatedRecurringID,
	}
}

func nullInt(n int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(n), Valid: n > 0}
}

// TruncateDescription cuts s to MaxDescriptionLength runes.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxDescriptionLength {
		return s
	}
	return string(runes[:MaxDescriptionLength])
}
