package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                   string `json:"id" doc:"Transaction UUID"`
	Description          string `json:"description" doc:"Free text description"`
	Amount               string `json:"amount" doc:"Decimal amount, always positive"`
	Date                 string `json:"date" doc:"Calendar day, YYYY-MM-DD"`
	Type                 string `json:"type" doc:"INCOME or EXPENSE"`
	CategoryID           string `json:"categoryID" doc:"Category id"`
	AccountID            string `json:"accountID,omitempty" doc:"Account UUID, set when bound to an account"`
	CardID               string `json:"cardID,omitempty" doc:"Card UUID, set when bound to a card"`
	IsPaid               bool   `json:"isPaid" doc:"Whether the transaction has settled"`
	InstallmentCurrent   int    `json:"installmentCurrent,omitempty" doc:"1-based installment number"`
	InstallmentTotal     int    `json:"installmentTotal,omitempty" doc:"Number of installments in the group"`
	RelatedTransactionID string `json:"relatedTransactionID,omitempty" doc:"Installment group id"`
	RelatedRecurringID   string `json:"relatedRecurringID,omitempty" doc:"Recurring config that generated it"`
	CreatedAt            string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

// FromLedger converts a ledger transaction to its API form.
func FromLedger(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:                   tx.ID.String(),
		Description:          tx.Description,
		Amount:               tx.Amount.String(),
		Date:                 tx.Date.Format(ledger.DateFormat),
		Type:                 string(tx.Type),
		CategoryID:           tx.CategoryID,
		AccountID:            handlerutil.FormatOptionalID(tx.AccountID),
		CardID:               handlerutil.FormatOptionalID(tx.CardID),
		IsPaid:               tx.IsPaid,
		InstallmentCurrent:   tx.InstallmentCurrent,
		InstallmentTotal:     tx.InstallmentTotal,
		RelatedTransactionID: handlerutil.FormatOptionalID(tx.RelatedTransactionID),
		RelatedRecurringID:   handlerutil.FormatOptionalID(tx.RelatedRecurringID),
	}
}

// FromLedgerList converts txs, never returning nil.
func FromLedgerList(txs []ledger.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = FromLedger(tx)
	}
	return out
}

func withCreatedAt(tx Transaction, createdAt time.Time) Transaction {
	tx.CreatedAt = createdAt.Format(time.RFC3339)
	return tx
}

// postingFields are the request fields shared by create and update.
type postingFields struct {
	Description string
	Amount      string
	Date        string
	Type        string
	CategoryID  string
	AccountID   string
	CardID      string
	IsPaid      *bool
}

// parsePosting builds a transaction from request fields. An empty date means
// today and isPaid defaults to true only for account transactions.
func parsePosting(f postingFields, now time.Time) (ledger.Transaction, error) {
	amount, err := handlerutil.ParseAmount(f.Amount)
	if err != nil {
		return ledger.Transaction{}, err
	}

	date := ledger.Day(now)
	if f.Date != "" {
		date, err = ledger.ParseDate(f.Date)
		if err != nil {
			return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	accountID, err := handlerutil.ParseOptionalID(f.AccountID, "accountID")
	if err != nil {
		return ledger.Transaction{}, err
	}
	cardID, err := handlerutil.ParseOptionalID(f.CardID, "cardID")
	if err != nil {
		return ledger.Transaction{}, err
	}
	if accountID.Valid == cardID.Valid {
		return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "exactly one of accountID or cardID is required")
	}

	isPaid := accountID.Valid
	if f.IsPaid != nil {
		isPaid = *f.IsPaid
	}

	return ledger.Transaction{
		Description: f.Description,
		Amount:      amount,
		Date:        date,
		Type:        ledger.TransactionType(f.Type),
		CategoryID:  f.CategoryID,
		AccountID:   accountID,
		CardID:      cardID,
		IsPaid:      isPaid,
	}, nil
}
