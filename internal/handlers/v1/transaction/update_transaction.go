package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// UpdateTransactionBody is the request body for editing a transaction.
// Installment fields are not editable.
type UpdateTransactionBody struct {
	Description string `json:"description" minLength:"1" maxLength:"100" doc:"Free text description"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, always positive"`
	Date        string `json:"date" format:"date" doc:"Calendar day YYYY-MM-DD"`
	Type        string `json:"type" enum:"INCOME,EXPENSE" doc:"INCOME or EXPENSE"`
	CategoryID  string `json:"categoryID" minLength:"1" doc:"Category id"`
	AccountID   string `json:"accountID,omitempty" format:"uuid" doc:"Account UUID, exclusive with cardID"`
	CardID      string `json:"cardID,omitempty" format:"uuid" doc:"Card UUID, exclusive with accountID"`
	IsPaid      *bool  `json:"isPaid,omitempty" doc:"Defaults to true for account transactions and false for card purchases"`
}

type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body   UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID string, tx ledger.Transaction) (ledger.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
	Now                func() time.Time
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc, Now: time.Now}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the editable fields of one transaction. Installment numbering and group links are kept.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput, now time.Time) (ledger.Transaction, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	body := input.Body
	tx, err := parsePosting(postingFields{
		Description: body.Description,
		Amount:      body.Amount,
		Date:        body.Date,
		Type:        body.Type,
		CategoryID:  body.CategoryID,
		AccountID:   body.AccountID,
		CardID:      body.CardID,
		IsPaid:      body.IsPaid,
	}, now)
	if err != nil {
		return ledger.Transaction{}, err
	}
	tx.ID = id
	return tx, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := parseUpdateTransactionInput(input, h.Now())
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	updated, err := h.TransactionService.UpdateTransaction(ctx, input.UserID, tx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlerutil.ServiceError(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: FromLedger(updated)}, nil
}
