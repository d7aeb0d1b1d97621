package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Description      string `json:"description" minLength:"1" maxLength:"100" doc:"Free text description"`
	Amount           string `json:"amount" required:"true" doc:"Decimal amount, always positive"`
	Date             string `json:"date,omitempty" format:"date" doc:"Calendar day YYYY-MM-DD, defaults to today"`
	Type             string `json:"type" enum:"INCOME,EXPENSE" doc:"INCOME or EXPENSE"`
	CategoryID       string `json:"categoryID" minLength:"1" doc:"Category id"`
	AccountID        string `json:"accountID,omitempty" format:"uuid" doc:"Account UUID, exclusive with cardID"`
	CardID           string `json:"cardID,omitempty" format:"uuid" doc:"Card UUID, exclusive with accountID"`
	IsPaid           *bool  `json:"isPaid,omitempty" doc:"Defaults to true for account transactions and false for card purchases"`
	InstallmentTotal int    `json:"installmentTotal,omitempty" minimum:"1" maximum:"48" doc:"Split a card purchase into this many monthly installments"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	Body   CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	Transactions []Transaction `json:"transactions" doc:"Every posting written, one per installment"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID string, tx ledger.Transaction) ([]ledger.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	Now                func() time.Time
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, Now: time.Now}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a transaction. Card purchases with installmentTotal above 1 are split into monthly installments.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput, now time.Time) (ledger.Transaction, error) {
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
	tx.InstallmentTotal = body.InstallmentTotal
	return tx, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	tx, err := parseCreateTransactionInput(input, h.Now())
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.CreateTransaction(ctx, input.UserID, tx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlerutil.ServiceError(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("postingCount", len(created))
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{Transactions: FromLedgerList(created)},
	}, nil
}
