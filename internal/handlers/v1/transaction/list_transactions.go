package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions. Every
// filter is optional.
type ListTransactionsInput struct {
	UserID    string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	Month     string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Only transactions dated in this month, YYYY-MM"`
	AccountID string `query:"accountID" format:"uuid" doc:"Only transactions bound to this account"`
	CardID    string `query:"cardID" format:"uuid" doc:"Only transactions bound to this card"`
	Limit     int    `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Page size"`
	Offset    int    `query:"offset" minimum:"0" doc:"Rows to skip, taken from nextOffset"`
}

type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Latest date first"`
	NextOffset   *int          `json:"nextOffset,omitempty" doc:"Offset of the next page, absent on the last page"`
}

type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, userID string, q service.TransactionQuery) (service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Pages through the caller's transactions by date, optionally narrowed to one month and one account or card.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, error) {
	q := service.TransactionQuery{Limit: input.Limit, Offset: input.Offset}

	if input.Month != "" {
		month, err := handlerutil.ParseMonth(input.Month, time.Time{})
		if err != nil {
			return service.TransactionQuery{}, err
		}
		q.Month = month
	}

	var err error
	if q.AccountID, err = handlerutil.ParseOptionalID(input.AccountID, "accountID"); err != nil {
		return service.TransactionQuery{}, err
	}
	if q.CardID, err = handlerutil.ParseOptionalID(input.CardID, "cardID"); err != nil {
		return service.TransactionQuery{}, err
	}
	if q.AccountID.Valid && q.CardID.Valid {
		return service.TransactionQuery{}, huma.NewError(http.StatusBadRequest, "filter by accountID or cardID, not both")
	}
	return q, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	q, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, input.UserID, q)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlerutil.ServiceError(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Transactions)),
		NextOffset:   page.NextOffset,
	}
	for i, tx := range page.Transactions {
		resp.Transactions[i] = withCreatedAt(FromLedger(tx.Transaction), tx.CreatedAt)
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
