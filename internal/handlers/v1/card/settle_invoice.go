package card

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type SettleInvoiceBody struct {
	AccountID string `json:"accountID" format:"uuid" doc:"Account the payment is drawn from"`
	Amount    string `json:"amount" required:"true" doc:"Must equal the open invoice total"`
	Month     string `json:"month,omitempty" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Billing month YYYY-MM, defaults to the current month"`
}

type SettleInvoiceInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	CardID string `path:"id" format:"uuid" doc:"Card UUID"`
	Body   SettleInvoiceBody
}

type SettleInvoiceResponse struct {
	Settled bool `json:"settled" doc:"Always true on success"`
}

type SettleInvoiceOutput struct {
	Body SettleInvoiceResponse
}

type invoiceSettler interface {
	SettleInvoice(ctx context.Context, userID string, cardID, accountID uuid.UUID, amount decimal.Decimal, monthDate time.Time) bool
}

// SettleInvoiceHandler handles POST /v1/card/{id}/invoice/settle.
type SettleInvoiceHandler struct {
	InvoiceService invoiceSettler
	Now            func() time.Time
}

func NewSettleInvoiceHandler(svc invoiceSettler) *SettleInvoiceHandler {
	return &SettleInvoiceHandler{InvoiceService: svc, Now: time.Now}
}

func (h *SettleInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "settle-card-invoice",
		Method:      http.MethodPost,
		Path:        "/v1/card/{id}/invoice/settle",
		Summary:     "Pay a card invoice",
		Description: "Records one payment from the account and marks every transaction of the invoice as paid, atomically. " +
			"Responds 409 when nothing was written, for example when the amount does not match the invoice total.",
		Tags: []string{"Cards"},
	}, h.handle)
}

func (h *SettleInvoiceHandler) handle(ctx context.Context, input *SettleInvoiceInput) (*SettleInvoiceOutput, error) {
	cardID, err := uuid.FromString(input.CardID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid card id", err)
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	amount, err := handlerutil.ParseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}
	month, err := handlerutil.ParseMonth(input.Body.Month, h.Now())
	if err != nil {
		return nil, err
	}

	if !h.InvoiceService.SettleInvoice(ctx, input.UserID, cardID, accountID, amount, month) {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("settled", false)
		}
		return nil, huma.NewError(http.StatusConflict, "invoice was not settled")
	}

	return &SettleInvoiceOutput{Body: SettleInvoiceResponse{Settled: true}}, nil
}
