package card

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
)

type GetInvoiceInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	CardID string `path:"id" format:"uuid" doc:"Card UUID"`
	Month  string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Billing month YYYY-MM, defaults to the current month"`
}

type GetInvoiceOutput struct {
	Body Invoice
}

type invoiceReader interface {
	GetInvoice(ctx context.Context, userID string, cardID uuid.UUID, monthDate time.Time) (*ledger.Invoice, error)
}

// GetInvoiceHandler handles GET /v1/card/{id}/invoice.
type GetInvoiceHandler struct {
	CardService invoiceReader
	Now         func() time.Time
}

func NewGetInvoiceHandler(svc invoiceReader) *GetInvoiceHandler {
	return &GetInvoiceHandler{CardService: svc, Now: time.Now}
}

func (h *GetInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-card-invoice",
		Method:      http.MethodGet,
		Path:        "/v1/card/{id}/invoice",
		Summary:     "Get a card invoice",
		Description: "Returns the unpaid transactions of the card dated in the requested calendar month.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *GetInvoiceHandler) handle(ctx context.Context, input *GetInvoiceInput) (*GetInvoiceOutput, error) {
	cardID, err := uuid.FromString(input.CardID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid card id", err)
	}
	month, err := handlerutil.ParseMonth(input.Month, h.Now())
	if err != nil {
		return nil, err
	}

	invoice, err := h.CardService.GetInvoice(ctx, input.UserID, cardID, month)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "failed to load invoice")
	}

	return &GetInvoiceOutput{Body: fromInvoice(*invoice)}, nil
}
