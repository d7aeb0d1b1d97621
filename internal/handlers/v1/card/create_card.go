package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type CreateCardBody struct {
	Name       string `json:"name" minLength:"1" doc:"Card name"`
	LimitTotal string `json:"limitTotal" required:"true" doc:"Credit limit, e.g. '5000.00'"`
	ClosingDay int    `json:"closingDay" minimum:"1" maximum:"31" doc:"Day of month the bill closes"`
	DueDay     int    `json:"dueDay" minimum:"1" maximum:"31" doc:"Day of month the bill is due"`
	Color      string `json:"color,omitempty" doc:"Display color"`
}

type CreateCardInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	Body   CreateCardBody
}

type CreateCardResponse struct {
	ID string `json:"id" doc:"Created card UUID"`
}

type CreateCardOutput struct {
	Status int
	Body   CreateCardResponse
}

type cardCreator interface {
	CreateCard(ctx context.Context, userID string, card ledger.CreditCard) (uuid.UUID, error)
}

// CreateCardHandler handles POST /v1/card.
type CreateCardHandler struct {
	CardService cardCreator
}

func NewCreateCardHandler(svc cardCreator) *CreateCardHandler {
	return &CreateCardHandler{CardService: svc}
}

func (h *CreateCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-card",
		Method:      http.MethodPost,
		Path:        "/v1/card",
		Summary:     "Create a credit card",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *CreateCardHandler) handle(ctx context.Context, input *CreateCardInput) (*CreateCardOutput, error) {
	card, err := parseCardBody(input.Body)
	if err != nil {
		return nil, err
	}

	id, err := h.CardService.CreateCard(ctx, input.UserID, card)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "failed to create card")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("cardID", id.String())
	}

	return &CreateCardOutput{
		Status: http.StatusCreated,
		Body:   CreateCardResponse{ID: id.String()},
	}, nil
}

func parseCardBody(body CreateCardBody) (ledger.CreditCard, error) {
	limit, err := handlerutil.ParseAmount(body.LimitTotal)
	if err != nil {
		return ledger.CreditCard{}, err
	}
	return ledger.CreditCard{
		Name:       body.Name,
		LimitTotal: limit,
		ClosingDay: body.ClosingDay,
		DueDay:     body.DueDay,
		Color:      body.Color,
	}, nil
}
