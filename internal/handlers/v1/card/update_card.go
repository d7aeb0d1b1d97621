package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
)

type UpdateCardInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	ID     string `path:"id" format:"uuid" doc:"Card UUID"`
	Body   CreateCardBody
}

type UpdateCardOutput struct {
	Status int
}

type DeleteCardInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	ID     string `path:"id" format:"uuid" doc:"Card UUID"`
}

type DeleteCardOutput struct {
	Status int
}

type cardEditor interface {
	UpdateCard(ctx context.Context, userID string, card ledger.CreditCard) error
	DeleteCard(ctx context.Context, userID string, id uuid.UUID) error
}

// EditCardHandler handles PUT and DELETE on /v1/card/{id}.
type EditCardHandler struct {
	CardService cardEditor
}

func NewEditCardHandler(svc cardEditor) *EditCardHandler {
	return &EditCardHandler{CardService: svc}
}

func (h *EditCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-card",
		Method:      http.MethodPut,
		Path:        "/v1/card/{id}",
		Summary:     "Update a credit card",
		Description: "Replaces the card settings. Invoices are always computed from the current closing and due days.",
		Tags:        []string{"Cards"},
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID: "delete-card",
		Method:      http.MethodDelete,
		Path:        "/v1/card/{id}",
		Summary:     "Delete a credit card",
		Description: "Deletes the card. Purchases made with it are kept and reported as unresolved on refresh.",
		Tags:        []string{"Cards"},
	}, h.remove)
}

func (h *EditCardHandler) update(ctx context.Context, input *UpdateCardInput) (*UpdateCardOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	card, err := parseCardBody(input.Body)
	if err != nil {
		return nil, err
	}
	card.ID = id

	if err := h.CardService.UpdateCard(ctx, input.UserID, card); err != nil {
		return nil, handlerutil.ServiceError(err, "failed to update card")
	}
	return &UpdateCardOutput{Status: http.StatusNoContent}, nil
}

func (h *EditCardHandler) remove(ctx context.Context, input *DeleteCardInput) (*DeleteCardOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err := h.CardService.DeleteCard(ctx, input.UserID, id); err != nil {
		return nil, handlerutil.ServiceError(err, "failed to delete card")
	}
	return &DeleteCardOutput{Status: http.StatusNoContent}, nil
}
