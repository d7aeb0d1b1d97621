package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

type ListCardsInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
}

type ListCardsResponseBody struct {
	Cards []Card `json:"cards" doc:"Every card with its figures for the current month"`
}

type ListCardsOutput struct {
	Body ListCardsResponseBody
}

type cardLister interface {
	ListCards(ctx context.Context, userID string) ([]service.Card, error)
}

// ListCardsHandler handles GET /v1/cards.
type ListCardsHandler struct {
	CardService cardLister
}

func NewListCardsHandler(svc cardLister) *ListCardsHandler {
	return &ListCardsHandler{CardService: svc}
}

func (h *ListCardsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cards",
		Method:      http.MethodGet,
		Path:        "/v1/cards",
		Summary:     "List credit cards",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *ListCardsHandler) handle(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCardsMs")
	}
	cards, err := h.CardService.ListCards(ctx, input.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list cards", err)
	}

	resp := ListCardsResponseBody{Cards: make([]Card, len(cards))}
	for i, c := range cards {
		resp.Cards[i] = fromService(c)
	}
	return &ListCardsOutput{Body: resp}, nil
}
