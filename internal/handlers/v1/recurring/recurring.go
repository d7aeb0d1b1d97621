package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// Recurring is the API model of a recurring transaction config.
type Recurring struct {
	ID          string `json:"id" doc:"Config UUID"`
	Description string `json:"description" doc:"Copied to every generated transaction"`
	Amount      string `json:"amount" doc:"Decimal amount, always positive"`
	DayOfMonth  int    `json:"dayOfMonth" doc:"Day the posting falls on, clamped to short months"`
	Type        string `json:"type" doc:"INCOME or EXPENSE"`
	CategoryID  string `json:"categoryID" doc:"Category id"`
	AccountID   string `json:"accountID,omitempty" doc:"Account UUID"`
	CardID      string `json:"cardID,omitempty" doc:"Card UUID"`
	Active      bool   `json:"active" doc:"Inactive configs generate nothing"`
}

func fromLedger(r ledger.RecurringTransaction) Recurring {
	return Recurring{
		ID:          r.ID.String(),
		Description: r.Description,
		Amount:      r.Amount.String(),
		DayOfMonth:  r.DayOfMonth,
		Type:        string(r.Type),
		CategoryID:  r.CategoryID,
		AccountID:   handlerutil.FormatOptionalID(r.AccountID),
		CardID:      handlerutil.FormatOptionalID(r.CardID),
		Active:      r.Active,
	}
}

type recurringService interface {
	ListRecurring(ctx context.Context, userID string) ([]ledger.RecurringTransaction, error)
	SaveRecurring(ctx context.Context, userID string, cfg ledger.RecurringTransaction) (uuid.UUID, error)
	DeleteRecurring(ctx context.Context, userID string, id uuid.UUID) error
}

// Handler serves the recurring config endpoints.
type Handler struct {
	RecurringService recurringService
}

func NewHandler(svc recurringService) *Handler {
	return &Handler{RecurringService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recurring",
		Method:      http.MethodGet,
		Path:        "/v1/recurring",
		Summary:     "List recurring transactions",
		Tags:        []string{"Recurring"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "save-recurring",
		Method:      http.MethodPost,
		Path:        "/v1/recurring",
		Summary:     "Create or replace a recurring transaction",
		Description: "Creates a config, or replaces the one with the given id. Past generated postings are not touched.",
		Tags:        []string{"Recurring"},
	}, h.save)

	huma.Register(api, huma.Operation{
		OperationID: "delete-recurring",
		Method:      http.MethodDelete,
		Path:        "/v1/recurring/{id}",
		Summary:     "Delete a recurring transaction",
		Tags:        []string{"Recurring"},
	}, h.remove)
}

type ListInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
}

type ListOutput struct {
	Body struct {
		Recurring []Recurring `json:"recurring" doc:"Every recurring config of the caller"`
	}
}

func (h *Handler) list(ctx context.Context, input *ListInput) (*ListOutput, error) {
	configs, err := h.RecurringService.ListRecurring(ctx, input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list recurring transactions", err)
	}

	out := &ListOutput{}
	out.Body.Recurring = make([]Recurring, len(configs))
	for i, c := range configs {
		out.Body.Recurring[i] = fromLedger(c)
	}
	return out, nil
}

type SaveBody struct {
	ID          string `json:"id,omitempty" format:"uuid" doc:"Set to replace an existing config"`
	Description string `json:"description" minLength:"1" maxLength:"100" doc:"Copied to every generated transaction"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, always positive"`
	DayOfMonth  int    `json:"dayOfMonth" minimum:"1" maximum:"31" doc:"Day of month, clamped to short months"`
	Type        string `json:"type" enum:"INCOME,EXPENSE" doc:"INCOME or EXPENSE"`
	CategoryID  string `json:"categoryID" minLength:"1" doc:"Category id"`
	AccountID   string `json:"accountID,omitempty" format:"uuid" doc:"Account UUID, exclusive with cardID"`
	CardID      string `json:"cardID,omitempty" format:"uuid" doc:"Card UUID, exclusive with accountID"`
	Active      *bool  `json:"active,omitempty" doc:"Defaults to true"`
}

type SaveInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	Body   SaveBody
}

type SaveResponse struct {
	ID string `json:"id" doc:"Config UUID"`
}

type SaveOutput struct {
	Body SaveResponse
}

func parseSaveInput(input *SaveInput) (ledger.RecurringTransaction, error) {
	body := input.Body

	id, err := handlerutil.ParseOptionalID(body.ID, "id")
	if err != nil {
		return ledger.RecurringTransaction{}, err
	}
	amount, err := handlerutil.ParseAmount(body.Amount)
	if err != nil {
		return ledger.RecurringTransaction{}, err
	}
	accountID, err := handlerutil.ParseOptionalID(body.AccountID, "accountID")
	if err != nil {
		return ledger.RecurringTransaction{}, err
	}
	cardID, err := handlerutil.ParseOptionalID(body.CardID, "cardID")
	if err != nil {
		return ledger.RecurringTransaction{}, err
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	cfg := ledger.RecurringTransaction{
		ID:          id.UUID,
		Description: body.Description,
		Amount:      amount,
		DayOfMonth:  body.DayOfMonth,
		Type:        ledger.TransactionType(body.Type),
		CategoryID:  body.CategoryID,
		AccountID:   accountID,
		CardID:      cardID,
		Active:      active,
	}
	if !cfg.HasSingleBinding() {
		return ledger.RecurringTransaction{}, huma.NewError(http.StatusBadRequest, "exactly one of accountID or cardID is required")
	}
	return cfg, nil
}

func (h *Handler) save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	cfg, err := parseSaveInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.RecurringService.SaveRecurring(ctx, input.UserID, cfg)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "failed to save recurring transaction")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("recurringID", id.String())
	}
	return &SaveOutput{Body: SaveResponse{ID: id.String()}}, nil
}

type DeleteInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	ID     string `path:"id" format:"uuid" doc:"Config UUID"`
}

type DeleteOutput struct {
	Status int
}

// remove deletes the config only. Transactions it generated stay in the ledger.
func (h *Handler) remove(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	if err := h.RecurringService.DeleteRecurring(ctx, input.UserID, id); err != nil {
		return nil, handlerutil.ServiceError(err, "failed to delete recurring transaction")
	}
	return &DeleteOutput{Status: http.StatusNoContent}, nil
}
