package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
)

// UpdateAccountInput replaces every field of an existing account.
type UpdateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	ID     string `path:"id" format:"uuid" doc:"Account UUID"`
	Body   CreateAccountBody
}

type UpdateAccountOutput struct {
	Status int
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, userID string, account ledger.Account) error
}

// UpdateAccountHandler handles PUT /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Update an account",
		Description: "Replaces the name, type, opening balance and color of an existing account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	acc, err := parseAccountBody(input.Body)
	if err != nil {
		return nil, err
	}
	acc.ID = id

	if err := h.AccountService.UpdateAccount(ctx, input.UserID, acc); err != nil {
		return nil, handlerutil.ServiceError(err, "failed to update account")
	}
	return &UpdateAccountOutput{Status: http.StatusNoContent}, nil
}
