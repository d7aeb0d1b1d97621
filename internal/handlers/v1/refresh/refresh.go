package refresh

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/category"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// RefreshCard is a card as stored, without derived figures.
type RefreshCard struct {
	ID         string `json:"id" doc:"Card UUID"`
	Name       string `json:"name" doc:"Card name"`
	LimitTotal string `json:"limitTotal" doc:"Credit limit"`
	ClosingDay int    `json:"closingDay" doc:"Day of month the bill closes"`
	DueDay     int    `json:"dueDay" doc:"Day of month the bill is due"`
	Color      string `json:"color,omitempty" doc:"Display color"`
}

type Unresolved struct {
	TransactionID string `json:"transactionID" doc:"Transaction left out of every figure"`
	Kind          string `json:"kind" doc:"account or card"`
	TargetID      string `json:"targetID" doc:"Referenced id that does not exist"`
}

type RefreshResponse struct {
	Accounts     []account.Account         `json:"accounts" doc:"Accounts with recomputed balances"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Every transaction including generated ones"`
	Cards        []RefreshCard             `json:"cards" doc:"Credit cards"`
	Categories   []category.Category       `json:"categories" doc:"Categories visible to the caller"`
	Generated    int                       `json:"generated" doc:"Recurring postings created by this pass"`
	Unresolved   []Unresolved              `json:"unresolved" doc:"Transactions pointing at missing accounts or cards"`
	Warning      string                    `json:"warning,omitempty" doc:"Set when generated postings could not be saved"`
}

const unsavedWarning = "recurring postings were not saved and will be generated again on the next refresh"

type RefreshInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
}

type RefreshOutput struct {
	Body RefreshResponse
}

type reconciler interface {
	Refresh(ctx context.Context, userID string) (*ledger.RefreshResult, error)
}

// RefreshHandler handles POST /v1/refresh.
type RefreshHandler struct {
	ReconciliationService reconciler
}

func NewRefreshHandler(svc reconciler) *RefreshHandler {
	return &RefreshHandler{ReconciliationService: svc}
}

func (h *RefreshHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh",
		Method:      http.MethodPost,
		Path:        "/v1/refresh",
		Summary:     "Run a reconciliation pass",
		Description: "Generates this month's recurring postings and returns the ledger with every account balance recomputed.",
		Tags:        []string{"Reconciliation"},
	}, h.handle)
}

func toResponse(result *ledger.RefreshResult) RefreshResponse {
	resp := RefreshResponse{
		Accounts:     make([]account.Account, len(result.Accounts)),
		Transactions: transaction.FromLedgerList(result.Transactions),
		Cards:        make([]RefreshCard, len(result.Cards)),
		Categories:   category.FromLedgerList(result.Categories),
		Generated:    len(result.Generated),
		Unresolved:   make([]Unresolved, len(result.Unresolved)),
	}
	for i, acc := range result.Accounts {
		resp.Accounts[i] = account.FromLedger(acc)
	}
	for i, c := range result.Cards {
		resp.Cards[i] = RefreshCard{
			ID:         c.ID.String(),
			Name:       c.Name,
			LimitTotal: c.LimitTotal.String(),
			ClosingDay: c.ClosingDay,
			DueDay:     c.DueDay,
			Color:      c.Color,
		}
	}
	for i, u := range result.Unresolved {
		resp.Unresolved[i] = Unresolved{
			TransactionID: u.TransactionID.String(),
			Kind:          string(u.Kind),
			TargetID:      u.TargetID.String(),
		}
	}
	return resp
}

func (h *RefreshHandler) handle(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("refreshMs")
	}
	result, err := h.ReconciliationService.Refresh(ctx, input.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil && result == nil {
		return nil, handlerutil.ServiceError(err, "refresh failed")
	}

	resp := toResponse(result)
	if err != nil {
		// the view is complete, only the write-back of generated postings failed
		resp.Warning = unsavedWarning
		if logData != nil {
			logData.AddData("refreshWriteError", err.Error())
		}
	}
	if logData != nil {
		logData.AddData("generatedCount", len(result.Generated))
		logData.AddData("unresolvedCount", len(result.Unresolved))
	}
	return &RefreshOutput{Body: resp}, nil
}
