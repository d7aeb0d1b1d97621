package refresh

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
)

type SummaryInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	Month  string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Month YYYY-MM, defaults to the current month"`
}

type SummaryResponse struct {
	Month        string `json:"month" doc:"YYYY-MM"`
	TotalBalance string `json:"totalBalance" doc:"Sum of all current account balances"`
	Income       string `json:"income" doc:"Operational income dated in the month"`
	Expense      string `json:"expense" doc:"Operational expense dated in the month"`
	Result       string `json:"result" doc:"Income minus expense"`
}

type SummaryOutput struct {
	Body SummaryResponse
}

type summarizer interface {
	Summary(ctx context.Context, userID string, year int, month time.Month) (ledger.Summary, error)
}

// SummaryHandler handles GET /v1/summary.
type SummaryHandler struct {
	ReconciliationService summarizer
	Now                   func() time.Time
}

func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{ReconciliationService: svc, Now: time.Now}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Monthly summary",
		Description: "Returns income, expense and result for one month. Savings and investment accounts are left out.",
		Tags:        []string{"Reconciliation"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	month, err := handlerutil.ParseMonth(input.Month, h.Now())
	if err != nil {
		return nil, err
	}

	s, err := h.ReconciliationService.Summary(ctx, input.UserID, month.Year(), month.Month())
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	return &SummaryOutput{Body: SummaryResponse{
		Month:        month.Format(handlerutil.MonthFormat),
		TotalBalance: s.TotalBalance.String(),
		Income:       s.Income.String(),
		Expense:      s.Expense.String(),
		Result:       s.Result.String(),
	}}, nil
}
