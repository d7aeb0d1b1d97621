package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type SaveCategoryBody struct {
	ID    string `json:"id,omitempty" maxLength:"64" doc:"Set to replace one of your categories, generated when empty"`
	Name  string `json:"name" minLength:"1" maxLength:"50" doc:"Display name"`
	Icon  string `json:"icon,omitempty" doc:"Icon name"`
	Color string `json:"color,omitempty" doc:"Display color"`
	Type  string `json:"type" enum:"INCOME,EXPENSE" doc:"INCOME or EXPENSE"`
}

type SaveCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
	Body   SaveCategoryBody
}

type SaveCategoryOutput struct {
	Body struct {
		ID string `json:"id" doc:"Category id"`
	}
}

type categorySaver interface {
	SaveCategory(ctx context.Context, userID string, category ledger.Category) (string, error)
}

// SaveCategoryHandler handles POST /v1/category.
type SaveCategoryHandler struct {
	CategoryService categorySaver
}

func NewSaveCategoryHandler(svc categorySaver) *SaveCategoryHandler {
	return &SaveCategoryHandler{CategoryService: svc}
}

func (h *SaveCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create or replace a category",
		Description: "Creates a category, or replaces one of the caller's own. Shared default categories cannot be changed.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *SaveCategoryHandler) handle(ctx context.Context, input *SaveCategoryInput) (*SaveCategoryOutput, error) {
	id, err := h.CategoryService.SaveCategory(ctx, input.UserID, ledger.Category{
		ID:    input.Body.ID,
		Name:  input.Body.Name,
		Icon:  input.Body.Icon,
		Color: input.Body.Color,
		Type:  ledger.TransactionType(input.Body.Type),
	})
	if err != nil {
		return nil, handlerutil.ServiceError(err, "failed to save category")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryID", id)
	}

	out := &SaveCategoryOutput{}
	out.Body.ID = id
	return out, nil
}
