package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Category is the API model of a transaction category.
type Category struct {
	ID    string `json:"id" doc:"Category id"`
	Name  string `json:"name" doc:"Display name"`
	Icon  string `json:"icon,omitempty" doc:"Icon name"`
	Color string `json:"color,omitempty" doc:"Display color"`
	Type  string `json:"type" doc:"INCOME or EXPENSE"`
}

func FromLedger(c ledger.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color, Type: string(c.Type)}
}

func FromLedgerList(categories []ledger.Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = FromLedger(c)
	}
	return out
}

type ListCategoriesInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Owner of the ledger"`
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"Shared defaults followed by the caller's own"`
	}
}

type categoryLister interface {
	ListCategories(ctx context.Context, userID string) ([]ledger.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := h.CategoryService.ListCategories(ctx, input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = FromLedgerList(categories)
	return out, nil
}
