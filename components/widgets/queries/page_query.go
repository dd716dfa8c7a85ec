package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// PageLayoutInput identifies the page to resolve.
type PageLayoutInput struct {
	Page widgets.Page `json:"page"`
}

// PageLayout is the resolved, render-ready widget list for a page.
type PageLayout struct {
	Page    widgets.Page          `json:"page"`
	Widgets []widgets.SavedWidget `json:"widgets"`
}

type pageService interface {
	ResolvePage(ctx context.Context, page widgets.Page) ([]widgets.SavedWidget, error)
}

// PageLayoutQuery executes read-only page resolution.
type PageLayoutQuery struct {
	service pageService
}

// NewPageLayoutQuery builds the query.
func NewPageLayoutQuery(service pageService) *PageLayoutQuery {
	return &PageLayoutQuery{service: service}
}

var _ gocommand.Querier[PageLayoutInput, PageLayout] = (*PageLayoutQuery)(nil)

// Query resolves the ordered widget list for the page.
func (q *PageLayoutQuery) Query(ctx context.Context, input PageLayoutInput) (PageLayout, error) {
	resolved, err := q.service.ResolvePage(ctx, input.Page)
	if err != nil {
		return PageLayout{}, err
	}
	return PageLayout{Page: input.Page, Widgets: resolved}, nil
}
