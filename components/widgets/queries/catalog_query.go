package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// CatalogInput optionally narrows the catalog to one template's view.
type CatalogInput struct {
	TemplateID string `json:"template_id,omitempty"`
}

// Catalog lists the templates and data sources available to the create flow.
type Catalog struct {
	Templates   []widgets.WidgetTemplate `json:"templates"`
	DataSources []widgets.DataSourceSpec `json:"data_sources"`
	Pages       []widgets.Page           `json:"pages"`
}

// CatalogQuery exposes the registry to transports.
type CatalogQuery struct {
	registry *widgets.Registry
}

// NewCatalogQuery builds the query.
func NewCatalogQuery(registry *widgets.Registry) *CatalogQuery {
	return &CatalogQuery{registry: registry}
}

var _ gocommand.Querier[CatalogInput, Catalog] = (*CatalogQuery)(nil)

// Query returns the catalog. With a template id set, data sources are
// filtered to those bindable to that template.
func (q *CatalogQuery) Query(_ context.Context, input CatalogInput) (Catalog, error) {
	catalog := Catalog{
		Templates: q.registry.Templates(),
		Pages:     widgets.WidgetPageOptions,
	}
	if input.TemplateID != "" {
		catalog.DataSources = q.registry.DataSourcesForTemplate(input.TemplateID)
	} else {
		catalog.DataSources = q.registry.DataSources()
	}
	return catalog, nil
}
