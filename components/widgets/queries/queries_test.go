package queries

import (
	"context"
	"testing"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

type stubPageService struct {
	calls int
	page  widgets.Page
}

func (s *stubPageService) ResolvePage(_ context.Context, page widgets.Page) ([]widgets.SavedWidget, error) {
	s.calls++
	s.page = page
	return []widgets.SavedWidget{{ID: "w1"}}, nil
}

type stubConfigService struct {
	widget widgets.SavedWidget
	found  bool
}

func (s *stubConfigService) GetWidget(context.Context, string) (widgets.SavedWidget, bool, error) {
	return s.widget, s.found, nil
}

func (s *stubConfigService) ResolveRuntimeConfig(widgets.SavedWidget) widgets.EffectiveConfig {
	return widgets.EffectiveConfig{PageSize: 10}
}

func TestPageLayoutQuery(t *testing.T) {
	service := &stubPageService{}
	query := NewPageLayoutQuery(service)
	layout, err := query.Query(context.Background(), PageLayoutInput{Page: widgets.PageCustomers})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if service.calls != 1 {
		t.Fatalf("expected 1 call, got %d", service.calls)
	}
	if service.page != widgets.PageCustomers {
		t.Fatalf("expected page propagation, got %q", service.page)
	}
	if len(layout.Widgets) != 1 {
		t.Fatalf("expected resolved widgets")
	}
}

func TestRuntimeConfigQuery(t *testing.T) {
	service := &stubConfigService{widget: widgets.SavedWidget{ID: "w1"}, found: true}
	query := NewRuntimeConfigQuery(service)
	resolved, err := query.Query(context.Background(), RuntimeConfigInput{WidgetID: "w1"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if !resolved.Found {
		t.Fatalf("expected widget to be found")
	}
	if resolved.Config.PageSize != 10 {
		t.Fatalf("expected merged config, got %+v", resolved.Config)
	}
}

func TestRuntimeConfigQueryMissingWidget(t *testing.T) {
	query := NewRuntimeConfigQuery(&stubConfigService{})
	resolved, err := query.Query(context.Background(), RuntimeConfigInput{WidgetID: "gone"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if resolved.Found {
		t.Fatalf("expected missing widget to report found=false")
	}
}

func TestRuntimeConfigQueryRequiresID(t *testing.T) {
	query := NewRuntimeConfigQuery(&stubConfigService{})
	if _, err := query.Query(context.Background(), RuntimeConfigInput{}); err == nil {
		t.Fatalf("expected error for empty widget id")
	}
}

func TestCatalogQueryFiltersByTemplate(t *testing.T) {
	registry := widgets.NewRegistry()
	query := NewCatalogQuery(registry)

	catalog, err := query.Query(context.Background(), CatalogInput{})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(catalog.Templates) == 0 || len(catalog.DataSources) == 0 {
		t.Fatalf("expected built-in catalog to be populated")
	}
	if len(catalog.Pages) == 0 {
		t.Fatalf("expected selectable pages")
	}

	filtered, err := query.Query(context.Background(), CatalogInput{TemplateID: "bar-chart"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	for _, src := range filtered.DataSources {
		ok := false
		for _, id := range src.ApplicableTemplateIDs {
			if id == "bar-chart" {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("data source %q not applicable to bar-chart", src.ID)
		}
	}
}
