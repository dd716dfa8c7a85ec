package widgets

import "testing"

func TestNewRegistryLoadsBuiltinCatalog(t *testing.T) {
	reg := NewRegistry()
	if got := len(reg.Templates()); got != len(DefaultTemplates()) {
		t.Fatalf("expected %d templates, got %d", len(DefaultTemplates()), got)
	}
	if got := len(reg.DataSources()); got != len(DefaultDataSources()) {
		t.Fatalf("expected %d data sources, got %d", len(DefaultDataSources()), got)
	}
	if _, ok := reg.Template("bar-chart"); !ok {
		t.Fatalf("expected bar-chart template")
	}
	if _, ok := reg.DataSource("maturity"); !ok {
		t.Fatalf("expected maturity data source")
	}
}

func TestRegistryValidatesRegistrations(t *testing.T) {
	reg := NewEmptyRegistry()
	if err := reg.RegisterTemplate(WidgetTemplate{Kind: KindSchedule}); err == nil {
		t.Fatalf("expected error for template without id")
	}
	if err := reg.RegisterTemplate(WidgetTemplate{ID: "kindless"}); err == nil {
		t.Fatalf("expected error for template without kind")
	}
	if err := reg.RegisterDataSource(DataSourceSpec{ID: "orphan"}); err == nil {
		t.Fatalf("expected error for data source without applicable templates")
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	reg := NewEmptyRegistry()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := reg.RegisterTemplate(WidgetTemplate{ID: id, Kind: KindActionList}); err != nil {
			t.Fatalf("RegisterTemplate returned error: %v", err)
		}
	}
	templates := reg.Templates()
	if templates[0].ID != "zeta" || templates[1].ID != "alpha" || templates[2].ID != "mid" {
		t.Fatalf("expected registration order, got %v", templates)
	}

	// Re-registering replaces in place without duplicating.
	if err := reg.RegisterTemplate(WidgetTemplate{ID: "alpha", Kind: KindSchedule, Name: "Replaced"}); err != nil {
		t.Fatalf("RegisterTemplate returned error: %v", err)
	}
	templates = reg.Templates()
	if len(templates) != 3 || templates[1].Name != "Replaced" {
		t.Fatalf("expected in-place replacement, got %v", templates)
	}
}

func TestRegistryDataSourceFilters(t *testing.T) {
	reg := NewRegistry()

	forList := reg.DataSourcesForTemplate("action-list")
	for _, spec := range forList {
		found := false
		for _, id := range spec.ApplicableTemplateIDs {
			if id == "action-list" {
				found = true
			}
		}
		if !found {
			t.Fatalf("data source %q not applicable to action-list", spec.ID)
		}
	}
	if len(forList) == 0 {
		t.Fatalf("expected applicable data sources for action-list")
	}

	metrics := reg.DataSourcesByCategory(CategoryMetric)
	if len(metrics) != 4 {
		t.Fatalf("expected 4 metric sources, got %d", len(metrics))
	}
}

func TestCatalogHooksRunOnNewRegistries(t *testing.T) {
	RegisterCatalogHook(func(reg *Registry) error {
		return reg.RegisterDataSource(DataSourceSpec{
			ID:                    "hooked-source",
			Name:                  "Hooked",
			Category:              CategoryMetric,
			ApplicableTemplateIDs: []string{"summary-card"},
		})
	})
	reg := NewRegistry()
	if _, ok := reg.DataSource("hooked-source"); !ok {
		t.Fatalf("expected hook-registered data source")
	}
}
