package widgets

import "testing"

func TestParsePage(t *testing.T) {
	page, ok := ParsePage("customers")
	if !ok || page != PageCustomers {
		t.Fatalf("expected customers page, got %q ok=%v", page, ok)
	}
	if _, ok := ParsePage("mars"); ok {
		t.Fatalf("expected unknown page to be rejected")
	}
}

func TestWidgetPageOptionsExcludeAdministrativeSurfaces(t *testing.T) {
	for _, page := range WidgetPageOptions {
		if page == PageDashboard || page == PageWidgets || page == PageSettings {
			t.Fatalf("page %q must not be directly assignable", page)
		}
		if !page.Valid() {
			t.Fatalf("option %q is not a known page", page)
		}
	}
}

func TestPageName(t *testing.T) {
	if PageStrategy.Name() != "Investment Strategy" {
		t.Fatalf("unexpected name %q", PageStrategy.Name())
	}
	if Page("custom").Name() != "custom" {
		t.Fatalf("expected raw identifier for unknown page")
	}
}
