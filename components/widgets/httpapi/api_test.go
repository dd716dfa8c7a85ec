package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
	"github.com/goliatone/go-advisor-dashboard/components/widgets/commands"
	"github.com/goliatone/go-advisor-dashboard/components/widgets/queries"
)

type stubCommander[T any] struct {
	last  T
	calls int
	err   error
}

func (s *stubCommander[T]) Execute(ctx context.Context, msg T) error {
	s.last = msg
	s.calls++
	return s.err
}

type stubQuerier[In any, Out any] struct {
	last In
	out  Out
	err  error
}

func (s *stubQuerier[In, Out]) Query(ctx context.Context, input In) (Out, error) {
	s.last = input
	return s.out, s.err
}

func TestHandleCreateWidget(t *testing.T) {
	create := &stubCommander[widgets.CreateWidgetRequest]{}
	api := &Handlers{Create: create}
	payload := widgets.CreateWidgetRequest{
		TemplateID: "action-list",
		Title:      "Maturity Reminders",
		Config:     map[string]any{"dataSource": "maturity"},
		Pages:      []widgets.Page{widgets.PageCustomers},
	}
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/widgets", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleCreateWidget(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if create.calls != 1 {
		t.Fatalf("expected create to execute")
	}
	if create.last.TemplateID != "action-list" {
		t.Fatalf("expected template id propagation")
	}
}

func TestHandleUpdateWidget(t *testing.T) {
	update := &stubCommander[commands.UpdateWidgetInput]{}
	api := &Handlers{Update: update}
	title := "renamed"
	patch := widgets.WidgetPatch{Title: &title}
	buf, _ := json.Marshal(patch)
	req := httptest.NewRequest(http.MethodPatch, "/widgets/w1", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleUpdateWidget(rec, req, "w1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if update.last.WidgetID != "w1" {
		t.Fatalf("expected widget id propagation")
	}
	if update.last.Patch.Title == nil || *update.last.Patch.Title != "renamed" {
		t.Fatalf("expected patch title propagation")
	}
}

func TestHandleRemoveWidget(t *testing.T) {
	remove := &stubCommander[commands.RemoveWidgetInput]{}
	api := &Handlers{Remove: remove}
	req := httptest.NewRequest(http.MethodDelete, "/widgets/w1", nil)
	rec := httptest.NewRecorder()
	api.HandleRemoveWidget(rec, req, "w1")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if remove.last.WidgetID != "w1" {
		t.Fatalf("expected widget id propagation")
	}
}

func TestHandleMoveWidget(t *testing.T) {
	move := &stubCommander[commands.MoveWidgetInput]{}
	api := &Handlers{Move: move}
	payload := commands.MoveWidgetInput{Page: widgets.PageCustomers, Index: 1, Direction: widgets.MoveUp}
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/widgets/move", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleMoveWidget(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if move.last.Direction != widgets.MoveUp {
		t.Fatalf("expected direction propagation")
	}
}

func TestHandleSaveSelection(t *testing.T) {
	sel := &stubCommander[commands.SaveSelectionInput]{}
	api := &Handlers{SaveSelection: sel}
	payload := commands.SaveSelectionInput{Page: widgets.PageAgents, WidgetIDs: []string{"w2", "w1"}}
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/pages/agents/selection", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleSaveSelection(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(sel.last.WidgetIDs) != 2 || sel.last.WidgetIDs[0] != "w2" {
		t.Fatalf("expected widget ids propagation")
	}
}

func TestHandleTogglePin(t *testing.T) {
	pin := &stubCommander[commands.TogglePinInput]{}
	api := &Handlers{TogglePin: pin}
	req := httptest.NewRequest(http.MethodPost, "/widgets/w1/pin", nil)
	rec := httptest.NewRecorder()
	api.HandleTogglePin(rec, req, "w1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if pin.last.WidgetID != "w1" {
		t.Fatalf("expected widget id propagation")
	}
}

func TestHandlePageLayout(t *testing.T) {
	layout := &stubQuerier[queries.PageLayoutInput, queries.PageLayout]{
		out: queries.PageLayout{Page: widgets.PageCustomers, Widgets: []widgets.SavedWidget{{ID: "w1"}}},
	}
	api := &Handlers{PageLayout: layout}
	req := httptest.NewRequest(http.MethodGet, "/pages/customers/widgets", nil)
	rec := httptest.NewRecorder()
	api.HandlePageLayout(rec, req, widgets.PageCustomers)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var decoded queries.PageLayout
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(decoded.Widgets) != 1 || decoded.Widgets[0].ID != "w1" {
		t.Fatalf("expected resolved widgets in payload")
	}
}

func TestHandleRuntimeConfigNotFound(t *testing.T) {
	cfg := &stubQuerier[queries.RuntimeConfigInput, queries.RuntimeConfig]{}
	api := &Handlers{RuntimeConfig: cfg}
	req := httptest.NewRequest(http.MethodGet, "/widgets/missing/config", nil)
	rec := httptest.NewRecorder()
	api.HandleRuntimeConfig(rec, req, "missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleCatalogFiltersByTemplate(t *testing.T) {
	catalog := &stubQuerier[queries.CatalogInput, queries.Catalog]{}
	api := &Handlers{Catalog: catalog}
	req := httptest.NewRequest(http.MethodGet, "/catalog?template=bar-chart", nil)
	rec := httptest.NewRecorder()
	api.HandleCatalog(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if catalog.last.TemplateID != "bar-chart" {
		t.Fatalf("expected template filter propagation")
	}
}
