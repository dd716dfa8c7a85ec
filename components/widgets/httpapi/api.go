package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
	"github.com/goliatone/go-advisor-dashboard/components/widgets/commands"
	"github.com/goliatone/go-advisor-dashboard/components/widgets/queries"
)

// Executor groups the mutating operations transports need. Router adapters
// depend on this interface rather than on concrete command types.
type Executor interface {
	Create(ctx context.Context, input widgets.CreateWidgetRequest) error
	Update(ctx context.Context, input commands.UpdateWidgetInput) error
	Remove(ctx context.Context, input commands.RemoveWidgetInput) error
	Move(ctx context.Context, input commands.MoveWidgetInput) error
	SaveSelection(ctx context.Context, input commands.SaveSelectionInput) error
	TogglePin(ctx context.Context, input commands.TogglePinInput) error
}

// CommandExecutor adapts shared commands into the Executor interface.
type CommandExecutor struct {
	CreateCmd        gocommand.Commander[widgets.CreateWidgetRequest]
	UpdateCmd        gocommand.Commander[commands.UpdateWidgetInput]
	RemoveCmd        gocommand.Commander[commands.RemoveWidgetInput]
	MoveCmd          gocommand.Commander[commands.MoveWidgetInput]
	SaveSelectionCmd gocommand.Commander[commands.SaveSelectionInput]
	TogglePinCmd     gocommand.Commander[commands.TogglePinInput]
}

var _ Executor = (*CommandExecutor)(nil)

func (e *CommandExecutor) Create(ctx context.Context, input widgets.CreateWidgetRequest) error {
	return e.CreateCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Update(ctx context.Context, input commands.UpdateWidgetInput) error {
	return e.UpdateCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Remove(ctx context.Context, input commands.RemoveWidgetInput) error {
	return e.RemoveCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Move(ctx context.Context, input commands.MoveWidgetInput) error {
	return e.MoveCmd.Execute(ctx, input)
}

func (e *CommandExecutor) SaveSelection(ctx context.Context, input commands.SaveSelectionInput) error {
	return e.SaveSelectionCmd.Execute(ctx, input)
}

func (e *CommandExecutor) TogglePin(ctx context.Context, input commands.TogglePinInput) error {
	return e.TogglePinCmd.Execute(ctx, input)
}

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	Create        gocommand.Commander[widgets.CreateWidgetRequest]
	Update        gocommand.Commander[commands.UpdateWidgetInput]
	Remove        gocommand.Commander[commands.RemoveWidgetInput]
	Move          gocommand.Commander[commands.MoveWidgetInput]
	SaveSelection gocommand.Commander[commands.SaveSelectionInput]
	TogglePin     gocommand.Commander[commands.TogglePinInput]
	PageLayout    gocommand.Querier[queries.PageLayoutInput, queries.PageLayout]
	RuntimeConfig gocommand.Querier[queries.RuntimeConfigInput, queries.RuntimeConfig]
	Catalog       gocommand.Querier[queries.CatalogInput, queries.Catalog]
}

func (h *Handlers) HandleCreateWidget(w http.ResponseWriter, r *http.Request) {
	var payload widgets.CreateWidgetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Create.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleUpdateWidget(w http.ResponseWriter, r *http.Request, widgetID string) {
	var patch widgets.WidgetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input := commands.UpdateWidgetInput{WidgetID: widgetID, Patch: patch}
	if err := h.Update.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleRemoveWidget(w http.ResponseWriter, r *http.Request, widgetID string) {
	input := commands.RemoveWidgetInput{WidgetID: widgetID}
	if err := h.Remove.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleMoveWidget(w http.ResponseWriter, r *http.Request) {
	var payload commands.MoveWidgetInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Move.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleSaveSelection(w http.ResponseWriter, r *http.Request) {
	var payload commands.SaveSelectionInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.SaveSelection.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleTogglePin(w http.ResponseWriter, r *http.Request, widgetID string) {
	input := commands.TogglePinInput{WidgetID: widgetID}
	if err := h.TogglePin.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandlePageLayout(w http.ResponseWriter, r *http.Request, page widgets.Page) {
	layout, err := h.PageLayout.Query(r.Context(), queries.PageLayoutInput{Page: page})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, layout)
}

func (h *Handlers) HandleRuntimeConfig(w http.ResponseWriter, r *http.Request, widgetID string) {
	cfg, err := h.RuntimeConfig.Query(r.Context(), queries.RuntimeConfigInput{WidgetID: widgetID})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !cfg.Found {
		http.Error(w, "widget not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handlers) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	input := queries.CatalogInput{TemplateID: r.URL.Query().Get("template")}
	catalog, err := h.Catalog.Query(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
