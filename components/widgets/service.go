package widgets

import (
	"context"
	"errors"
)

var (
	errMissingWidgetStore    = errors.New("widgets: widget store not configured")
	errMissingSelectionStore = errors.New("widgets: selection store not configured")
	errInvalidWidgetID       = errors.New("widgets: widget id is required")
	errInvalidPage           = errors.New("widgets: page is not recognized")
	errInvalidDirection      = errors.New("widgets: move direction must be up or down")
)

// MoveDirection is the direction of a single-step reorder.
type MoveDirection string

// Move directions.
const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// Options configures the widget Service. Collaborators are provided via
// interfaces or constructors so applications can swap implementations
// without importing internals.
type Options struct {
	Widgets     *Store
	Selections  *SelectionStore
	Registry    *Registry
	Validator   ConfigValidator
	RefreshHook RefreshHook
	Telemetry   Telemetry
}

// Service orchestrates saved widgets: store CRUD, page-layout resolution,
// pinning, and runtime-config merging.
type Service struct {
	opts Options
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

// Registry exposes the catalog the service resolves against.
func (s *Service) Registry() *Registry {
	return s.opts.Registry
}

// ListWidgets returns the full widget snapshot. Order is storage order;
// ResolvePage applies meaningful ordering.
func (s *Service) ListWidgets(ctx context.Context) ([]SavedWidget, error) {
	store, err := s.widgetStore()
	if err != nil {
		return nil, err
	}
	return store.List()
}

// GetWidget returns a single widget by id.
func (s *Service) GetWidget(ctx context.Context, id string) (SavedWidget, bool, error) {
	store, err := s.widgetStore()
	if err != nil {
		return SavedWidget{}, false, err
	}
	return store.Get(id)
}

// CreateWidget validates the config against the template schema and saves a
// new widget instance.
func (s *Service) CreateWidget(ctx context.Context, req CreateWidgetRequest) (SavedWidget, error) {
	store, err := s.widgetStore()
	if err != nil {
		return SavedWidget{}, err
	}
	if err := s.validateConfig(req.TemplateID, req.Config); err != nil {
		return SavedWidget{}, err
	}
	widget, err := store.Create(req)
	if err != nil {
		return SavedWidget{}, err
	}
	if err := s.opts.RefreshHook.WidgetUpdated(ctx, WidgetEvent{Widget: widget, Reason: "create"}); err != nil {
		return SavedWidget{}, err
	}
	s.record(ctx, "widgets.create", map[string]any{
		"widget_id":   widget.ID,
		"template_id": widget.TemplateID,
	})
	return widget, nil
}

// UpdateWidget merges a partial patch over the widget. The boolean is false
// when the id no longer exists; two-tab races degrade to that, not an error.
func (s *Service) UpdateWidget(ctx context.Context, id string, patch WidgetPatch) (SavedWidget, bool, error) {
	store, err := s.widgetStore()
	if err != nil {
		return SavedWidget{}, false, err
	}
	if id == "" {
		return SavedWidget{}, false, errInvalidWidgetID
	}
	if patch.Config != nil {
		existing, ok, err := store.Get(id)
		if err != nil {
			return SavedWidget{}, false, err
		}
		if !ok {
			return SavedWidget{}, false, nil
		}
		if err := s.validateConfig(existing.TemplateID, *patch.Config); err != nil {
			return SavedWidget{}, false, err
		}
	}
	widget, ok, err := store.Update(id, patch)
	if err != nil || !ok {
		return SavedWidget{}, ok, err
	}
	if err := s.opts.RefreshHook.WidgetUpdated(ctx, WidgetEvent{Widget: widget, Reason: "update"}); err != nil {
		return SavedWidget{}, false, err
	}
	s.record(ctx, "widgets.update", map[string]any{"widget_id": id})
	return widget, true, nil
}

// DeleteWidget removes the widget. Unknown ids are a no-op. Selections that
// still reference the id self-heal at resolve time.
func (s *Service) DeleteWidget(ctx context.Context, id string) error {
	store, err := s.widgetStore()
	if err != nil {
		return err
	}
	if id == "" {
		return errInvalidWidgetID
	}
	if err := store.Delete(id); err != nil {
		return err
	}
	if err := s.opts.RefreshHook.WidgetUpdated(ctx, WidgetEvent{Widget: SavedWidget{ID: id}, Reason: "delete"}); err != nil {
		return err
	}
	s.record(ctx, "widgets.delete", map[string]any{"widget_id": id})
	return nil
}

// AvailableWidgets returns the widgets eligible for the page, sorted by
// their order hints (missing hints sort last).
func (s *Service) AvailableWidgets(ctx context.Context, page Page) ([]SavedWidget, error) {
	store, err := s.widgetStore()
	if err != nil {
		return nil, err
	}
	if !page.Valid() {
		return nil, errInvalidPage
	}
	all, err := store.List()
	if err != nil {
		return nil, err
	}
	var available []SavedWidget
	for _, w := range all {
		if containsPage(w.Pages, page) {
			available = append(available, w)
		}
	}
	return sortByOrder(available), nil
}

// ResolvePage returns the page's ordered, render-ready widget list. An
// explicit selection, once established, is authoritative and exhaustive, but
// never resurrects widgets unassigned from the page and never fails on stale
// ids.
func (s *Service) ResolvePage(ctx context.Context, page Page) ([]SavedWidget, error) {
	available, err := s.AvailableWidgets(ctx, page)
	if err != nil {
		return nil, err
	}
	selections, err := s.selectionStore()
	if err != nil {
		return nil, err
	}
	ids, err := selections.Selection(page)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return available, nil
	}
	return applySelection(available, ids), nil
}

// MoveWidget swaps the widget at index with its neighbor in the current
// resolved order and persists the result as the page's explicit selection.
// The first move locks in a selection even when none existed. Out-of-range
// indexes are a no-op.
func (s *Service) MoveWidget(ctx context.Context, page Page, index int, direction MoveDirection) error {
	if direction != MoveUp && direction != MoveDown {
		return errInvalidDirection
	}
	resolved, err := s.ResolvePage(ctx, page)
	if err != nil {
		return err
	}
	target := index + 1
	if direction == MoveUp {
		target = index - 1
	}
	if index < 0 || index >= len(resolved) || target < 0 || target >= len(resolved) {
		return nil
	}
	ids := widgetIDs(resolved)
	ids[index], ids[target] = ids[target], ids[index]
	return s.SaveSelection(ctx, page, ids)
}

// SaveSelection overwrites the page's explicit widget selection.
func (s *Service) SaveSelection(ctx context.Context, page Page, ids []string) error {
	selections, err := s.selectionStore()
	if err != nil {
		return err
	}
	if !page.Valid() {
		return errInvalidPage
	}
	if err := selections.Save(page, ids); err != nil {
		return err
	}
	if err := s.opts.RefreshHook.WidgetUpdated(ctx, WidgetEvent{Page: page, Reason: "reorder"}); err != nil {
		return err
	}
	s.record(ctx, "widgets.selection.save", map[string]any{
		"page":  string(page),
		"count": len(ids),
	})
	return nil
}

// TogglePin adds or removes the dashboard sentinel on the widget's page
// list. Two toggles restore the original membership; everything else in
// Pages is untouched.
func (s *Service) TogglePin(ctx context.Context, widgetID string) (SavedWidget, bool, error) {
	store, err := s.widgetStore()
	if err != nil {
		return SavedWidget{}, false, err
	}
	widget, ok, err := store.Get(widgetID)
	if err != nil || !ok {
		return SavedWidget{}, ok, err
	}
	var pages []Page
	if widget.PinnedToDashboard() {
		for _, p := range widget.Pages {
			if p != PageDashboard {
				pages = append(pages, p)
			}
		}
	} else {
		pages = append(append(pages, widget.Pages...), PageDashboard)
	}
	updated, ok, err := store.Update(widgetID, WidgetPatch{Pages: &pages})
	if err != nil || !ok {
		return SavedWidget{}, ok, err
	}
	if err := s.opts.RefreshHook.WidgetUpdated(ctx, WidgetEvent{Page: PageDashboard, Widget: updated, Reason: "pin"}); err != nil {
		return SavedWidget{}, false, err
	}
	s.record(ctx, "widgets.pin.toggle", map[string]any{
		"widget_id": widgetID,
		"pinned":    updated.PinnedToDashboard(),
	})
	return updated, true, nil
}

// ResolveRuntimeConfig merges the widget's effective runtime configuration.
func (s *Service) ResolveRuntimeConfig(widget SavedWidget) EffectiveConfig {
	return ResolveRuntimeConfig(s.opts.Registry, widget)
}

// SeedWidgets writes the starter widgets into an empty store. Non-empty
// stores are left alone so reseeding is safe.
func (s *Service) SeedWidgets(ctx context.Context) (int, error) {
	store, err := s.widgetStore()
	if err != nil {
		return 0, err
	}
	existing, err := store.List()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	count := 0
	for _, req := range DefaultSeedWidgets() {
		if _, err := s.CreateWidget(ctx, req); err != nil {
			return count, err
		}
		count++
	}
	s.record(ctx, "widgets.seed", map[string]any{"count": count})
	return count, nil
}

// NotifyWidgetUpdated exposes refresh-hook invocation for transports.
func (s *Service) NotifyWidgetUpdated(ctx context.Context, event WidgetEvent) error {
	if err := s.opts.RefreshHook.WidgetUpdated(ctx, event); err != nil {
		return err
	}
	s.record(ctx, "widgets.event", map[string]any{
		"page":      string(event.Page),
		"widget_id": event.Widget.ID,
		"reason":    event.Reason,
	})
	return nil
}

func (s *Service) validateConfig(templateID string, config map[string]any) error {
	if s.opts.Validator == nil || s.opts.Registry == nil {
		return nil
	}
	tpl, ok := s.opts.Registry.Template(templateID)
	if !ok {
		// Unknown templates still save; resolution falls back to defaults.
		return nil
	}
	return s.opts.Validator.Validate(tpl, config)
}

func (s *Service) record(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

func (s *Service) widgetStore() (*Store, error) {
	if s.opts.Widgets == nil {
		return nil, errMissingWidgetStore
	}
	return s.opts.Widgets, nil
}

func (s *Service) selectionStore() (*SelectionStore, error) {
	if s.opts.Selections == nil {
		return nil, errMissingSelectionStore
	}
	return s.opts.Selections, nil
}

type noopRefreshHook struct{}

func (noopRefreshHook) WidgetUpdated(context.Context, WidgetEvent) error {
	return nil
}
