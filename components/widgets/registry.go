package widgets

import (
	"fmt"
	"sync"
)

// CatalogHook lets packages register templates/data sources during init().
type CatalogHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []CatalogHook
)

// RegisterCatalogHook registers a hook executed against new registries.
func RegisterCatalogHook(h CatalogHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry is the read-mostly catalog of widget templates and data-source
// specs. After construction it only changes through explicit registration
// (hooks, manifests), never through the render path.
type Registry struct {
	mu          sync.RWMutex
	templates   map[string]WidgetTemplate
	templateIDs []string
	sources     map[string]DataSourceSpec
	sourceIDs   []string
}

// NewRegistry builds a registry seeded with the built-in catalog and applies
// global hooks.
func NewRegistry() *Registry {
	reg := &Registry{
		templates: map[string]WidgetTemplate{},
		sources:   map[string]DataSourceSpec{},
	}
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

// NewEmptyRegistry builds a registry without the built-in catalog. Intended
// for manifest-driven deployments and tests.
func NewEmptyRegistry() *Registry {
	return &Registry{
		templates: map[string]WidgetTemplate{},
		sources:   map[string]DataSourceSpec{},
	}
}

func (r *Registry) registerDefaults() {
	for _, tpl := range DefaultTemplates() {
		_ = r.RegisterTemplate(tpl)
	}
	for _, spec := range DefaultDataSources() {
		_ = r.RegisterDataSource(spec)
	}
}

// ApplyHooks executes registered catalog hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterTemplate stores a widget template.
func (r *Registry) RegisterTemplate(tpl WidgetTemplate) error {
	if tpl.ID == "" {
		return fmt.Errorf("widgets: template id is required")
	}
	if tpl.Kind == "" {
		return fmt.Errorf("widgets: template %s is missing a kind", tpl.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.templates[tpl.ID]; !exists {
		r.templateIDs = append(r.templateIDs, tpl.ID)
	}
	r.templates[tpl.ID] = tpl
	return nil
}

// RegisterDataSource stores a data-source spec.
func (r *Registry) RegisterDataSource(spec DataSourceSpec) error {
	if spec.ID == "" {
		return fmt.Errorf("widgets: data source id is required")
	}
	if len(spec.ApplicableTemplateIDs) == 0 {
		return fmt.Errorf("widgets: data source %s must name at least one applicable template", spec.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sources[spec.ID]; !exists {
		r.sourceIDs = append(r.sourceIDs, spec.ID)
	}
	r.sources[spec.ID] = spec
	return nil
}

// Template fetches a template by id. A missing id is a normal outcome;
// callers fall back to builtin defaults.
func (r *Registry) Template(id string) (WidgetTemplate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.templates[id]
	return tpl, ok
}

// Templates returns all registered templates in registration order.
func (r *Registry) Templates() []WidgetTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]WidgetTemplate, 0, len(r.templateIDs))
	for _, id := range r.templateIDs {
		out = append(out, r.templates[id])
	}
	return out
}

// DataSource fetches a data-source spec by id.
func (r *Registry) DataSource(id string) (DataSourceSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.sources[id]
	return spec, ok
}

// DataSources returns all registered data sources in registration order.
func (r *Registry) DataSources() []DataSourceSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]DataSourceSpec, 0, len(r.sourceIDs))
	for _, id := range r.sourceIDs {
		out = append(out, r.sources[id])
	}
	return out
}

// DataSourcesForTemplate filters data sources bindable to the template.
func (r *Registry) DataSourcesForTemplate(templateID string) []DataSourceSpec {
	var out []DataSourceSpec
	for _, spec := range r.DataSources() {
		for _, id := range spec.ApplicableTemplateIDs {
			if id == templateID {
				out = append(out, spec)
				break
			}
		}
	}
	return out
}

// DataSourcesByCategory filters data sources by fetch category.
func (r *Registry) DataSourcesByCategory(category Category) []DataSourceSpec {
	var out []DataSourceSpec
	for _, spec := range r.DataSources() {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}
