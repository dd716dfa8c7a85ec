package widgets

// Built-in fallbacks, the lowest precedence tier of the merge.
var (
	defaultQuery = QueryDescription{BaseTable: defaultBaseTable}
	defaultSort  = SortSpec{Field: "event_date", Direction: "asc"}
)

const defaultPageSize = 10

func defaultRowActions() []RowAction {
	return []RowAction{
		{Key: "call", Label: "Call", Icon: "phone", ActionType: "call", Variant: "primary"},
		{Key: "detail", Label: "Detail", Icon: "info", ActionType: "popup", Variant: "ghost"},
	}
}

// ResolveRuntimeConfig layers widget overrides over the referenced
// data-source spec over built-in defaults, independently per field group. It
// is pure and never fails: malformed override fields fall through to the next
// tier, since user-authored configuration must not break the render path.
//
// Sort is deliberately not overridable per widget; it is a data-source
// property.
func ResolveRuntimeConfig(reg *Registry, widget SavedWidget) EffectiveConfig {
	cfg := widget.Config
	var spec DataSourceSpec
	var haveSpec bool
	if reg != nil {
		if id := configDataSource(cfg); id != "" {
			spec, haveSpec = reg.DataSource(id)
		}
	}

	out := EffectiveConfig{
		Query:      defaultQuery,
		Sort:       defaultSort,
		PageSize:   defaultPageSize,
		RowActions: defaultRowActions(),
	}

	if haveSpec && spec.Query.BaseTable != "" {
		out.Query = spec.Query
	}
	if q, ok := configQuery(cfg); ok {
		out.Query = q
	}

	if haveSpec && len(spec.Columns) > 0 {
		out.Columns = spec.Columns
	}
	if cols := configColumns(cfg); len(cols) > 0 {
		out.Columns = cols
	}

	if haveSpec && spec.DefaultSort.Field != "" {
		out.Sort = spec.DefaultSort
	}
	if haveSpec && spec.DefaultPageSize > 0 {
		out.PageSize = spec.DefaultPageSize
	}
	if haveSpec && len(spec.RowActions) > 0 {
		out.RowActions = spec.RowActions
	}

	out.GridSize = resolveGridSize(reg, widget)
	return out
}

// resolveGridSize prefers explicit widget dimensions, then the template
// default, then a 1x1 cell. Out-of-range values clamp to the grid bounds.
func resolveGridSize(reg *Registry, widget SavedWidget) GridSize {
	size := GridSize{Width: 1, Height: 1}
	if reg != nil {
		if tpl, ok := reg.Template(widget.TemplateID); ok {
			if tpl.DefaultGridSize.Width > 0 {
				size.Width = tpl.DefaultGridSize.Width
			}
			if tpl.DefaultGridSize.Height > 0 {
				size.Height = tpl.DefaultGridSize.Height
			}
		}
	}
	explicit := configGridSize(widget.Config)
	if explicit.Width > 0 {
		size.Width = explicit.Width
	}
	if explicit.Height > 0 {
		size.Height = explicit.Height
	}
	return clampGridSize(size)
}

func clampGridSize(size GridSize) GridSize {
	if size.Width < 1 {
		size.Width = 1
	}
	if size.Width > 5 {
		size.Width = 5
	}
	if size.Height < 1 {
		size.Height = 1
	}
	if size.Height > 4 {
		size.Height = 4
	}
	return size
}
