package widgets

// Typed views over SavedWidget.Config. The stored blob stays free-form so old
// saves keep loading; DecodeConfig projects it into the closed record for the
// widget's template kind. Decoding is permissive: unknown fields are ignored
// and wrong-typed fields zero out instead of failing.

// WidgetConfig is the tagged union of per-kind configurations.
type WidgetConfig interface {
	ConfigKind() Kind
}

// ActionListConfig configures action-list widgets.
type ActionListConfig struct {
	DataSource string            `json:"dataSource,omitempty"`
	Query      *QueryDescription `json:"query,omitempty"`
	Columns    []ColumnSpec      `json:"columns,omitempty"`
	Order      *int              `json:"order,omitempty"`
	GridWidth  int               `json:"gridWidth,omitempty"`
	GridRows   int               `json:"gridRows,omitempty"`
}

// ConfigKind implements WidgetConfig.
func (ActionListConfig) ConfigKind() Kind { return KindActionList }

// SummaryCardDef is a single card on a summary-card widget.
type SummaryCardDef struct {
	MetricID string `json:"metricId"`
	Label    string `json:"label,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// SummaryCardConfig configures summary-card widgets.
type SummaryCardConfig struct {
	Cards []SummaryCardDef `json:"cards,omitempty"`
	Order *int             `json:"order,omitempty"`
}

// ConfigKind implements WidgetConfig.
func (SummaryCardConfig) ConfigKind() Kind { return KindSummaryCard }

// ScheduleConfig configures schedule widgets.
type ScheduleConfig struct {
	DataSource string `json:"dataSource,omitempty"`
	Order      *int   `json:"order,omitempty"`
}

// ConfigKind implements WidgetConfig.
func (ScheduleConfig) ConfigKind() Kind { return KindSchedule }

// BarChartVariant selects the chart layout.
type BarChartVariant string

// Bar chart variants.
const (
	VariantVerticalStacked   BarChartVariant = "vertical-bar-stacked"
	VariantVerticalGrouped   BarChartVariant = "vertical-bar-grouped"
	VariantHorizontalStacked BarChartVariant = "horizontal-bar-stacked"
)

// BarChartConfig configures bar-chart widgets.
type BarChartConfig struct {
	DataSource   string          `json:"dataSource,omitempty"`
	ChartVariant BarChartVariant `json:"chartVariant,omitempty"`
	Order        *int            `json:"order,omitempty"`
	GridWidth    int             `json:"gridWidth,omitempty"`
	GridRows     int             `json:"gridRows,omitempty"`
}

// ConfigKind implements WidgetConfig.
func (BarChartConfig) ConfigKind() Kind { return KindBarChart }

// DecodeConfig projects a free-form config blob into the typed record for the
// given kind. Unknown kinds decode as action-list, the most general shape.
func DecodeConfig(kind Kind, cfg map[string]any) WidgetConfig {
	switch kind {
	case KindSummaryCard:
		var out SummaryCardConfig
		decodeInto(cfg, &out)
		return out
	case KindSchedule:
		var out ScheduleConfig
		decodeInto(cfg, &out)
		return out
	case KindBarChart:
		var out BarChartConfig
		decodeInto(cfg, &out)
		if out.ChartVariant == "" {
			out.ChartVariant = VariantVerticalStacked
		}
		return out
	default:
		var out ActionListConfig
		decodeInto(cfg, &out)
		return out
	}
}

func decodeInto(cfg map[string]any, out any) {
	if len(cfg) == 0 {
		return
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	// Best effort: a partially malformed blob keeps whatever decoded cleanly.
	_ = json.Unmarshal(raw, out)
}

// configOrder reads the widget's order hint. Missing or malformed values
// report false and the widget sorts last.
func configOrder(cfg map[string]any) (int, bool) {
	v, ok := cfg["order"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// configDataSource reads the referenced data-source id, if any.
func configDataSource(cfg map[string]any) string {
	if v, ok := cfg["dataSource"].(string); ok {
		return v
	}
	return ""
}

// configQuery reads an explicit query override. Non-object or empty values
// are treated as absent so the merge falls through to the data source.
func configQuery(cfg map[string]any) (QueryDescription, bool) {
	raw, ok := cfg["query"].(map[string]any)
	if !ok || len(raw) == 0 {
		return QueryDescription{}, false
	}
	var q QueryDescription
	decodeInto(raw, &q)
	if q.BaseTable == "" && q.ScenarioFilter == nil && len(q.StatusFilter) == 0 && len(q.Filters) == 0 {
		return QueryDescription{}, false
	}
	return q, true
}

// configColumns reads an explicit column override, normalizing each entry:
// Key is required (else "col"), Label defaults to Key, Source to customer.
func configColumns(cfg map[string]any) []ColumnSpec {
	raw, ok := cfg["columns"].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make([]ColumnSpec, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		var col ColumnSpec
		decodeInto(m, &col)
		if col.Key == "" {
			col.Key = "col"
		}
		if col.Label == "" {
			col.Label = col.Key
		}
		if col.Source == "" {
			col.Source = SourceCustomer
		}
		out = append(out, col)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// configGridSize reads explicit grid dimensions; zero means "not set".
func configGridSize(cfg map[string]any) GridSize {
	var size GridSize
	if w, ok := configInt(cfg, "gridWidth"); ok {
		size.Width = w
	}
	if h, ok := configInt(cfg, "gridRows"); ok {
		size.Height = h
	}
	return size
}

func configInt(cfg map[string]any, key string) (int, bool) {
	switch n := cfg[key].(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
