package widgets

import (
	"context"
	"time"
)

// Kind enumerates the widget template kinds the engine knows how to resolve.
type Kind string

// Supported template kinds.
const (
	KindSummaryCard Kind = "summary-card"
	KindActionList  Kind = "action-list"
	KindSchedule    Kind = "schedule"
	KindBarChart    Kind = "bar-chart"
)

// Category groups data sources by the fetch strategy that applies to them.
type Category string

// Data-source categories.
const (
	CategoryCustomerEvent Category = "customer-event"
	CategoryMetric        Category = "metric"
	CategorySchedule      Category = "schedule"
)

// GridSize describes a widget footprint on the page grid (columns x rows).
type GridSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// WidgetTemplate is a fixed widget kind with a default size and an optional
// configuration schema validated at save time.
type WidgetTemplate struct {
	ID              string         `json:"id" yaml:"id"`
	Kind            Kind           `json:"kind" yaml:"kind"`
	Name            string         `json:"name" yaml:"name"`
	Description     string         `json:"description,omitempty" yaml:"description,omitempty"`
	Icon            string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	DefaultGridSize GridSize       `json:"default_grid_size" yaml:"default_grid_size"`
	SizePresets     []GridSize     `json:"size_presets,omitempty" yaml:"size_presets,omitempty"`
	Schema          map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// ScenarioFilter narrows a query to events produced by specific scenarios.
type ScenarioFilter struct {
	Codes []string `json:"codes,omitempty" yaml:"codes,omitempty"`
}

// QueryFilter is a single dynamic predicate applied to the base table.
type QueryFilter struct {
	Column   string `json:"column" yaml:"column"`
	Operator string `json:"operator" yaml:"operator"`
	Value    any    `json:"value" yaml:"value"`
}

// QueryDescription tells the fetch adapter what to read from the backend
// table store. It never executes anything itself.
type QueryDescription struct {
	BaseTable      string          `json:"base_table" yaml:"base_table"`
	ScenarioFilter *ScenarioFilter `json:"scenario_filter,omitempty" yaml:"scenario_filter,omitempty"`
	StatusFilter   []string        `json:"status_filter,omitempty" yaml:"status_filter,omitempty"`
	Filters        []QueryFilter   `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// ColumnSource names the entity a column reads from.
type ColumnSource string

// Column sources.
const (
	SourceCustomer ColumnSource = "customer"
	SourceScenario ColumnSource = "scenario"
	SourceEvent    ColumnSource = "event"
	SourceAccount  ColumnSource = "account"
)

// ColumnFormat hints how a cell value is displayed (badge, date, currency).
type ColumnFormat struct {
	Type string `json:"type" yaml:"type"`
}

// ColumnSpec defines one table column. Field may use dotted paths to reach
// nested event data (event_data.principal).
type ColumnSpec struct {
	Key       string        `json:"key" yaml:"key"`
	Label     string        `json:"label" yaml:"label"`
	Source    ColumnSource  `json:"source" yaml:"source"`
	Field     string        `json:"field" yaml:"field"`
	Width     string        `json:"width,omitempty" yaml:"width,omitempty"`
	Align     string        `json:"align,omitempty" yaml:"align,omitempty"`
	Format    *ColumnFormat `json:"format,omitempty" yaml:"format,omitempty"`
	Sortable  bool          `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	Clickable bool          `json:"clickable,omitempty" yaml:"clickable,omitempty"`
}

// SortSpec orders fetched rows.
type SortSpec struct {
	Field     string `json:"field" yaml:"field"`
	Direction string `json:"direction" yaml:"direction"`
}

// RowAction is an operator action rendered per row (call, message, popup).
type RowAction struct {
	Key        string `json:"key" yaml:"key"`
	Label      string `json:"label" yaml:"label"`
	Icon       string `json:"icon,omitempty" yaml:"icon,omitempty"`
	ActionType string `json:"type" yaml:"type"`
	Variant    string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// DataSourceSpec is a named, reusable query and column layout that widgets
// can bind to instead of carrying their own query.
type DataSourceSpec struct {
	ID                    string           `json:"id" yaml:"id"`
	Name                  string           `json:"name" yaml:"name"`
	Description           string           `json:"description,omitempty" yaml:"description,omitempty"`
	Category              Category         `json:"category" yaml:"category"`
	ApplicableTemplateIDs []string         `json:"applicable_templates" yaml:"applicable_templates"`
	Query                 QueryDescription `json:"query" yaml:"query"`
	Columns               []ColumnSpec     `json:"columns,omitempty" yaml:"columns,omitempty"`
	DefaultSort           SortSpec         `json:"default_sort,omitempty" yaml:"default_sort,omitempty"`
	DefaultPageSize       int              `json:"default_page_size,omitempty" yaml:"default_page_size,omitempty"`
	RowActions            []RowAction      `json:"row_actions,omitempty" yaml:"row_actions,omitempty"`
}

// SavedWidget is a user-created widget instance. Config is free-form per
// template kind; DecodeConfig turns it into a typed value.
type SavedWidget struct {
	ID         string         `json:"id"`
	TemplateID string         `json:"template_id"`
	Title      string         `json:"title"`
	Config     map[string]any `json:"config,omitempty"`
	Pages      []Page         `json:"pages,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// PinnedToDashboard reports whether the widget carries the dashboard sentinel.
func (w SavedWidget) PinnedToDashboard() bool {
	return containsPage(w.Pages, PageDashboard)
}

// EffectiveConfig is the fully-resolved runtime configuration for a widget:
// everything the render path and the fetch adapter need, with every fallback
// already applied.
type EffectiveConfig struct {
	Query      QueryDescription `json:"query"`
	Columns    []ColumnSpec     `json:"columns"`
	Sort       SortSpec         `json:"sort"`
	PageSize   int              `json:"page_size"`
	RowActions []RowAction      `json:"row_actions"`
	GridSize   GridSize         `json:"grid_size"`
}

// EventRow is the row shape the fetch adapter returns for customer-event
// queries.
type EventRow struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerGroup string         `json:"customer_group"`
	Grade         string         `json:"grade"`
	TotalAUM      float64        `json:"total_aum"`
	Phone         string         `json:"phone"`
	ScenarioCode  string         `json:"scenario_code"`
	ScenarioName  string         `json:"scenario_name"`
	ScenarioColor string         `json:"scenario_color"`
	EventDate     string         `json:"event_date"`
	EventData     map[string]any `json:"event_data,omitempty"`
	Status        string         `json:"status"`
	Priority      string         `json:"priority,omitempty"`
}

// Medium is the synchronous key-value store the widget and selection stores
// persist through. Implementations live in pkg/localstore.
type Medium interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// WidgetEvent describes a mutation that transports might care about.
type WidgetEvent struct {
	Page   Page        `json:"page,omitempty"`
	Widget SavedWidget `json:"widget"`
	Reason string      `json:"reason"`
}

// RefreshHook notifies transports (REST/WebSocket) about widget changes.
type RefreshHook interface {
	WidgetUpdated(ctx context.Context, event WidgetEvent) error
}
