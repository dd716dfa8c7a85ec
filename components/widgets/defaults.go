package widgets

const defaultBaseTable = "customer_scenario_events"

var defaultTemplates = []WidgetTemplate{
	{
		ID:              "summary-card",
		Kind:            KindSummaryCard,
		Name:            "Summary Cards",
		Description:     "Key advisor metrics at a glance",
		Icon:            "bar-chart-2",
		DefaultGridSize: GridSize{Width: 1, Height: 1},
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cards": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []string{"metricId"},
						"properties": map[string]any{
							"metricId": map[string]any{"type": "string"},
							"label":    map[string]any{"type": "string"},
							"icon":     map[string]any{"type": "string"},
						},
					},
				},
				"order": map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
	{
		ID:              "action-list",
		Kind:            KindActionList,
		Name:            "Action List",
		Description:     "Customer events and action items in table form",
		Icon:            "list",
		DefaultGridSize: GridSize{Width: 3, Height: 1},
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dataSource": map[string]any{"type": "string"},
				"query":      map[string]any{"type": "object"},
				"columns": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "object"},
				},
				"order":     map[string]any{"type": "integer", "minimum": 0},
				"gridWidth": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"gridRows":  map[string]any{"type": "integer", "minimum": 1, "maximum": 4},
			},
		},
	},
	{
		ID:              "schedule",
		Kind:            KindSchedule,
		Name:            "Schedule",
		Description:     "Today's appointments in time order",
		Icon:            "calendar",
		DefaultGridSize: GridSize{Width: 3, Height: 1},
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dataSource": map[string]any{"type": "string"},
				"order":      map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
	{
		ID:              "bar-chart",
		Kind:            KindBarChart,
		Name:            "Bar Chart",
		Description:     "Event volume as stacked or grouped bars",
		Icon:            "bar-chart",
		DefaultGridSize: GridSize{Width: 2, Height: 2},
		SizePresets: []GridSize{
			{Width: 3, Height: 2},
			{Width: 2, Height: 3},
		},
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dataSource": map[string]any{"type": "string"},
				"chartVariant": map[string]any{
					"type": "string",
					"enum": []string{"vertical-bar-stacked", "vertical-bar-grouped", "horizontal-bar-stacked"},
				},
				"order":     map[string]any{"type": "integer", "minimum": 0},
				"gridWidth": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"gridRows":  map[string]any{"type": "integer", "minimum": 1, "maximum": 4},
			},
		},
	},
}

var defaultDataSources = []DataSourceSpec{
	{
		ID:                    "maturity",
		Name:                  "Maturing Customers",
		Description:           "Customers with deposits, funds, ELS, or bonds reaching maturity",
		Category:              CategoryCustomerEvent,
		ApplicableTemplateIDs: []string{"action-list", "bar-chart"},
		Query: QueryDescription{
			BaseTable: defaultBaseTable,
			Filters: []QueryFilter{
				{Column: "status", Operator: "in", Value: []string{"pending"}},
			},
		},
		Columns: []ColumnSpec{
			{Key: "customer_name", Label: "Customer", Source: SourceCustomer, Field: "name", Width: "120px", Clickable: true},
			{Key: "grade", Label: "Grade", Source: SourceCustomer, Field: "grade", Width: "80px", Format: &ColumnFormat{Type: "badge"}},
			{Key: "scenario", Label: "Scenario", Source: SourceScenario, Field: "name", Width: "120px"},
			{Key: "event_date", Label: "Maturity Date", Source: SourceEvent, Field: "event_date", Width: "100px", Format: &ColumnFormat{Type: "date"}, Sortable: true},
			{Key: "principal", Label: "Principal", Source: SourceEvent, Field: "event_data.principal", Width: "120px", Align: "right", Format: &ColumnFormat{Type: "currency"}, Sortable: true},
		},
		DefaultSort:     SortSpec{Field: "event_date", Direction: "asc"},
		DefaultPageSize: 10,
		RowActions: []RowAction{
			{Key: "call", Label: "Call", Icon: "phone", ActionType: "call", Variant: "primary"},
			{Key: "detail", Label: "Detail", Icon: "info", ActionType: "popup", Variant: "ghost"},
		},
	},
	{
		ID:                    "no-contact",
		Name:                  "Long No-Contact Customers",
		Description:           "Customers without contact for an extended period",
		Category:              CategoryCustomerEvent,
		ApplicableTemplateIDs: []string{"action-list"},
		Query: QueryDescription{
			BaseTable:      defaultBaseTable,
			ScenarioFilter: &ScenarioFilter{Codes: []string{"LONG_NO_CONTACT"}},
			Filters: []QueryFilter{
				{Column: "status", Operator: "in", Value: []string{"pending"}},
				{Column: "event_data->days_since_contact", Operator: "gte", Value: 60},
			},
		},
		Columns: []ColumnSpec{
			{Key: "customer_name", Label: "Customer", Source: SourceCustomer, Field: "name", Width: "120px", Clickable: true},
			{Key: "grade", Label: "Grade", Source: SourceCustomer, Field: "grade", Width: "80px", Format: &ColumnFormat{Type: "badge"}},
			{Key: "total_aum", Label: "AUM", Source: SourceCustomer, Field: "total_aum", Width: "120px", Align: "right", Format: &ColumnFormat{Type: "currency"}, Sortable: true},
			{Key: "days", Label: "Days Silent", Source: SourceEvent, Field: "event_data.days_since_contact", Width: "80px", Align: "center", Sortable: true},
		},
		DefaultSort:     SortSpec{Field: "event_data.days_since_contact", Direction: "desc"},
		DefaultPageSize: 10,
		RowActions: []RowAction{
			{Key: "call", Label: "Call", Icon: "phone", ActionType: "call", Variant: "primary"},
			{Key: "sms", Label: "Message", Icon: "message-square", ActionType: "message", Variant: "secondary"},
		},
	},
	{
		ID:                    "vip-risk",
		Name:                  "VIP Downgrade Risk",
		Description:           "Customers at risk of falling below VIP tier requirements",
		Category:              CategoryCustomerEvent,
		ApplicableTemplateIDs: []string{"action-list"},
		Query: QueryDescription{
			BaseTable:      defaultBaseTable,
			ScenarioFilter: &ScenarioFilter{Codes: []string{"VIP_DOWNGRADE_RISK"}},
			Filters: []QueryFilter{
				{Column: "status", Operator: "in", Value: []string{"pending"}},
				{Column: "customers.customer_group", Operator: "in", Value: []string{"vip", "vvip"}},
			},
		},
		Columns: []ColumnSpec{
			{Key: "customer_name", Label: "Customer", Source: SourceCustomer, Field: "name", Width: "120px", Clickable: true},
			{Key: "grade", Label: "Current Grade", Source: SourceCustomer, Field: "grade", Width: "80px", Format: &ColumnFormat{Type: "badge"}},
			{Key: "total_aum", Label: "Current AUM", Source: SourceCustomer, Field: "total_aum", Width: "120px", Align: "right", Format: &ColumnFormat{Type: "currency"}},
			{Key: "shortfall", Label: "Shortfall", Source: SourceEvent, Field: "event_data.shortfall", Width: "120px", Align: "right", Format: &ColumnFormat{Type: "currency"}},
		},
		DefaultSort:     SortSpec{Field: "event_data.shortfall", Direction: "asc"},
		DefaultPageSize: 10,
		RowActions: []RowAction{
			{Key: "call", Label: "Call", Icon: "phone", ActionType: "call", Variant: "primary"},
			{Key: "detail", Label: "Detail", Icon: "info", ActionType: "popup", Variant: "ghost"},
		},
	},
	{
		ID:                    "metric-customers",
		Name:                  "Managed Customers",
		Description:           "Total customers managed by the advisor",
		Category:              CategoryMetric,
		ApplicableTemplateIDs: []string{"summary-card"},
	},
	{
		ID:                    "metric-aum",
		Name:                  "Total AUM",
		Description:           "Assets under management across managed customers",
		Category:              CategoryMetric,
		ApplicableTemplateIDs: []string{"summary-card"},
	},
	{
		ID:                    "metric-schedules",
		Name:                  "Today's Appointments",
		Description:           "Number of appointments scheduled today",
		Category:              CategoryMetric,
		ApplicableTemplateIDs: []string{"summary-card"},
	},
	{
		ID:                    "metric-urgent",
		Name:                  "Urgent Actions",
		Description:           "Events needing immediate attention",
		Category:              CategoryMetric,
		ApplicableTemplateIDs: []string{"summary-card"},
	},
	{
		ID:                    "schedule-today",
		Name:                  "Today's Schedule",
		Description:           "Appointments for the current day in time order",
		Category:              CategorySchedule,
		ApplicableTemplateIDs: []string{"schedule"},
		Query: QueryDescription{
			BaseTable: "advisor_schedules",
			Filters: []QueryFilter{
				{Column: "scheduled_on", Operator: "eq", Value: "today"},
			},
		},
		DefaultSort:     SortSpec{Field: "scheduled_at", Direction: "asc"},
		DefaultPageSize: 20,
	},
}

// CreateWidgetRequest captures the data needed to save a widget instance.
type CreateWidgetRequest struct {
	TemplateID string         `json:"template_id"`
	Title      string         `json:"title"`
	Config     map[string]any `json:"config,omitempty"`
	Pages      []Page         `json:"pages,omitempty"`
}

var defaultSeedWidgets = []CreateWidgetRequest{
	{
		TemplateID: "summary-card",
		Title:      "Key Metrics",
		Config: map[string]any{
			"cards": []any{
				map[string]any{"metricId": "metric-customers"},
				map[string]any{"metricId": "metric-aum"},
				map[string]any{"metricId": "metric-urgent"},
			},
			"order": 0,
		},
		Pages: []Page{PageDashboard},
	},
	{
		TemplateID: "action-list",
		Title:      "Maturing Customers",
		Config:     map[string]any{"dataSource": "maturity", "order": 1},
		Pages:      []Page{PageDashboard, PageCustomers},
	},
	{
		TemplateID: "schedule",
		Title:      "Today's Schedule",
		Config:     map[string]any{"dataSource": "schedule-today", "order": 2},
		Pages:      []Page{PageDashboard},
	},
}

// DefaultTemplates returns copies of the built-in widget templates.
func DefaultTemplates() []WidgetTemplate {
	out := make([]WidgetTemplate, len(defaultTemplates))
	copy(out, defaultTemplates)
	return out
}

// DefaultDataSources returns copies of the built-in data-source specs.
func DefaultDataSources() []DataSourceSpec {
	out := make([]DataSourceSpec, len(defaultDataSources))
	copy(out, defaultDataSources)
	return out
}

// DefaultSeedWidgets returns starter widget configurations for empty stores.
func DefaultSeedWidgets() []CreateWidgetRequest {
	out := make([]CreateWidgetRequest, len(defaultSeedWidgets))
	copy(out, defaultSeedWidgets)
	return out
}
