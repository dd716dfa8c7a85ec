package events

import (
	"context"
	"sort"

	"github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// MockClient serves canned rows for examples and tests. It applies the
// scenario and status filters from the query so widgets bound to different
// data sources see different slices.
type MockClient struct {
	Rows []widgets.EventRow
	Err  error
}

// NewMockClient builds a mock with a small, plausible advisor book.
func NewMockClient() *MockClient {
	return &MockClient{Rows: sampleRows()}
}

// FetchEvents implements Client.
func (m *MockClient) FetchEvents(_ context.Context, query widgets.QueryDescription, _ string) ([]widgets.EventRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []widgets.EventRow
	for _, row := range m.Rows {
		if !matchesScenario(row, query.ScenarioFilter) {
			continue
		}
		if !matchesStatus(row, query) {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	return out, nil
}

func matchesScenario(row widgets.EventRow, filter *widgets.ScenarioFilter) bool {
	if filter == nil || len(filter.Codes) == 0 {
		return true
	}
	for _, code := range filter.Codes {
		if row.ScenarioCode == code {
			return true
		}
	}
	return false
}

func matchesStatus(row widgets.EventRow, query widgets.QueryDescription) bool {
	statuses := query.StatusFilter
	for _, f := range query.Filters {
		if f.Column != "status" {
			continue
		}
		switch v := f.Value.(type) {
		case []string:
			statuses = append(statuses, v...)
		case []any:
			for _, s := range v {
				if str, ok := s.(string); ok {
					statuses = append(statuses, str)
				}
			}
		case string:
			statuses = append(statuses, v)
		}
	}
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if row.Status == s {
			return true
		}
	}
	return false
}

func sampleRows() []widgets.EventRow {
	return []widgets.EventRow{
		{
			ID: "evt-1", CustomerID: "c-100", CustomerName: "Jane Park", CustomerGroup: "vip",
			Grade: "VIP", TotalAUM: 1_250_000_000, Phone: "010-2200-1100",
			ScenarioCode: "DEPOSIT_MATURITY", ScenarioName: "Deposit Maturity", ScenarioColor: "#2563EB",
			EventDate: "2026-09-02", EventData: map[string]any{"principal": 200_000_000},
			Status: "pending", Priority: "high",
		},
		{
			ID: "evt-2", CustomerID: "c-101", CustomerName: "Minho Lee", CustomerGroup: "general",
			Grade: "Gold", TotalAUM: 480_000_000, Phone: "010-3300-2200",
			ScenarioCode: "FUND_MATURITY", ScenarioName: "Fund Maturity", ScenarioColor: "#7C3AED",
			EventDate: "2026-09-05", EventData: map[string]any{"principal": 55_000_000},
			Status: "pending", Priority: "normal",
		},
		{
			ID: "evt-3", CustomerID: "c-102", CustomerName: "Sora Kim", CustomerGroup: "vip",
			Grade: "VVIP", TotalAUM: 3_800_000_000, Phone: "010-4400-3300",
			ScenarioCode: "LONG_NO_CONTACT", ScenarioName: "Long No Contact", ScenarioColor: "#F59E0B",
			EventDate: "2026-08-20", EventData: map[string]any{"days_since_contact": 75},
			Status: "pending", Priority: "normal",
		},
		{
			ID: "evt-4", CustomerID: "c-103", CustomerName: "Daniel Choi", CustomerGroup: "vip",
			Grade: "VIP", TotalAUM: 900_000_000, Phone: "010-5500-4400",
			ScenarioCode: "VIP_DOWNGRADE_RISK", ScenarioName: "VIP Downgrade Risk", ScenarioColor: "#DC2626",
			EventDate: "2026-09-10", EventData: map[string]any{"shortfall": 120_000_000},
			Status: "pending", Priority: "high",
		},
		{
			ID: "evt-5", CustomerID: "c-104", CustomerName: "Hana Jung", CustomerGroup: "general",
			Grade: "Silver", TotalAUM: 150_000_000, Phone: "010-6600-5500",
			ScenarioCode: "BOND_MATURITY", ScenarioName: "Bond Maturity", ScenarioColor: "#0D9488",
			EventDate: "2026-09-02", EventData: map[string]any{"principal": 30_000_000},
			Status: "done", Priority: "low",
		},
	}
}
