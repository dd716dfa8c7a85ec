package events

import (
	"context"
	"testing"

	"github.com/goliatone/go-advisor-dashboard/components/widgets"
)

func TestMockClientAppliesScenarioFilter(t *testing.T) {
	client := NewMockClient()
	query := widgets.QueryDescription{
		ScenarioFilter: &widgets.ScenarioFilter{Codes: []string{"LONG_NO_CONTACT"}},
	}
	rows, err := client.FetchEvents(context.Background(), query, "advisor-1")
	if err != nil {
		t.Fatalf("FetchEvents returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].ScenarioCode != "LONG_NO_CONTACT" {
		t.Fatalf("expected one no-contact row, got %+v", rows)
	}
}

func TestMockClientAppliesStatusFromDynamicFilters(t *testing.T) {
	client := NewMockClient()
	query := widgets.QueryDescription{
		Filters: []widgets.QueryFilter{
			{Column: "status", Operator: "in", Value: []string{"pending"}},
		},
	}
	rows, err := client.FetchEvents(context.Background(), query, "")
	if err != nil {
		t.Fatalf("FetchEvents returned error: %v", err)
	}
	for _, row := range rows {
		if row.Status != "pending" {
			t.Fatalf("expected only pending rows, got %+v", row)
		}
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 pending rows, got %d", len(rows))
	}
}

func TestMockClientSortsByEventDate(t *testing.T) {
	client := NewMockClient()
	rows, err := client.FetchEvents(context.Background(), widgets.QueryDescription{}, "")
	if err != nil {
		t.Fatalf("FetchEvents returned error: %v", err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].EventDate > rows[i].EventDate {
			t.Fatalf("expected ascending dates, got %s before %s", rows[i-1].EventDate, rows[i].EventDate)
		}
	}
}
