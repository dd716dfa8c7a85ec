package widgets

import "testing"

func TestDecodeConfigPerKind(t *testing.T) {
	summary, ok := DecodeConfig(KindSummaryCard, map[string]any{
		"cards": []any{
			map[string]any{"metricId": "metric-aum", "label": "AUM"},
		},
	}).(SummaryCardConfig)
	if !ok {
		t.Fatalf("expected SummaryCardConfig")
	}
	if len(summary.Cards) != 1 || summary.Cards[0].MetricID != "metric-aum" {
		t.Fatalf("expected decoded cards, got %+v", summary.Cards)
	}

	chart, ok := DecodeConfig(KindBarChart, map[string]any{
		"dataSource": "maturity",
	}).(BarChartConfig)
	if !ok {
		t.Fatalf("expected BarChartConfig")
	}
	if chart.ChartVariant != VariantVerticalStacked {
		t.Fatalf("expected stacked default variant, got %q", chart.ChartVariant)
	}

	list, ok := DecodeConfig(Kind("unknown"), map[string]any{
		"dataSource": "maturity",
		"gridWidth":  3,
	}).(ActionListConfig)
	if !ok {
		t.Fatalf("expected ActionListConfig for unknown kinds")
	}
	if list.DataSource != "maturity" || list.GridWidth != 3 {
		t.Fatalf("expected decoded fields, got %+v", list)
	}
}

func TestDecodeConfigIsPermissive(t *testing.T) {
	cfg, ok := DecodeConfig(KindActionList, map[string]any{
		"dataSource": 42,
		"mystery":    "ignored",
	}).(ActionListConfig)
	if !ok {
		t.Fatalf("expected ActionListConfig")
	}
	if cfg.DataSource != "" {
		t.Fatalf("expected wrong-typed field to zero out, got %q", cfg.DataSource)
	}
}

func TestConfigOrder(t *testing.T) {
	if _, ok := configOrder(nil); ok {
		t.Fatalf("expected no order for nil config")
	}
	if _, ok := configOrder(map[string]any{"order": "three"}); ok {
		t.Fatalf("expected malformed order to report false")
	}
	n, ok := configOrder(map[string]any{"order": float64(4)})
	if !ok || n != 4 {
		t.Fatalf("expected order 4, got %d ok=%v", n, ok)
	}
}

func TestConfigQueryTreatsEmptyAsAbsent(t *testing.T) {
	if _, ok := configQuery(map[string]any{"query": map[string]any{}}); ok {
		t.Fatalf("expected empty query object to be absent")
	}
	if _, ok := configQuery(map[string]any{"query": "not-an-object"}); ok {
		t.Fatalf("expected non-object query to be absent")
	}
	q, ok := configQuery(map[string]any{"query": map[string]any{"base_table": "advisor_schedules"}})
	if !ok || q.BaseTable != "advisor_schedules" {
		t.Fatalf("expected decoded query, got %+v ok=%v", q, ok)
	}
}

func TestConfigColumnsNormalizesEntries(t *testing.T) {
	cols := configColumns(map[string]any{
		"columns": []any{
			map[string]any{"key": "grade"},
			map[string]any{"label": "Anonymous"},
			"garbage",
		},
	})
	if len(cols) != 2 {
		t.Fatalf("expected 2 normalized columns, got %d", len(cols))
	}
	if cols[0].Key != "grade" || cols[0].Label != "grade" || cols[0].Source != SourceCustomer {
		t.Fatalf("expected defaults filled, got %+v", cols[0])
	}
	if cols[1].Key != "col" {
		t.Fatalf("expected placeholder key, got %+v", cols[1])
	}
}
