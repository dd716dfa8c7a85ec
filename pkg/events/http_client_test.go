package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-advisor-dashboard/components/widgets"
)

func TestHTTPClientFetchEvents(t *testing.T) {
	var gotAuth string
	var gotBody eventsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/events/query" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(eventsResponse{Rows: []widgets.EventRow{
			{ID: "evt-1", CustomerName: "Jane Park", Status: "pending"},
		}})
	}))
	defer server.Close()

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewHTTPClient returned error: %v", err)
	}

	query := widgets.QueryDescription{
		BaseTable:      "customer_scenario_events",
		ScenarioFilter: &widgets.ScenarioFilter{Codes: []string{"DEPOSIT_MATURITY"}},
	}
	rows, err := client.FetchEvents(context.Background(), query, "advisor-7")
	if err != nil {
		t.Fatalf("FetchEvents returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "evt-1" {
		t.Fatalf("expected decoded rows, got %+v", rows)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotBody.AdvisorID != "advisor-7" {
		t.Fatalf("expected advisor id propagation, got %q", gotBody.AdvisorID)
	}
	if gotBody.Query.BaseTable != "customer_scenario_events" {
		t.Fatalf("expected query propagation, got %+v", gotBody.Query)
	}
}

func TestHTTPClientSurfacesServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "table unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewHTTPClient returned error: %v", err)
	}
	_, err = client.FetchEvents(context.Background(), widgets.QueryDescription{}, "")
	if err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}

func TestHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPClient(HTTPConfig{}); err == nil {
		t.Fatalf("expected error for missing base url")
	}
}
