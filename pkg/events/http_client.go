package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// HTTPConfig configures the HTTP events client.
type HTTPConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPClient talks to the backend table store's query endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient builds a client for the backend events API.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("events: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  httpClient,
	}, nil
}

type eventsRequest struct {
	Query     widgets.QueryDescription `json:"query"`
	AdvisorID string                   `json:"advisor_id,omitempty"`
}

type eventsResponse struct {
	Rows []widgets.EventRow `json:"rows"`
}

// FetchEvents implements Client by posting the query description.
func (c *HTTPClient) FetchEvents(ctx context.Context, query widgets.QueryDescription, advisorID string) ([]widgets.EventRow, error) {
	req := eventsRequest{Query: query, AdvisorID: advisorID}
	var resp eventsResponse
	if err := c.do(ctx, http.MethodPost, "/events/query", req, &resp); err != nil {
		return nil, err
	}
	return resp.Rows, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("events: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("events: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("events: %s %s returned %d: %s", method, path, resp.StatusCode, snippet)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("events: decode response: %w", err)
	}
	return nil
}
