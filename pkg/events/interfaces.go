// Package events fetches customer-event rows from the backend table store.
// The widget engine only produces query descriptions; this package executes
// them. Retry and timeout policy lives here, never in the core.
package events

import (
	"context"

	"github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// Client retrieves rows for a resolved widget query. AdvisorID scopes the
// query to one advisor's book; empty means no scoping.
type Client interface {
	FetchEvents(ctx context.Context, query widgets.QueryDescription, advisorID string) ([]widgets.EventRow, error)
}
