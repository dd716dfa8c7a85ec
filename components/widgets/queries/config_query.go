package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// RuntimeConfigInput identifies the widget whose effective configuration is
// requested.
type RuntimeConfigInput struct {
	WidgetID string `json:"widget_id"`
}

// RuntimeConfig pairs the widget with its fully-merged configuration.
type RuntimeConfig struct {
	Widget widgets.SavedWidget     `json:"widget"`
	Found  bool                    `json:"found"`
	Config widgets.EffectiveConfig `json:"config"`
}

type configService interface {
	GetWidget(ctx context.Context, id string) (widgets.SavedWidget, bool, error)
	ResolveRuntimeConfig(widget widgets.SavedWidget) widgets.EffectiveConfig
}

// RuntimeConfigQuery merges a widget's effective runtime configuration.
type RuntimeConfigQuery struct {
	service configService
}

// NewRuntimeConfigQuery builds the query.
func NewRuntimeConfigQuery(service configService) *RuntimeConfigQuery {
	return &RuntimeConfigQuery{service: service}
}

var _ gocommand.Querier[RuntimeConfigInput, RuntimeConfig] = (*RuntimeConfigQuery)(nil)

// Query resolves the widget's effective configuration. Found is false when
// the widget no longer exists; that is not an error.
func (q *RuntimeConfigQuery) Query(ctx context.Context, input RuntimeConfigInput) (RuntimeConfig, error) {
	if input.WidgetID == "" {
		return RuntimeConfig{}, errors.New("runtime config query requires widget id")
	}
	widget, found, err := q.service.GetWidget(ctx, input.WidgetID)
	if err != nil {
		return RuntimeConfig{}, err
	}
	if !found {
		return RuntimeConfig{}, nil
	}
	return RuntimeConfig{
		Widget: widget,
		Found:  true,
		Config: q.service.ResolveRuntimeConfig(widget),
	}, nil
}
