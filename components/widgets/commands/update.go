package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// UpdateWidgetInput captures widget update payloads.
type UpdateWidgetInput struct {
	WidgetID string              `json:"widget_id"`
	Patch    widgets.WidgetPatch `json:"patch"`
}

type updateService interface {
	UpdateWidget(ctx context.Context, id string, patch widgets.WidgetPatch) (widgets.SavedWidget, bool, error)
}

// UpdateWidgetCommand wraps Service.UpdateWidget.
type UpdateWidgetCommand struct {
	service   updateService
	telemetry Telemetry
}

// NewUpdateWidgetCommand creates the command.
func NewUpdateWidgetCommand(service updateService, telemetry Telemetry) *UpdateWidgetCommand {
	return &UpdateWidgetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateWidgetInput] = (*UpdateWidgetCommand)(nil)

// Execute merges the patch over the widget. A vanished id is not an error;
// the UI shows a stale-widget notice instead.
func (c *UpdateWidgetCommand) Execute(ctx context.Context, msg UpdateWidgetInput) error {
	if c.service == nil {
		return errors.New("update command requires service")
	}
	if msg.WidgetID == "" {
		return errors.New("update command requires widget id")
	}
	_, found, err := c.service.UpdateWidget(ctx, msg.WidgetID, msg.Patch)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.update", map[string]any{
		"widget_id": msg.WidgetID,
		"found":     found,
	})
	return nil
}
