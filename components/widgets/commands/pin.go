package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// TogglePinInput identifies the widget to pin or unpin.
type TogglePinInput struct {
	WidgetID string `json:"widget_id"`
}

type pinService interface {
	TogglePin(ctx context.Context, widgetID string) (widgets.SavedWidget, bool, error)
}

// TogglePinCommand wraps Service.TogglePin.
type TogglePinCommand struct {
	service   pinService
	telemetry Telemetry
}

// NewTogglePinCommand builds the command.
func NewTogglePinCommand(service pinService, telemetry Telemetry) *TogglePinCommand {
	return &TogglePinCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[TogglePinInput] = (*TogglePinCommand)(nil)

// Execute flips the widget's dashboard membership.
func (c *TogglePinCommand) Execute(ctx context.Context, msg TogglePinInput) error {
	if c.service == nil {
		return errors.New("pin command requires service")
	}
	if msg.WidgetID == "" {
		return errors.New("pin command requires widget id")
	}
	widget, found, err := c.service.TogglePin(ctx, msg.WidgetID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.pin", map[string]any{
		"widget_id": msg.WidgetID,
		"found":     found,
		"pinned":    widget.PinnedToDashboard(),
	})
	return nil
}
