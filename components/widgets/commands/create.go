package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

type createService interface {
	CreateWidget(ctx context.Context, req widgets.CreateWidgetRequest) (widgets.SavedWidget, error)
}

// CreateWidgetCommand wraps Service.CreateWidget so transports can save
// widgets without linking directly against the service.
type CreateWidgetCommand struct {
	service   createService
	telemetry Telemetry
}

// NewCreateWidgetCommand creates a command instance.
func NewCreateWidgetCommand(service createService, telemetry Telemetry) *CreateWidgetCommand {
	return &CreateWidgetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[widgets.CreateWidgetRequest] = (*CreateWidgetCommand)(nil)

// Execute delegates to the widget service.
func (c *CreateWidgetCommand) Execute(ctx context.Context, msg widgets.CreateWidgetRequest) error {
	if c.service == nil {
		return errors.New("create command requires service")
	}
	widget, err := c.service.CreateWidget(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.create", map[string]any{
		"widget_id":   widget.ID,
		"template_id": widget.TemplateID,
	})
	return nil
}
