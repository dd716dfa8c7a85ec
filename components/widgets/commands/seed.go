package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// SeedWidgetsInput controls bootstrap behavior.
type SeedWidgetsInput struct{}

type seedService interface {
	SeedWidgets(ctx context.Context) (int, error)
}

// SeedWidgetsCommand writes the starter widgets into an empty store.
type SeedWidgetsCommand struct {
	service   seedService
	telemetry Telemetry
}

// NewSeedWidgetsCommand wires dependencies.
func NewSeedWidgetsCommand(service seedService, telemetry Telemetry) *SeedWidgetsCommand {
	return &SeedWidgetsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SeedWidgetsInput] = (*SeedWidgetsCommand)(nil)

// Execute runs the bootstrap pipeline. Non-empty stores are left alone.
func (c *SeedWidgetsCommand) Execute(ctx context.Context, _ SeedWidgetsInput) error {
	if c.service == nil {
		return errors.New("seed command requires service")
	}
	count, err := c.service.SeedWidgets(ctx)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.seed", map[string]any{"count": count})
	return nil
}
