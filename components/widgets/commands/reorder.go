package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// MoveWidgetInput is a single-step reorder within a page.
type MoveWidgetInput struct {
	Page      widgets.Page          `json:"page"`
	Index     int                   `json:"index"`
	Direction widgets.MoveDirection `json:"direction"`
}

// SaveSelectionInput overwrites a page's explicit widget selection.
type SaveSelectionInput struct {
	Page      widgets.Page `json:"page"`
	WidgetIDs []string     `json:"widget_ids"`
}

type reorderService interface {
	MoveWidget(ctx context.Context, page widgets.Page, index int, direction widgets.MoveDirection) error
	SaveSelection(ctx context.Context, page widgets.Page, ids []string) error
}

// MoveWidgetCommand wraps Service.MoveWidget.
type MoveWidgetCommand struct {
	service   reorderService
	telemetry Telemetry
}

// NewMoveWidgetCommand builds the command.
func NewMoveWidgetCommand(service reorderService, telemetry Telemetry) *MoveWidgetCommand {
	return &MoveWidgetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[MoveWidgetInput] = (*MoveWidgetCommand)(nil)

// Execute swaps the widget with its neighbor and persists the new order.
func (c *MoveWidgetCommand) Execute(ctx context.Context, msg MoveWidgetInput) error {
	if c.service == nil {
		return errors.New("move command requires service")
	}
	if msg.Direction != widgets.MoveUp && msg.Direction != widgets.MoveDown {
		return errors.New("move command requires direction up or down")
	}
	if err := c.service.MoveWidget(ctx, msg.Page, msg.Index, msg.Direction); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.move", map[string]any{
		"page":      string(msg.Page),
		"index":     msg.Index,
		"direction": string(msg.Direction),
	})
	return nil
}

// SaveSelectionCommand wraps Service.SaveSelection.
type SaveSelectionCommand struct {
	service   reorderService
	telemetry Telemetry
}

// NewSaveSelectionCommand builds the command.
func NewSaveSelectionCommand(service reorderService, telemetry Telemetry) *SaveSelectionCommand {
	return &SaveSelectionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveSelectionInput] = (*SaveSelectionCommand)(nil)

// Execute overwrites the page's selection list.
func (c *SaveSelectionCommand) Execute(ctx context.Context, msg SaveSelectionInput) error {
	if c.service == nil {
		return errors.New("selection command requires service")
	}
	if err := c.service.SaveSelection(ctx, msg.Page, msg.WidgetIDs); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.selection", map[string]any{
		"page":  string(msg.Page),
		"count": len(msg.WidgetIDs),
	})
	return nil
}
