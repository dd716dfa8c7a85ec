package gorouter

import (
	"encoding/json"
	"errors"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
	"github.com/goliatone/go-advisor-dashboard/components/widgets/commands"
	"github.com/goliatone/go-advisor-dashboard/components/widgets/httpapi"
	"github.com/goliatone/go-advisor-dashboard/components/widgets/queries"
)

// Config wires go-router with the widget commands, queries, and refresh hook.
type Config[T any] struct {
	Router        router.Router[T]
	API           httpapi.Executor
	PageLayout    gocommand.Querier[queries.PageLayoutInput, queries.PageLayout]
	RuntimeConfig gocommand.Querier[queries.RuntimeConfigInput, queries.RuntimeConfig]
	Catalog       gocommand.Querier[queries.CatalogInput, queries.Catalog]
	Broadcast     *widgets.BroadcastHook
	BasePath      string
	Routes        RouteConfig
}

// RouteConfig customizes the relative paths used for widget endpoints.
type RouteConfig struct {
	PageWidgets string
	Catalog     string
	Widgets     string
	WidgetID    string
	WidgetPin   string
	Config      string
	Move        string
	Selection   string
	WebSocket   string
}

// Register mounts widget routes (JSON REST plus WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/advisor"
	}

	group := cfg.Router.Group(base)

	if cfg.PageLayout != nil {
		group.Get(routes.PageWidgets, router.WrapHandler(func(ctx router.Context) error {
			page, err := parsePageParam(ctx)
			if err != nil {
				return respondError(ctx, http.StatusBadRequest, err)
			}
			layout, err := cfg.PageLayout.Query(ctx.Context(), queries.PageLayoutInput{Page: page})
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, layout)
		}))
	}

	if cfg.RuntimeConfig != nil {
		group.Get(routes.Config, router.WrapHandler(func(ctx router.Context) error {
			id := ctx.Param("id")
			if id == "" {
				return respondError(ctx, http.StatusBadRequest, errors.New("widget id is required"))
			}
			resolved, err := cfg.RuntimeConfig.Query(ctx.Context(), queries.RuntimeConfigInput{WidgetID: id})
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			if !resolved.Found {
				return respondError(ctx, http.StatusNotFound, errors.New("widget not found"))
			}
			return ctx.JSON(http.StatusOK, resolved)
		}))
	}

	if cfg.Catalog != nil {
		group.Get(routes.Catalog, router.WrapHandler(func(ctx router.Context) error {
			input := queries.CatalogInput{TemplateID: ctx.Query("template")}
			catalog, err := cfg.Catalog.Query(ctx.Context(), input)
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, catalog)
		}))
	}

	if cfg.API != nil {
		registerAPI(group, cfg.API, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, routes RouteConfig) {
	r.Post(routes.Widgets, router.WrapHandler(func(ctx router.Context) error {
		var payload widgets.CreateWidgetRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Create(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	r.Patch(routes.WidgetID, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("widget id is required"))
		}
		var patch widgets.WidgetPatch
		if err := json.Unmarshal(ctx.Body(), &patch); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input := commands.UpdateWidgetInput{WidgetID: id, Patch: patch}
		if err := api.Update(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	r.Delete(routes.WidgetID, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("widget id is required"))
		}
		if err := api.Remove(ctx.Context(), commands.RemoveWidgetInput{WidgetID: id}); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusNoContent, map[string]string{"status": "removed"})
	}))

	r.Post(routes.Move, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.MoveWidgetInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Move(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "moved"})
	}))

	r.Post(routes.Selection, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.SaveSelectionInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.SaveSelection(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post(routes.WidgetPin, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("widget id is required"))
		}
		if err := api.TogglePin(ctx.Context(), commands.TogglePinInput{WidgetID: id}); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "toggled"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *widgets.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func parsePageParam(ctx router.Context) (widgets.Page, error) {
	page, ok := widgets.ParsePage(ctx.Param("page"))
	if !ok {
		return "", errors.New("unknown page")
	}
	return page, nil
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.PageWidgets == "" {
		routes.PageWidgets = "/pages/:page/widgets"
	}
	if routes.Catalog == "" {
		routes.Catalog = "/widgets/catalog"
	}
	if routes.Widgets == "" {
		routes.Widgets = "/widgets"
	}
	if routes.WidgetID == "" {
		routes.WidgetID = "/widgets/:id"
	}
	if routes.WidgetPin == "" {
		routes.WidgetPin = "/widgets/:id/pin"
	}
	if routes.Config == "" {
		routes.Config = "/widgets/:id/config"
	}
	if routes.Move == "" {
		routes.Move = "/widgets/move"
	}
	if routes.Selection == "" {
		routes.Selection = "/pages/selection"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/widgets/ws"
	}
	return routes
}
