package dashboard

import (
	core "github.com/goliatone/go-advisor-dashboard/components/widgets"
)

// Service exposes the underlying components/widgets.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Registry re-exports the widget catalog registry.
type Registry = core.Registry

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewRegistry builds a registry preloaded with the built-in catalog.
func NewRegistry() *Registry {
	return core.NewRegistry()
}
