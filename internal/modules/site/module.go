package site

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/handlers"
	"github.com/nfrund/pattivana/internal/middleware"
	"github.com/nfrund/pattivana/internal/module"
	"github.com/nfrund/pattivana/internal/registry"
	"github.com/nfrund/pattivana/web/src/templates/components"
)

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	// FragmentRate is the per-IP request rate on the grid fragment endpoint.
	FragmentRate int
}

// Module mounts the landing and menu pages.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "site"
}

// Boot sets up the page routes. It requires the content module to have registered.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting site module: setting up routes")
	content := registry.MustGet(reg, registry.ContentKey)

	home := handlers.NewHomeHandler(content)
	menu := handlers.NewMenuHandler(content, handlers.WithLiveViewport(reg.Config().GetMenuLiveViewport()))

	g.GET("/", home.HomeGet)
	g.GET(components.MenuPath, menu.MenuGet, middleware.VaryHTMX)
	g.GET(components.GridEndpoint, menu.GridGet, middleware.VaryHTMX, middleware.RateLimiter(m.deps.FragmentRate))
	return nil
}
