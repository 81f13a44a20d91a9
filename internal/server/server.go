package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/pattivana/internal/config"
	"github.com/nfrund/pattivana/internal/handlers"
	"github.com/nfrund/pattivana/internal/middleware"
	"github.com/nfrund/pattivana/internal/module"
	"github.com/nfrund/pattivana/internal/registry"
	"github.com/nfrund/pattivana/internal/rendering"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds the services the server is built from.
type Dependencies struct {
	Config   config.Provider
	Renderer *rendering.UniversalRenderer
	// Metrics backs both the request middleware and the /metrics endpoint.
	Metrics *prometheus.Registry
	// Echo is optional; a new instance is created when nil.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	metrics *prometheus.Registry
	modules []module.Module
	cancel  context.CancelFunc
}

// New creates a new Server with the core middleware stack installed.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}
	if deps.Metrics == nil {
		deps.Metrics = prometheus.NewRegistry()
	}
	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()

	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(echomw.Gzip())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "pattivana",
		Registerer: deps.Metrics,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	return &Server{
		E:       e,
		Cfg:     deps.Config,
		metrics: deps.Metrics,
	}, nil
}

// InitModules registers every module, then boots them in order on the root
// group. Boot contexts are cancelled by Shutdown.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	bootCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	root := s.E.Group("")
	for _, m := range modules {
		slog.Info("Booting module", "module", m.Name())
		if err := m.Boot(bootCtx, root, reg); err != nil {
			cancel()
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
	}
	return nil
}

// Shutdown stops the modules in reverse boot order, then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	var errs []error
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown module %s: %w", m.Name(), err))
		}
	}
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
