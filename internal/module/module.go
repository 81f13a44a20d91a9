// Package module defines the lifecycle shared by the site's feature modules.
// The server registers every module first, then boots them in order, and
// shuts them down in reverse on exit.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/registry"
)

// Module is a self-contained part of the site, such as the content client or
// the page routes.
type Module interface {
	// Name identifies the module in logs and wrapped errors.
	Name() string

	// Register publishes services for other modules, e.g. the CMS client.
	// No module boots before all of them have registered.
	Register(reg *registry.Registry) error

	// Boot mounts routes on router and starts background work such as the
	// content watcher. ctx is cancelled when the server shuts down.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown waits for background work started in Boot, bounded by ctx.
	Shutdown(ctx context.Context) error
}

// BaseModule lets a module implement only the phases it needs.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }

func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}

func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
