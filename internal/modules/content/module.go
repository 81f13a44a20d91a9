package content

import (
	"context"
	"log/slog"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/cms"
	"github.com/nfrund/pattivana/internal/config"
	"github.com/nfrund/pattivana/internal/module"
	"github.com/nfrund/pattivana/internal/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
)

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Config     config.Provider
	Fs         afero.Fs
	Registerer prometheus.Registerer
}

// Module provides the CMS client to the other modules.
type Module struct {
	module.BaseModule
	deps   Dependencies
	client *cms.Client

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "content"
}

// Register builds the CMS client and publishes it under registry.ContentKey.
func (m *Module) Register(reg *registry.Registry) error {
	cfg := m.deps.Config
	m.client = cms.NewClient(cms.Options{
		SpaceID:      cfg.GetContentfulSpaceID(),
		AccessToken:  cfg.GetContentfulAccessToken(),
		Environment:  cfg.GetContentfulEnvironment(),
		GraphQLURL:   cfg.GetContentfulGraphQLURL(),
		Preview:      cfg.GetContentfulPreview(),
		Fs:           m.deps.Fs,
		FallbackPath: cfg.GetContentFallbackPath(),
		CacheTTL:     cfg.GetContentCacheTTL(),
		Metrics:      cms.NewMetrics(m.deps.Registerer),
	})
	registry.Set(reg, registry.ContentKey, m.client)
	slog.Info("Registered content client",
		"contentful", cfg.GetContentfulSpaceID() != "",
		"fallback", cfg.GetContentFallbackPath(),
	)
	return nil
}

// Boot starts the fallback watcher when CONTENT_WATCH is enabled.
func (m *Module) Boot(ctx context.Context, _ *echo.Group, reg *registry.Registry) error {
	if !reg.Config().GetContentWatch() {
		return nil
	}
	watchCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.client.Watch(watchCtx); err != nil {
			slog.Error("Content watcher failed", "error", err)
		}
	}()
	return nil
}

// Shutdown stops the watcher and waits for it to exit.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
