package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/pattivana/internal/app"
	"github.com/nfrund/pattivana/internal/config"
	"github.com/nfrund/pattivana/internal/logging"
	"github.com/nfrund/pattivana/internal/registry"
	"github.com/nfrund/pattivana/internal/rendering"
	"github.com/nfrund/pattivana/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.New()
	logging.New() // after config.New so LOG_* from .env apply
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	renderer := rendering.NewUniversalRenderer()
	reg := registry.New(cfg)

	s, err := server.New(server.Dependencies{
		Config:   cfg,
		Renderer: renderer,
		Metrics:  metrics,
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	modules := app.NewModules(app.Dependencies{
		Config:     cfg,
		Fs:         afero.NewOsFs(),
		Registerer: metrics,
	})
	if err := s.InitModules(context.Background(), modules, reg); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}
	s.RegisterRoutes()

	if err := s.Start(cfg.GetAddr()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
