package app

import (
	"github.com/nfrund/pattivana/internal/config"
	"github.com/nfrund/pattivana/internal/middleware"
	"github.com/nfrund/pattivana/internal/modules/content"
	"github.com/nfrund/pattivana/internal/modules/site"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Config     config.Provider
	Fs         afero.Fs
	Registerer prometheus.Registerer
}

// contentDeps creates the dependency struct for the content module.
func contentDeps(deps Dependencies) content.Dependencies {
	return content.Dependencies{
		Config:     deps.Config,
		Fs:         deps.Fs,
		Registerer: deps.Registerer,
	}
}

// siteDeps creates the dependency struct for the site module.
func siteDeps(deps Dependencies) site.Dependencies {
	return site.Dependencies{
		FragmentRate: middleware.DefaultFragmentRate,
	}
}
