// Package registry is how the site's modules hand services to each other:
// the content module publishes the CMS client during Register, and the site
// module looks it up in Boot to build the page handlers.
package registry

import (
	"fmt"
	"sync"

	"github.com/nfrund/pattivana/internal/config"
)

// Key is typed by the service it names, so a lookup cannot return the wrong
// type. Keys live in keys.go.
type Key[T any] string

// Registry holds the services published by modules and the configuration
// they were built from. Writes happen during Register; Boot and request
// handling only read.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates an empty registry around cfg.
func New(cfg config.Provider) *Registry {
	return &Registry{
		cfg: cfg,
	}
}

// Config returns the configuration, e.g. CONTENT_WATCH or MENU_LIVE_VIEWPORT for Boot.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set publishes value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get looks up the service published under key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	val, ok := r.services.Load(string(key))
	if !ok {
		var zero T
		return zero, false
	}

	result, ok := val.(T)
	if !ok {
		var zero T
		return zero, false
	}

	return result, true
}

// MustGet is Get for services a module cannot boot without, such as the
// CMS client. A missing service means modules were listed out of order in
// app.NewModules, so it panics.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}
