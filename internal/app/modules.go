package app

import (
	"github.com/nfrund/pattivana/internal/module"
	"github.com/nfrund/pattivana/internal/modules/content"
	"github.com/nfrund/pattivana/internal/modules/site"
)

// NewModules creates and returns the list of all active modules for the application.
// Order matters: modules are registered and booted in this order.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		content.New(contentDeps(deps)),
		site.New(siteDeps(deps)),
	}
}
