package pages

import (
	"github.com/nfrund/pattivana/internal/domain"
	"github.com/nfrund/pattivana/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the landing page body.
func Home(media domain.MediaDescriptor) cmp.Node {
	return g.Main(
		g.Class("bg-black"),
		components.HeroDisplay(media),
	)
}
