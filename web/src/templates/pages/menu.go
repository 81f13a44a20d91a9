package pages

import (
	"github.com/nfrund/pattivana/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Menu is the menu selection page body.
func Menu(grid components.MenuGridProps) cmp.Node {
	return g.Main(
		g.Class("bg-secondary"),
		components.MenuGrid(grid),
	)
}
