package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/pattivana/internal/view"
	cmp "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

const (
	stylesheetPath = "/static/css/app.css"
	htmxSrc        = "https://unpkg.com/htmx.org@2.0.4"
	description    = "Pattivana: real memories made from real experiences."
)

// Base wraps page content in the HTML document shell.
func Base(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return gc.HTML5(gc.HTML5Props{
			Title:       CalculateTitle(title),
			Description: description,
			Language:    "en",
			Head: []cmp.Node{
				g.Link(g.Rel("stylesheet"), g.Href(stylesheetPath)),
				g.Script(g.Src(htmxSrc), cmp.Attr("defer")),
			},
			Body: []cmp.Node{
				g.Class("min-h-screen antialiased"),
				view.AdaptTemplToGomponentContext(ctx, content),
			},
		}).Render(w)
	})
}
