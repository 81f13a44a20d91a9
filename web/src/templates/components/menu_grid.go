package components

import (
	"fmt"

	"github.com/nfrund/pattivana/internal/domain"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

const (
	// GridEndpoint serves the re-derived grid once the viewport is measured.
	GridEndpoint = "/menu/grid"
	// GridID is the element id swapped by the measurement request.
	GridID = "menu-grid"

	// TileMediaClass marks a tile's background image, revealed on hover or press.
	TileMediaClass = "tile-media"

	measureVals   = "js:{width: window.innerWidth}"
	liveTrigger   = "resize from:window throttle:500ms"
	staggerStepMs = 80
)

// MenuGridProps configures MenuGrid.
type MenuGridProps struct {
	// Entries are rendered in order; entries with Show=false are skipped.
	Entries []domain.MenuEntry
	// Measured is false on the first render, before the client reported
	// its viewport width. The unmeasured grid asks for exactly one
	// re-render after load.
	Measured bool
	// Live keeps re-measuring on window resize after the first measurement.
	Live bool
	// Endpoint overrides GridEndpoint.
	Endpoint string
}

// MenuGrid renders the menu tiles as a column (narrow) or row (wide).
func MenuGrid(p MenuGridProps) cmp.Node {
	endpoint := p.Endpoint
	if endpoint == "" {
		endpoint = GridEndpoint
	}

	tiles := make([]cmp.Node, 0, len(p.Entries))
	for _, e := range p.Entries {
		if !e.Show {
			continue
		}
		tiles = append(tiles, menuTile(e, len(tiles)))
	}

	return g.Div(
		g.ID(GridID),
		g.Class("menu-grid flex h-screen w-full flex-col lg:flex-row"),
		cmp.Attr("data-measured", fmt.Sprint(p.Measured)),
		measurement(p, endpoint),
		cmp.Group(tiles),
	)
}

func measurement(p MenuGridProps, endpoint string) cmp.Node {
	var trigger string
	switch {
	case !p.Measured:
		trigger = "load"
	case p.Live:
		trigger = liveTrigger
	default:
		return nil
	}
	return cmp.Group{
		hx.Get(endpoint),
		hx.Trigger(trigger),
		hx.Vals(measureVals),
		hx.Swap("outerHTML"),
	}
}

func menuTile(e domain.MenuEntry, position int) cmp.Node {
	key := domain.SlotKey(e.ID)
	return g.A(
		g.Href(e.Link),
		g.ID("menu-tile-"+key),
		g.Class("menu-tile list-item flex-1"),
		cmp.Attr("data-key", key),
		cmp.Attr("style", fmt.Sprintf("animation-delay: %dms", position*staggerStepMs)),
		g.Div(
			g.Class("group relative flex h-full flex-col justify-center border-b border-r border-b-cream border-r-cream bg-center pl-10 transition-all active:grayscale-0 lg:justify-start lg:gap-10 lg:p-5 lg:pt-[18vh] lg:grayscale"),
			Image(e.Image, ImageProps{
				Class: TileMediaClass + " object-cover hidden group-hover:block group-active:block z-[-1]",
				Fill:  true,
				Sizes: "(min-width: 1024px) 25vw, 100vw",
			}),
			g.H1(g.Class("text-lg text-primary lg:text-3xl"), cmp.Text(e.Title)),
			g.H3(g.Class("max-w-[50%] text-sm text-cream-dark lg:max-w-full lg:text-xl"), cmp.Text(e.Description)),
		),
	)
}
