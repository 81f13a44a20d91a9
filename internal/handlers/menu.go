package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/domain"
	"github.com/nfrund/pattivana/internal/menu"
	"github.com/nfrund/pattivana/internal/middleware"
	"github.com/nfrund/pattivana/internal/view"
	"github.com/nfrund/pattivana/web/src/templates/components"
	"github.com/nfrund/pattivana/web/src/templates/layouts"
	"github.com/nfrund/pattivana/web/src/templates/pages"
)

// MenuHandler serves the menu page and the measured grid fragment.
type MenuHandler struct {
	content ContentSource
	derive  menu.Deriver
	live    bool
}

// MenuOption customizes a MenuHandler.
type MenuOption func(*MenuHandler)

// WithDeriver replaces menu.DeriveEntries.
func WithDeriver(d menu.Deriver) MenuOption {
	return func(h *MenuHandler) { h.derive = d }
}

// WithLiveViewport keeps the grid re-measuring on every window resize.
func WithLiveViewport(live bool) MenuOption {
	return func(h *MenuHandler) { h.live = live }
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(content ContentSource, opts ...MenuOption) *MenuHandler {
	h := &MenuHandler{content: content, derive: menu.DeriveEntries}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// MenuGet renders the full menu page. The viewport has not been measured
// yet, so entries are derived for the wide layout.
func (h *MenuHandler) MenuGet(c echo.Context) error {
	images, err := h.images(c.Request().Context())
	if err != nil {
		return err
	}
	grid := components.MenuGridProps{
		Entries: h.derive(images, false),
		Live:    h.live,
	}
	pageContent := view.AdaptGomponentToTempl(pages.Menu(grid))
	return c.Render(http.StatusOK, "", layouts.Base("Menu", pageContent))
}

// GridGet re-derives the entries for the reported viewport width and returns
// the grid fragment that replaces the unmeasured one.
func (h *MenuHandler) GridGet(c echo.Context) error {
	var req MenuGridRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	images, err := h.images(ctx)
	if err != nil {
		return err
	}
	narrow := menu.IsNarrow(req.Width)
	middleware.FromContext(ctx).Debug("Viewport measured", "width", req.Width, "narrow", narrow)

	grid := components.MenuGridProps{
		Entries:  h.derive(images, narrow),
		Measured: true,
		Live:     h.live,
	}
	return c.Render(http.StatusOK, "", components.MenuGrid(grid))
}

// images loads the menu section. A missing document is rendered as an
// empty grid; other failures are returned.
func (h *MenuHandler) images(ctx context.Context) (domain.MenuImageSet, error) {
	images, err := h.content.MenuImages(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load menu images: %w", err)
	}
	return images, nil
}
