package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/domain"
	"github.com/nfrund/pattivana/internal/middleware"
	"github.com/nfrund/pattivana/internal/view"
	"github.com/nfrund/pattivana/web/src/templates/layouts"
	"github.com/nfrund/pattivana/web/src/templates/pages"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	content ContentSource
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(content ContentSource) *HomeHandler {
	return &HomeHandler{content: content}
}

// HomeGet renders the hero section with the CMS landing media.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()
	media, err := h.content.HomeMedia(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		// The landing page has nothing to render without its media.
		return fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("load home media: %w", err)
	}
	middleware.FromContext(ctx).Debug("Rendering home", "media_mode", media.Mode().String())

	pageContent := view.AdaptGomponentToTempl(pages.Home(media))
	return c.Render(http.StatusOK, "", layouts.Base("", pageContent))
}
