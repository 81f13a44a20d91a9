package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/domain"
	"github.com/nfrund/pattivana/internal/handlers"
	"github.com/nfrund/pattivana/internal/menu"
	"github.com/nfrund/pattivana/internal/rendering"
)

type fakeContent struct {
	home    domain.MediaDescriptor
	homeErr error
	menu    domain.MenuImageSet
	menuErr error
}

func (f *fakeContent) HomeMedia(context.Context) (domain.MediaDescriptor, error) {
	return f.home, f.homeErr
}

func (f *fakeContent) MenuImages(context.Context) (domain.MenuImageSet, error) {
	return f.menu, f.menuErr
}

// derivationRecorder wraps menu.DeriveEntries and records the narrow flag of each call.
type derivationRecorder struct {
	mu    sync.Mutex
	calls []bool
}

func (r *derivationRecorder) derive(images domain.MenuImageSet, narrow bool) []domain.MenuEntry {
	r.mu.Lock()
	r.calls = append(r.calls, narrow)
	r.mu.Unlock()
	return menu.DeriveEntries(images, narrow)
}

func (r *derivationRecorder) narrowCalls() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.calls...)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	return e
}

func get(e *echo.Echo, target string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

var tileKey = regexp.MustCompile(`data-key="([^"]+)"`)

func tileKeys(html string) []string {
	var keys []string
	for _, m := range tileKey.FindAllStringSubmatch(html, -1) {
		keys = append(keys, m[1])
	}
	return keys
}

func menuFixture() domain.MenuImageSet {
	return domain.MenuImageSet{
		"food":    {Title: "Food", Link: "/menu/food", Order: 1},
		"drinks":  {Title: "Drinks", Link: "/menu/drinks", Order: 2},
		"events":  {Title: "Events", Link: "/events", Order: 3, Visibility: domain.VisibleDesktop},
		"reserve": {Title: "Reserve", Link: "/reserve", Order: 4, Visibility: domain.VisibleMobile},
	}
}
