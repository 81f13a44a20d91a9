package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/cms"
	"github.com/nfrund/pattivana/internal/config"
	"github.com/nfrund/pattivana/internal/handlers"
	"github.com/nfrund/pattivana/internal/registry"
	"github.com/nfrund/pattivana/internal/rendering"
	"github.com/nfrund/pattivana/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bootSite(t *testing.T, live bool, rate int) *echo.Echo {
	t.Helper()
	cfg := &config.Config{Addr: ":0", ContentCacheTTL: time.Minute, MenuLiveViewport: live}
	reg := registry.New(cfg)
	registry.Set(reg, registry.ContentKey, cms.NewClient(cms.Options{
		Fs:           testutils.ContentFs(t, "content/site.yaml", testutils.SiteYAML),
		FallbackPath: "content/site.yaml",
	}))

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()

	m := New(Dependencies{FragmentRate: rate})
	assert.Equal(t, "site", m.Name())
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestModule_MountsRoutes(t *testing.T) {
	e := bootSite(t, false, 100)

	for _, path := range []string{"/", "/menu", "/menu/grid?width=800"} {
		rec := serve(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
	assert.Contains(t, serve(e, "/menu").Header().Get(echo.HeaderVary), "HX-Request")
}

func TestModule_LiveViewportOption(t *testing.T) {
	e := bootSite(t, true, 100)
	rec := serve(e, "/menu/grid?width=800")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-trigger="resize from:window throttle:500ms"`)
}

func TestModule_GridIsRateLimited(t *testing.T) {
	e := bootSite(t, false, 1)

	var limited bool
	for i := 0; i < 10; i++ {
		if serve(e, "/menu/grid?width=800").Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited)
}
