package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/pattivana/internal/app"
	"github.com/nfrund/pattivana/internal/registry"
	"github.com/nfrund/pattivana/internal/server"
	"github.com/nfrund/pattivana/internal/testutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupIntegrationTest builds the server the way cmd/server does, with the
// content document served from fs. It returns the test server and a cleanup
// function to be deferred.
func setupIntegrationTest(t *testing.T, fs afero.Fs) (*httptest.Server, func()) {
	t.Helper()

	cfg := testutils.ConfigForTests(t)
	reg := registry.New(cfg)
	metrics := prometheus.NewRegistry()

	s, err := server.New(server.Dependencies{
		Config:  cfg,
		Metrics: metrics,
	})
	require.NoError(t, err)

	modules := app.NewModules(app.Dependencies{
		Config:     cfg,
		Fs:         fs,
		Registerer: metrics,
	})
	require.NoError(t, s.InitModules(context.Background(), modules, reg))
	s.RegisterRoutes()

	testServer := httptest.NewServer(s.E)
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		testServer.Close()
		_ = s.Shutdown(ctx)
	}
	return testServer, cleanup
}

func fetch(t *testing.T, url string) (int, string) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestServer_Integration(t *testing.T) {
	fs := testutils.ContentFs(t, "content/site.yaml", testutils.SiteYAML)
	ts, cleanup := setupIntegrationTest(t, fs)
	defer cleanup()

	t.Run("home renders the hero video with its real type", func(t *testing.T) {
		code, body := fetch(t, ts.URL+"/")
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "<video")
		assert.Contains(t, body, `type="video/webm"`)
		assert.Contains(t, body, `href="/menu"`)
		assert.Contains(t, body, "Real memories were made from real experiences")
	})

	t.Run("menu page renders the unmeasured wide grid", func(t *testing.T) {
		code, body := fetch(t, ts.URL+"/menu")
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, `hx-trigger="load"`)
		assert.Contains(t, body, `data-key="dinner"`)
		assert.Contains(t, body, `data-key="brunch"`)
		assert.NotContains(t, body, `data-key="drinks"`)
		assert.Contains(t, body, "Brunch", "missing titles fall back to the slot name")
	})

	t.Run("narrow measurement swaps the layout", func(t *testing.T) {
		code, body := fetch(t, ts.URL+"/menu/grid?width=600")
		require.Equal(t, http.StatusOK, code)
		assert.NotContains(t, body, "<html")
		assert.NotContains(t, body, `hx-trigger="load"`)
		assert.Contains(t, body, `data-measured="true"`)
		assert.Contains(t, body, `data-key="dinner"`)
		assert.Contains(t, body, `data-key="drinks"`)
		assert.NotContains(t, body, `data-key="brunch"`)
	})

	t.Run("invalid width is rejected", func(t *testing.T) {
		code, _ := fetch(t, ts.URL+"/menu/grid?width=-5")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("health", func(t *testing.T) {
		code, body := fetch(t, ts.URL+"/health")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "OK", body)
	})

	t.Run("static assets are embedded", func(t *testing.T) {
		code, body := fetch(t, ts.URL+"/static/css/app.css")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "@keyframes fade-up")
		assert.Contains(t, body, ".menu-tile:hover .tile-media")
		assert.Contains(t, body, "#hero > .hero-media")
	})

	t.Run("metrics expose content and request counters", func(t *testing.T) {
		code, body := fetch(t, ts.URL+"/metrics")
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "pattivana_cms_fetch_total")
		assert.Contains(t, body, "pattivana_cms_cache_total")
		assert.Contains(t, body, "requests_total")
	})
}

func TestServer_MissingContent(t *testing.T) {
	ts, cleanup := setupIntegrationTest(t, afero.NewMemMapFs())
	defer cleanup()

	code, _ := fetch(t, ts.URL+"/")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	// Without content the menu renders an empty grid.
	code, body := fetch(t, ts.URL+"/menu")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `id="menu-grid"`)
	assert.NotContains(t, body, "data-key=")
}
