package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/pattivana/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// SiteYAML is a small but complete content document used across integration tests.
const SiteYAML = `home:
  url: https://videos.ctfassets.net/space/hero.mp4
  content_type: video/webm
menu:
  dinner:
    title: Dinner
    description: Served from six
    link: /menu/dinner
    order: 1
    image:
      url: https://images.ctfassets.net/space/dinner.jpg
      content_type: image/jpeg
  brunch:
    description: Weekends only
    link: /menu/brunch
    visibility: desktop
    order: 2
  drinks:
    title: Drinks
    link: /menu/drinks
    visibility: mobile
    order: 3
`

// ConfigForTests loads the .env.test file and returns a valid config.Provider.
// Variables are applied with t.Setenv so they are restored after the test.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	// Find the project root by looking for go.mod to reliably locate .env.test.
	path, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	return cfg
}

// ContentFs returns an in-memory filesystem holding doc at path.
func ContentFs(t *testing.T, path, doc string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, path, []byte(doc), 0o644))
	return fs
}
