package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nfrund/pattivana/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docPath = "content/site.yaml"

// execute runs the root command against an in-memory content document.
func execute(t *testing.T, doc string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONTENTFUL_SPACE_ID", "")
	t.Setenv("CONTENT_FALLBACK_PATH", docPath)

	if doc != "" {
		fs = testutils.ContentFs(t, docPath, doc)
	} else {
		fs = afero.NewMemMapFs()
	}
	t.Cleanup(func() { fs = afero.NewOsFs() })

	// Flags bind to package variables, so reset them between runs.
	contentPath, offline = "", false
	menuWidth, menuFormat, menuAll = 0, "table", false
	renderWidth, renderPage = 0, false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pattivana-cli v"+version+"\n", out)
}

func TestMenu_WideAndNarrow(t *testing.T) {
	t.Run("unmeasured derives the wide layout", func(t *testing.T) {
		out, err := execute(t, testutils.SiteYAML, "menu", "--format", "json")
		require.NoError(t, err)

		var entries []struct{ ID string }
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, []string{"dinner", "brunch"}, ids)
	})

	t.Run("narrow width swaps desktop for mobile entries", func(t *testing.T) {
		out, err := execute(t, testutils.SiteYAML, "menu", "--width", "390", "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"id": "drinks"`)
		assert.NotContains(t, out, `"id": "brunch"`)
	})

	t.Run("all includes hidden entries", func(t *testing.T) {
		out, err := execute(t, testutils.SiteYAML, "menu", "--all")
		require.NoError(t, err)
		assert.Contains(t, out, "drinks")
		assert.Contains(t, out, "false")
	})
}

func TestMenu_RejectsBadInput(t *testing.T) {
	_, err := execute(t, testutils.SiteYAML, "menu", "--width", "-1")
	assert.Error(t, err)

	_, err = execute(t, testutils.SiteYAML, "menu", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestRender(t *testing.T) {
	t.Run("hero fragment", func(t *testing.T) {
		out, err := execute(t, testutils.SiteYAML, "render", "hero")
		require.NoError(t, err)
		assert.Contains(t, out, `<section id="hero"`)
		assert.Contains(t, out, `type="video/webm"`)
		assert.NotContains(t, out, "<html")
	})

	t.Run("measured grid has no load trigger", func(t *testing.T) {
		out, err := execute(t, testutils.SiteYAML, "render", "grid", "--width", "600")
		require.NoError(t, err)
		assert.Contains(t, out, `data-measured="true"`)
		assert.NotContains(t, out, `hx-trigger="load"`)
		assert.Contains(t, out, `data-key="drinks"`)
	})

	t.Run("full page", func(t *testing.T) {
		out, err := execute(t, testutils.SiteYAML, "render", "grid", "--page")
		require.NoError(t, err)
		assert.Contains(t, out, "<title>Menu - Pattivana</title>")
		assert.Contains(t, out, `hx-trigger="load"`)
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := execute(t, testutils.SiteYAML, "render", "footer")
		assert.Error(t, err)
	})
}

func TestContentValidate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		out, err := execute(t, testutils.SiteYAML, "content", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "content/site.yaml is valid")
		assert.Contains(t, out, "menu slots: 3 (wide: 2 shown, narrow: 2 shown)")
	})

	t.Run("invalid visibility", func(t *testing.T) {
		_, err := execute(t, "menu:\n  food:\n    link: /food\n    visibility: sometimes\n", "content", "validate")
		assert.Error(t, err)
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := execute(t, "", "content", "validate", "nope.yaml")
		assert.ErrorContains(t, err, "nope.yaml")
	})
}
