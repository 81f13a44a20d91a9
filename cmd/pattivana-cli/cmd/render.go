package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/pattivana/internal/domain"
	"github.com/nfrund/pattivana/internal/menu"
	"github.com/nfrund/pattivana/internal/rendering"
	"github.com/nfrund/pattivana/internal/view"
	"github.com/nfrund/pattivana/web/src/templates/components"
	"github.com/nfrund/pattivana/web/src/templates/layouts"
	"github.com/nfrund/pattivana/web/src/templates/pages"
	"github.com/spf13/cobra"
	cmp "maragu.dev/gomponents"
)

var (
	renderWidth int
	renderPage  bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <hero|grid>",
	Short: "Render the hero or the menu grid as HTML",
	Long: `Render a page section to stdout using the current content.

Examples:
  pattivana-cli render hero                 # The landing hero fragment
  pattivana-cli render grid --width 600     # The measured grid for a narrow viewport
  pattivana-cli render hero --page          # The full landing page document`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"hero", "grid"},
	RunE:      runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWidth < 0 {
		return fmt.Errorf("width must not be negative, got %d", renderWidth)
	}
	client, err := newContentClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var (
		section cmp.Node
		body    cmp.Node
		title   string
	)
	switch args[0] {
	case "hero":
		media, err := client.HomeMedia(ctx)
		if err != nil {
			return err
		}
		section = components.HeroDisplay(media)
		body = pages.Home(media)
	case "grid":
		images, err := client.MenuImages(ctx)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		props := components.MenuGridProps{
			Entries:  menu.DeriveEntries(images, menu.IsNarrow(renderWidth)),
			Measured: renderWidth > 0,
		}
		section = components.MenuGrid(props)
		body = pages.Menu(props)
		title = "Menu"
	}

	var out any = section
	if renderPage {
		out = layouts.Base(title, view.AdaptGomponentToTempl(body))
	}

	html, err := rendering.NewUniversalRenderer().RenderComponent(ctx, out)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(html)
	return err
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Viewport width used to derive the grid (0 = unmeasured)")
	renderCmd.Flags().BoolVarP(&renderPage, "page", "p", false, "Wrap the section in the full page document")
}
