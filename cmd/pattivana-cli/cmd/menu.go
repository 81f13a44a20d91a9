package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/pattivana/cmd/pattivana-cli/internal/output"
	"github.com/nfrund/pattivana/internal/domain"
	"github.com/nfrund/pattivana/internal/menu"
	"github.com/spf13/cobra"
)

var (
	menuWidth  int
	menuFormat string
	menuAll    bool
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the menu entries derived for a viewport width",
	Long: `Derive the menu entries the grid would render for a viewport width.

A width of 0 means "not measured yet" and derives the wide layout, which is
what the first page load shows.

Examples:
  pattivana-cli menu                   # Entries of the first render
  pattivana-cli menu --width 390       # Entries on a phone
  pattivana-cli menu --all             # Include hidden entries
  pattivana-cli menu --format json     # Machine-readable output`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	if menuWidth < 0 {
		return fmt.Errorf("width must not be negative, got %d", menuWidth)
	}
	client, err := newContentClient()
	if err != nil {
		return err
	}
	images, err := client.MenuImages(cmd.Context())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	entries := menu.DeriveEntries(images, menu.IsNarrow(menuWidth))
	if !menuAll {
		entries = menu.Visible(entries)
	}

	switch menuFormat {
	case "json":
		return output.EntriesJSON(cmd.OutOrStdout(), entries)
	case "table":
		return output.EntriesTable(cmd.OutOrStdout(), entries)
	default:
		return fmt.Errorf("unsupported output format %q, use table or json", menuFormat)
	}
}

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().IntVarP(&menuWidth, "width", "w", 0, "Viewport width in CSS pixels (0 = unmeasured)")
	menuCmd.Flags().StringVarP(&menuFormat, "format", "f", "table", "Output format (table, json)")
	menuCmd.Flags().BoolVarP(&menuAll, "all", "a", false, "Include entries that are not shown")
}
