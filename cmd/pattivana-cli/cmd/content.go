package cmd

import (
	"fmt"

	"github.com/nfrund/pattivana/internal/cms"
	"github.com/nfrund/pattivana/internal/menu"
	"github.com/spf13/cobra"
)

// contentCmd represents the content command
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Work with the local content document",
}

// contentValidateCmd represents the content validate command
var contentValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate the local content document",
	Long: `Parse the local content document and check every menu slot.

The path defaults to --content, then CONTENT_FALLBACK_PATH, then content/site.yaml.

Examples:
  pattivana-cli content validate
  pattivana-cli content validate ./content/staging.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContentValidate,
}

func runContentValidate(cmd *cobra.Command, args []string) error {
	path := contentPath
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		client, err := newContentClient()
		if err != nil {
			return err
		}
		path = client.FallbackPath()
	}

	site, err := cms.ValidateFile(fs, path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s is valid\n", path)
	fmt.Fprintf(out, "  home media: %s\n", describeMedia(site.Home.URL, site.Home.Mode().String()))
	fmt.Fprintf(out, "  menu slots: %d (wide: %d shown, narrow: %d shown)\n",
		len(site.Menu),
		len(menu.Visible(menu.DeriveEntries(site.Menu, false))),
		len(menu.Visible(menu.DeriveEntries(site.Menu, true))),
	)
	return nil
}

func describeMedia(url, mode string) string {
	if url == "" {
		return "missing"
	}
	return fmt.Sprintf("%s (%s)", url, mode)
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	rootCmd.AddCommand(contentCmd)
}
