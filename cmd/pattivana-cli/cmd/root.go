package cmd

import (
	"os"

	"github.com/nfrund/pattivana/internal/cms"
	"github.com/nfrund/pattivana/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// contentPath overrides CONTENT_FALLBACK_PATH when set.
	contentPath string
	// offline skips Contentful and reads only the local document.
	offline bool

	// fs is swapped for an in-memory filesystem in tests.
	fs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "pattivana-cli",
	Short: "Pattivana site tooling",
	Long: `pattivana-cli inspects the site content and renders the page sections
without starting the server.

Available commands:
  menu              Print the menu entries derived for a viewport width
  render            Render the hero or the menu grid as HTML
  content validate  Check the local content document
  version           Print the version

Use "pattivana-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentPath, "content", "c", "", "Path of the local content document (default from CONTENT_FALLBACK_PATH)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Read only the local content document")
}

// newContentClient builds a CMS client from the environment and the global flags.
func newContentClient() (*cms.Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	opts := cms.Options{
		SpaceID:      cfg.GetContentfulSpaceID(),
		AccessToken:  cfg.GetContentfulAccessToken(),
		Environment:  cfg.GetContentfulEnvironment(),
		GraphQLURL:   cfg.GetContentfulGraphQLURL(),
		Preview:      cfg.GetContentfulPreview(),
		Fs:           fs,
		FallbackPath: cfg.GetContentFallbackPath(),
		CacheTTL:     cfg.GetContentCacheTTL(),
	}
	if contentPath != "" {
		opts.FallbackPath = contentPath
	}
	if offline {
		opts.SpaceID = ""
	}
	return cms.NewClient(opts), nil
}
