package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mgmerino/journal/internal/site"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Generates the static site into the output directory",
	Long: `The publish command loads Markdown posts from './content/posts/',
renders them through the templates in './templates/', and writes the
complete site (post pages, listings, Atom feed, JSON manifest, and
static assets) to the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return site.Publish(appConfig)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
