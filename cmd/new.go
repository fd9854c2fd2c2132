package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgmerino/journal/internal/site"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Scaffolds a new journal entry",
	Long: `The new command creates a Markdown stub for today's date under
'./content/posts/', named '<date>-<slug>.md' with the front matter
filled in. It refuses to overwrite an existing post.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		postsDir := filepath.Join(appConfig.ContentDir, "posts")

		path, err := site.Scaffold(postsDir, title, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Created new post: %s\n", filepath.Base(path))
		fmt.Printf("Open it with: $EDITOR %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
