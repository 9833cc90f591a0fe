package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aueskinj/Resume/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from the repository snapshot",
	Long: `The build command reads the repository metadata snapshot and the
optional feed dump, normalizes every record, and renders the home,
project, tag, post, and pinned pages into the output directory,
replacing whatever was there before. Static assets are copied in
alongside the rendered pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := site.Build(appConfig)
		if err != nil {
			return err
		}
		fmt.Printf("Built %d posts into %s\n", count, appConfig.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
