package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RED1EYE/portfolio/internal/motion"
	"github.com/RED1EYE/portfolio/internal/site"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildOut != "" {
			cfg.Site.OutputDir = buildOut
		}
		p, err := loadContent()
		if err != nil {
			return err
		}

		files, err := site.NewExporter(cfg.Site.OutputDir, cfg.Site.BaseURL, p, motion.DefaultCatalog()).Export()
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(files), cfg.Site.OutputDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (overrides site.output_dir)")
	rootCmd.AddCommand(buildCmd)
}
