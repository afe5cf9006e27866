package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RED1EYE/portfolio/internal/config"
	"github.com/RED1EYE/portfolio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and validate page content",
}

var contentDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective content as YAML",
	Long: `Print the effective content as YAML. With no content file configured this
is the built-in content, a convenient starting point for a custom file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadContent()
		if err != nil {
			return err
		}
		return p.WriteYAML(cmd.OutOrStdout())
	},
}

var contentCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a content file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Content.File
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := content.Load(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "content ok")
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentDumpCmd, contentCheckCmd)
	rootCmd.AddCommand(contentCmd, configInitCmd)
}
