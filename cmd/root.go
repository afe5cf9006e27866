package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RED1EYE/portfolio/internal/config"
	"github.com/RED1EYE/portfolio/internal/content"
	"github.com/RED1EYE/portfolio/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Single-page animated developer portfolio",
	Long: `Portfolio renders a single-page developer portfolio with scroll-revealed
sections, a responsive navigation drawer and a pointer-following cursor.
It serves the page over HTTP or exports it as a static site.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Log.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		closer, err := logging.Setup(loaded.Log)
		if err != nil {
			return err
		}
		cfg, logCloser = loaded, closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadContent reads the configured content file, or the built-in content
// when none is set.
func loadContent() (*content.Portfolio, error) {
	p, err := content.Load(cfg.Content.File)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return p, nil
}
