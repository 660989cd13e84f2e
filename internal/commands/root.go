package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subscope-dev/subscope/internal/buildinfo"
	"github.com/subscope-dev/subscope/internal/config"
	"github.com/subscope-dev/subscope/internal/llm"
	"github.com/subscope-dev/subscope/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var cfgPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "subscope",
		Short:   "Find and rank recurring charges in bank transactions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDetectCommand(&cfgPath, &verbose))
	rootCmd.AddCommand(newCorrectCommand(&cfgPath, &verbose))
	rootCmd.AddCommand(newOverrideCommand(&cfgPath, &verbose))
	rootCmd.AddCommand(newAuditCommand(&cfgPath))

	return rootCmd
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist yet.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == config.DefaultFile {
		return config.Default(), nil
	}
	return nil, err
}

// openStore opens the bolt database under the configured data dir.
func openStore(cfg *config.Config) (*store.BoltStore, error) {
	return store.OpenBolt(filepath.Join(cfg.Data.Dir, "subscope.db"))
}

// newClassifier builds the Anthropic classifier, or nil when no API key is
// configured. Everything downstream treats nil as degraded mode.
func newClassifier(cfg *config.Config) llm.Classifier {
	key := cfg.APIKey()
	if key == "" {
		return nil
	}
	c, err := llm.NewAnthropic(key, cfg.Anthropic.Model, cfg.Anthropic.Timeout())
	if err != nil {
		return nil
	}
	return c
}
