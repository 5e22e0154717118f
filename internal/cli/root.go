// Package cli implements the termy command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/termyhq/termy/internal/config"
	"github.com/termyhq/termy/internal/output"
	"github.com/termyhq/termy/internal/theme"
)

var (
	cfgFile    string
	formatFlag string

	// Build information - set via ldflags.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "termy",
	Short: "termy - terminal configuration engine",
	Long: `termy manages the terminal's runtime configuration: the config
file, themes and color overrides, keybindings, and tab titles.

Quick Start:
  termy config init                 # Create the default config file
  termy config show                 # Show the resolved configuration
  termy themes list                 # List available themes
  termy themes set dracula          # Switch theme
  termy keybinds list               # Show the resolved keybindings
  termy colors import scheme.json   # Import a JSON color scheme`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: the per-user termy config)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: text, json, or yaml")

	rootCmd.AddCommand(
		newConfigCmd(),
		newThemesCmd(),
		newKeybindsCmd(),
		newActionsCmd(),
		newColorsCmd(),
		newEnvCmd(),
		newUpdateCmd(),
		newVersionCmd(),
	)
}

// formatter builds the output formatter from the --format flag and
// environment.
func formatter() *output.Formatter {
	return output.New(output.WithFormat(output.DetectFormat(formatFlag)))
}

// configPath resolves the config file path, honoring --config.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.Path()
}

// loadConfig parses the config file without creating it.
func loadConfig() (*config.Result, string, error) {
	path, err := configPath()
	if err != nil {
		return nil, "", err
	}
	result, err := config.ParseFile(path)
	if err != nil {
		return nil, "", err
	}
	return result, path, nil
}

// themeRegistry returns the builtin themes plus any user themes from
// <config dir>/themes/*.toml. Loader warnings are printed to stderr;
// a broken theme file never blocks the command.
func themeRegistry() *theme.Registry {
	registry := theme.Default()
	dir, err := config.Dir()
	if err != nil {
		return registry
	}
	provider, skipped, err := theme.LoadDir(filepath.Join(dir, "themes"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading user themes: %v\n", err)
		return registry
	}
	for _, msg := range skipped {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	if len(provider.ThemeIDs()) > 0 {
		registry.Register(provider)
	}
	return registry
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatter().OutputData(
				map[string]string{"version": Version, "commit": Commit, "date": Date},
				func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "termy %s (%s, built %s)\n", Version, Commit, Date)
					return err
				})
		},
	}
}
