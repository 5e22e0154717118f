package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/termyhq/termy/internal/config"
	"github.com/termyhq/termy/internal/theme"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List and switch color themes",
		Long: `List and switch color themes.

Built-in themes ship with termy; drop additional *.toml files into the
themes/ directory next to the config file to add your own.

Examples:
  termy themes list
  termy themes set catppuccin-mocha
  termy themes pick                 # Interactive picker`,
	}

	cmd.AddCommand(
		newThemesListCmd(),
		newThemesSetCmd(),
		newThemesPickCmd(),
	)
	return cmd
}

type themeInfo struct {
	ID      string `json:"id" yaml:"id"`
	Current bool   `json:"current" yaml:"current"`
	Builtin bool   `json:"builtin" yaml:"builtin"`
}

func listThemes() ([]themeInfo, error) {
	result, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	current := theme.EffectiveID(result.Options.Theme)

	registry := themeRegistry()
	builtin := make(map[string]bool, len(theme.BuiltinIDs))
	for _, id := range theme.BuiltinIDs {
		builtin[id] = true
	}

	infos := make([]themeInfo, 0, len(registry.IDs()))
	for _, id := range registry.IDs() {
		infos = append(infos, themeInfo{
			ID:      id,
			Current: id == current,
			Builtin: builtin[id],
		})
	}
	return infos, nil
}

func newThemesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := listThemes()
			if err != nil {
				return err
			}
			registry := themeRegistry()

			return formatter().OutputData(infos, func(w io.Writer) error {
				for _, info := range infos {
					palette, _ := registry.Resolve(info.ID)
					marker := "  "
					name := info.ID
					if info.Current {
						marker = currentStyle.Render("* ")
						name = currentStyle.Render(name)
					}
					suffix := ""
					if !info.Builtin {
						suffix = dimStyle.Render("  (user)")
					}
					fmt.Fprintf(w, "%s%s%s  %s %s\n", marker, name, suffix,
						swatch(palette.Background), swatch(palette.Foreground))
				}
				return nil
			})
		},
	}
}

func newThemesSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <theme-id>",
		Short: "Set the theme in the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTheme(args[0])
		},
	}
}

// setTheme canonicalizes the id, verifies it resolves, and writes it
// into the config file's root section.
func setTheme(id string) error {
	canonical := theme.EffectiveID(id)
	registry := themeRegistry()
	if _, ok := registry.Resolve(canonical); !ok {
		return fmt.Errorf("unknown theme %q (see `termy themes list`)", id)
	}

	path, err := config.EnsureFile()
	if err != nil {
		return err
	}
	if cfgFile != "" {
		path = cfgFile
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	updated := config.UpsertValue(string(contents), "theme", canonical)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return err
	}
	fmt.Printf("theme = %s\n", canonical)
	return nil
}
