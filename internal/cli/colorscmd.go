package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/termyhq/termy/internal/colors"
	"github.com/termyhq/termy/internal/config"
)

func newColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Inspect and import terminal colors",
		Long: `Inspect the resolved color palette and import JSON color schemes.

An imported scheme is a JSON object mapping slot names to #RRGGBB
values; keys starting with $ are ignored. The import replaces the
[colors] section of the config file.`,
	}
	cmd.AddCommand(
		newColorsShowCmd(),
		newColorsImportCmd(),
	)
	return cmd
}

func newColorsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := loadConfig()
			if err != nil {
				return err
			}

			palette, diags := colors.Resolve(themeRegistry(), result.Options.Theme, result.Colors, nil)

			data := struct {
				Theme  string            `json:"theme" yaml:"theme"`
				Colors map[string]string `json:"colors" yaml:"colors"`
			}{Theme: result.Options.Theme, Colors: make(map[string]string)}
			for _, slot := range colors.Slots() {
				data.Colors[slot.Name] = slot.Get(palette).Hex()
			}

			return formatter().OutputData(data, func(w io.Writer) error {
				fmt.Fprintln(w, headerStyle.Render("Theme:"), result.Options.Theme)
				for _, slot := range colors.Slots() {
					fmt.Fprintf(w, "  %-14s %s\n", slot.Name, swatch(slot.Get(palette)))
				}
				printDiagnostics(w, diags)
				return nil
			})
		},
	}
}

func newColorsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <scheme.json>",
		Short: "Import a JSON color scheme into the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			imported, err := colors.ParseImport(data)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
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
			updated := config.ReplaceColorsSection(string(contents), colors.ConfigLines(imported))
			if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
				return err
			}

			fmt.Printf("imported %d colors into %s\n", len(imported), path)
			return nil
		},
	}
}
