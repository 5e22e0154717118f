package cli

import (
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/termyhq/termy/internal/keybind"
	"github.com/termyhq/termy/internal/output"
)

func newKeybindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keybinds",
		Short: "Inspect keyboard shortcut bindings",
	}
	cmd.AddCommand(newKeybindsListCmd())
	return cmd
}

func newKeybindsListCmd() *cobra.Command {
	var defaultsOnly bool
	var platform string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the resolved keybindings",
		Long: `List the keybindings after applying the config file's keybind
directives over the built-in defaults for this platform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			goos := platform
			if goos == "" {
				goos = runtime.GOOS
			}

			var bindings map[string]keybind.Action
			if defaultsOnly {
				bindings = keybind.DefaultBindings(goos)
			} else {
				result, _, err := loadConfig()
				if err != nil {
					return err
				}
				directives, diags := keybind.ParseDirectives(result.KeybindLines)
				bindings = keybind.Resolve(directives, goos)
				for _, d := range diags {
					cmd.PrintErrf("warning: %s\n", d.String())
				}
			}

			type row struct {
				Trigger string `json:"trigger" yaml:"trigger"`
				Action  string `json:"action" yaml:"action"`
			}
			rows := make([]row, 0, len(bindings))
			for _, trigger := range keybind.SortedTriggers(bindings) {
				rows = append(rows, row{Trigger: trigger, Action: string(bindings[trigger])})
			}

			return formatter().OutputData(rows, func(w io.Writer) error {
				table := output.NewTable(w, "TRIGGER", "ACTION")
				for _, r := range rows {
					table.AddRow(r.Trigger, r.Action)
				}
				table.Render()
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&defaultsOnly, "defaults", false, "Show the built-in defaults, ignoring the config file")
	cmd.Flags().StringVar(&platform, "platform", "", "Resolve for another platform (darwin, linux, windows)")
	return cmd
}

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the actions a keybind can invoke",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := keybind.ActionNames()
			return formatter().OutputData(names, func(w io.Writer) error {
				for _, name := range names {
					if _, err := io.WriteString(w, name+"\n"); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
