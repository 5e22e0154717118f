package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/termyhq/termy/internal/colors"
	"github.com/termyhq/termy/internal/config"
	"github.com/termyhq/termy/internal/diag"
	"github.com/termyhq/termy/internal/keybind"
	"github.com/termyhq/termy/internal/theme"
	"github.com/termyhq/termy/internal/watcher"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the termy config file",
		Long: `Inspect and manage the termy config file.

Examples:
  termy config path                 # Print the config file location
  termy config show                 # Show the resolved options
  termy config validate             # Report config diagnostics
  termy config prettify --write     # Rewrite the file in canonical form
  termy config watch                # Reload and report on every change`,
	}

	cmd.AddCommand(
		newConfigPathCmd(),
		newConfigShowCmd(),
		newConfigValidateCmd(),
		newConfigInitCmd(),
		newConfigEditCmd(),
		newConfigPrettifyCmd(),
		newConfigDocsCmd(),
		newConfigWatchCmd(),
	)
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			return formatter().OutputData(map[string]string{"path": path}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, path)
				return err
			})
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, path, err := loadConfig()
			if err != nil {
				return err
			}

			data := struct {
				Path        string            `json:"path" yaml:"path"`
				Options     config.Options    `json:"options" yaml:"options"`
				Unknown     map[string]string `json:"unknown,omitempty" yaml:"unknown,omitempty"`
				Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
			}{path, result.Options, result.Unknown, result.Diagnostics}

			return formatter().OutputData(data, func(w io.Writer) error {
				fmt.Fprintln(w, headerStyle.Render("Config:"), path)
				fmt.Fprintln(w)
				fmt.Fprint(w, result.Options.Render())
				if len(result.Unknown) > 0 {
					fmt.Fprintln(w)
					fmt.Fprintln(w, dimStyle.Render("Unrecognized keys (kept for forward compatibility):"))
					for key, value := range result.Unknown {
						fmt.Fprintf(w, "  %s = %s\n", key, value)
					}
				}
				printDiagnostics(w, result.Diagnostics)
				return nil
			})
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse the config file and report diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, path, err := loadConfig()
			if err != nil {
				return err
			}
			diags := collectAllDiagnostics(result)

			data := struct {
				Path        string            `json:"path" yaml:"path"`
				Valid       bool              `json:"valid" yaml:"valid"`
				Diagnostics []diag.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
			}{path, len(diags) == 0, diags}

			return formatter().OutputData(data, func(w io.Writer) error {
				if len(diags) == 0 {
					fmt.Fprintf(w, "%s: no problems found\n", path)
					return nil
				}
				fmt.Fprintf(w, "%s: %d problem(s)\n", path, len(diags))
				printDiagnostics(w, diags)
				return nil
			})
		},
	}
}

// collectAllDiagnostics runs the full resolution pipeline so validate
// reports keybind and color problems too, not just parse warnings.
func collectAllDiagnostics(result *config.Result) []diag.Diagnostic {
	diags := append([]diag.Diagnostic(nil), result.Diagnostics...)

	_, keybindDiags := keybind.ParseDirectives(result.KeybindLines)
	diags = append(diags, keybindDiags...)

	_, colorDiags := colors.Resolve(themeRegistry(), result.Options.Theme, result.Colors, nil)
	diags = append(diags, colorDiags...)
	return diags
}

func printDiagnostics(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "  %s %s\n", warnStyle.Render(string(d.Kind)+":"), d.String())
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the default config file if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.EnsureFile()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func newConfigEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.EnsureFile()
			if err != nil {
				return err
			}

			editor := os.Getenv("VISUAL")
			if editor == "" {
				editor = os.Getenv("EDITOR")
			}
			if editor == "" {
				if runtime.GOOS == "windows" {
					editor = "notepad"
				} else {
					editor = "vi"
				}
			}

			edit := exec.Command(editor, path)
			edit.Stdin = os.Stdin
			edit.Stdout = os.Stdout
			edit.Stderr = os.Stderr
			return edit.Run()
		},
	}
}

func newConfigPrettifyCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "prettify",
		Short: "Rewrite the config in canonical form",
		Long: `Rewrite the config in canonical form: options in a fixed order,
keybind directives normalized, and the [colors] section restricted to
valid entries. Without --write, a diff against the current file is
printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			current, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			pretty := prettify(config.Parse(string(current)))

			if write {
				if err := os.WriteFile(path, []byte(pretty), 0o644); err != nil {
					return err
				}
				fmt.Println(path)
				return nil
			}

			if string(current) == pretty {
				fmt.Println("already canonical")
				return nil
			}
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(current), pretty, false)
			if stdoutIsTTY() {
				fmt.Print(dmp.DiffPrettyText(diffs))
			} else {
				fmt.Print(pretty)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the canonical form back to the file")
	return cmd
}

// prettify renders a parsed config canonically. Malformed lines are
// dropped, matching the semantics the application applies anyway.
func prettify(result *config.Result) string {
	var b strings.Builder
	b.WriteString(result.Options.Render())

	unknown := make([]string, 0, len(result.Unknown))
	for key := range result.Unknown {
		unknown = append(unknown, key)
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		fmt.Fprintf(&b, "%s = %s\n", key, result.Unknown[key])
	}

	directives, _ := keybind.ParseDirectives(result.KeybindLines)
	for _, d := range directives {
		switch d.Kind {
		case keybind.DirectiveClear:
			b.WriteString("keybind = clear\n")
		case keybind.DirectiveBind:
			fmt.Fprintf(&b, "keybind = %s=%s\n", d.Trigger, d.Action)
		case keybind.DirectiveUnbind:
			fmt.Fprintf(&b, "keybind = %s=unbind\n", d.Trigger)
		}
	}

	var entries []string
	for _, entry := range result.Colors {
		slot, ok := colors.CanonicalSlot(entry.Key)
		if !ok {
			continue
		}
		if _, valid := theme.ParseHex(entry.Value); !valid {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s = %s", slot.Name, strings.ToLower(entry.Value)))
	}
	if len(entries) > 0 {
		b.WriteString("\n[colors]\n")
		for _, entry := range entries {
			b.WriteString(entry + "\n")
		}
	}
	return b.String()
}

func newConfigWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the config file and report every reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.EnsureFile()
			if err != nil {
				return err
			}

			logger := log.New(os.Stderr)
			logger.SetLevel(log.InfoLevel)

			w, err := watcher.Watch(path, func(result *config.Result) {
				logger.Info("config reloaded",
					"theme", result.Options.Theme,
					"keybinds", len(result.KeybindLines),
					"diagnostics", len(result.Diagnostics))
				for _, d := range result.Diagnostics {
					logger.Warn(d.String(), "kind", d.Kind)
				}
			}, watcher.WithLogger(logger))
			if err != nil {
				return err
			}
			defer w.Close()

			logger.Info("watching", "path", path)
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}
}
