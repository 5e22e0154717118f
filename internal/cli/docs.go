package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConfigDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the configuration reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			width := 80
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
				width = w
			}

			if !stdoutIsTTY() {
				fmt.Println(wordwrap.String(configDocs, width))
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				fmt.Println(wordwrap.String(configDocs, width))
				return nil
			}
			rendered, err := renderer.Render(configDocs)
			if err != nil {
				fmt.Println(wordwrap.String(configDocs, width))
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}
}

const configDocs = `# termy configuration

The config file lives at ` + "`termy config path`" + ` and uses a simple
` + "`key = value`" + ` format. Lines starting with ` + "`#`" + ` are comments.

## General

| Key | Default | Description |
|-----|---------|-------------|
| theme | termy | Color theme id (see ` + "`termy themes list`" + `) |
| working_dir | _unset_ | Startup directory, ` + "`~`" + ` supported |
| working_dir_fallback | platform | ` + "`home`" + ` or ` + "`process`" + ` when working_dir is unset |
| shell | _unset_ | Preferred shell executable |
| term | xterm-256color | TERM exported to child shells |
| colorterm | truecolor | COLORTERM value; ` + "`none`" + ` disables |

## Window & rendering

| Key | Default | Description |
|-----|---------|-------------|
| window_width / window_height | 1280 / 820 | Startup window size in pixels |
| font_family | JetBrains Mono | Terminal font |
| font_size | 14 | Font size in pixels, must be positive |
| cursor_style | block | ` + "`line`" + ` or ` + "`block`" + ` |
| cursor_blink | true | Cursor blink |
| background_opacity | 1.0 | 0.0 (transparent) to 1.0 (opaque) |
| background_blur | false | Platform blur for transparent backgrounds |
| padding_x / padding_y | 12 / 8 | Inner padding in pixels |

## Tabs & scrolling

| Key | Default | Description |
|-----|---------|-------------|
| use_tabs | true | Show the tab bar |
| max_tabs | 10 | 1 to 100 |
| scrollback_history | 2000 | Lines kept, capped at 100000 |
| inactive_tab_scrollback | 500 | Scrollback for background tabs |
| mouse_scroll_multiplier | 3 | Clamped to 0.1 to 1000 |
| scrollbar_visibility | on_scroll | ` + "`always`" + `, ` + "`on_scroll`" + `, or ` + "`off`" + ` |
| scrollbar_style | neutral | ` + "`neutral`" + `, ` + "`muted_theme`" + `, or ` + "`theme`" + ` |

## Tab titles

| Key | Default | Description |
|-----|---------|-------------|
| tab_title_mode | smart | ` + "`smart`" + `, ` + "`shell`" + `, ` + "`explicit`" + `, or ` + "`static`" + ` |
| tab_title_priority | _from mode_ | Comma list of manual, explicit, shell, fallback |
| tab_title_fallback | Terminal | Title when no source has a value |
| tab_title_explicit_prefix | termy:tab: | OSC title prefix for shell integration |
| tab_title_shell_integration | true | Export TERMY_* variables to shells |
| tab_title_prompt_format | {cwd} | Template for prompt titles |
| tab_title_command_format | {command} | Template for command titles; {cwd} also works |

## Keybinds

` + "`keybind`" + ` is repeatable and applies in file order over the built-in
defaults:

    keybind = clear
    keybind = cmd-p=toggle_command_palette
    keybind = cmd-c=unbind

Triggers combine modifiers (` + "`ctrl`" + `, ` + "`alt`" + `, ` + "`shift`" + `,
` + "`cmd`" + `, ` + "`fn`" + `, and the platform alias ` + "`secondary`" + `)
with a key. ` + "`termy actions list`" + ` prints the available actions.

## Colors

A ` + "`[colors]`" + ` section overrides individual theme slots until the end
of the file:

    [colors]
    foreground = #e7ebf5
    bright_red = #ff6e6e

Slots: foreground (fg), background (bg), cursor, and the 16 ANSI colors
by name (black .. bright_white) or index (color0 .. color15).
`
