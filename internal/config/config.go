// Package config loads the termy configuration file: a line-oriented
// `key = value` format with a repeatable keybind key and an optional
// [colors] section. Parsing never fails; malformed input degrades to
// defaults and is reported through collected diagnostics.
package config

import (
	"runtime"

	"github.com/termyhq/termy/internal/colors"
	"github.com/termyhq/termy/internal/diag"
)

// WorkingDirFallback selects the startup directory when working_dir is
// unset.
type WorkingDirFallback string

const (
	FallbackHome    WorkingDirFallback = "home"
	FallbackProcess WorkingDirFallback = "process"
)

// CursorStyle is the shared cursor shape for the terminal and inline
// inputs.
type CursorStyle string

const (
	CursorLine  CursorStyle = "line"
	CursorBlock CursorStyle = "block"
)

// ScrollbarVisibility controls when the terminal scrollbar is drawn.
type ScrollbarVisibility string

const (
	ScrollbarAlways   ScrollbarVisibility = "always"
	ScrollbarOnScroll ScrollbarVisibility = "on_scroll"
	ScrollbarOff      ScrollbarVisibility = "off"
)

// ScrollbarStyle selects the scrollbar color treatment.
type ScrollbarStyle string

const (
	ScrollbarNeutral    ScrollbarStyle = "neutral"
	ScrollbarMutedTheme ScrollbarStyle = "muted_theme"
	ScrollbarTheme      ScrollbarStyle = "theme"
)

// TitleMode is the tab title preset; it picks the source priority list
// unless tab_title_priority overrides it.
type TitleMode string

const (
	TitleSmart    TitleMode = "smart"
	TitleShell    TitleMode = "shell"
	TitleExplicit TitleMode = "explicit"
	TitleStatic   TitleMode = "static"
)

const (
	// MaxTabsLimit caps max_tabs.
	MaxTabsLimit = 100
	// MaxScrollbackHistory caps scrollback_history and
	// inactive_tab_scrollback.
	MaxScrollbackHistory = 100000
)

// Options is the fully typed option set. Every field always holds a
// usable value; parsing fills gaps from Default().
type Options struct {
	Theme              string             `json:"theme" yaml:"theme"`
	WorkingDir         string             `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`
	WorkingDirFallback WorkingDirFallback `json:"working_dir_fallback" yaml:"working_dir_fallback"`

	UseTabs                      bool `json:"use_tabs" yaml:"use_tabs"`
	MaxTabs                      int  `json:"max_tabs" yaml:"max_tabs"`
	HideTitlebarButtons          bool `json:"hide_titlebar_buttons" yaml:"hide_titlebar_buttons"`
	WarnOnQuitWithRunningProcess bool `json:"warn_on_quit_with_running_process" yaml:"warn_on_quit_with_running_process"`

	Shell     string `json:"shell,omitempty" yaml:"shell,omitempty"`
	Term      string `json:"term" yaml:"term"`
	Colorterm string `json:"colorterm,omitempty" yaml:"colorterm,omitempty"` // empty means unset

	WindowWidth  int `json:"window_width" yaml:"window_width"`
	WindowHeight int `json:"window_height" yaml:"window_height"`

	FontFamily        string      `json:"font_family" yaml:"font_family"`
	FontSize          float64     `json:"font_size" yaml:"font_size"`
	CursorStyle       CursorStyle `json:"cursor_style" yaml:"cursor_style"`
	CursorBlink       bool        `json:"cursor_blink" yaml:"cursor_blink"`
	BackgroundOpacity float64     `json:"background_opacity" yaml:"background_opacity"`
	BackgroundBlur    bool        `json:"background_blur" yaml:"background_blur"`
	PaddingX          int         `json:"padding_x" yaml:"padding_x"`
	PaddingY          int         `json:"padding_y" yaml:"padding_y"`

	MouseScrollMultiplier float64             `json:"mouse_scroll_multiplier" yaml:"mouse_scroll_multiplier"`
	ScrollbarVisibility   ScrollbarVisibility `json:"scrollbar_visibility" yaml:"scrollbar_visibility"`
	ScrollbarStyle        ScrollbarStyle      `json:"scrollbar_style" yaml:"scrollbar_style"`
	ScrollbackHistory     int                 `json:"scrollback_history" yaml:"scrollback_history"`
	InactiveTabScrollback int                 `json:"inactive_tab_scrollback" yaml:"inactive_tab_scrollback"`

	CommandPaletteShowKeybinds bool `json:"command_palette_show_keybinds" yaml:"command_palette_show_keybinds"`

	TabTitleMode             TitleMode `json:"tab_title_mode" yaml:"tab_title_mode"`
	TabTitlePriority         []string  `json:"tab_title_priority,omitempty" yaml:"tab_title_priority,omitempty"`
	TabTitleFallback         string    `json:"tab_title_fallback" yaml:"tab_title_fallback"`
	TabTitleExplicitPrefix   string    `json:"tab_title_explicit_prefix" yaml:"tab_title_explicit_prefix"`
	TabTitleShellIntegration bool      `json:"tab_title_shell_integration" yaml:"tab_title_shell_integration"`
	TabTitlePromptFormat     string    `json:"tab_title_prompt_format" yaml:"tab_title_prompt_format"`
	TabTitleCommandFormat    string    `json:"tab_title_command_format" yaml:"tab_title_command_format"`
}

// KeybindLine is one raw `keybind = ...` value with its 1-based line
// number, in file order.
type KeybindLine struct {
	Number int
	Value  string
}

// Result is everything one parse produces. Options is complete even for
// an empty or broken file.
type Result struct {
	Options      Options
	Colors       []colors.Entry
	KeybindLines []KeybindLine
	Unknown      map[string]string
	Diagnostics  []diag.Diagnostic
}

// Default returns the built-in options for the current platform.
func Default() Options {
	return defaultFor(runtime.GOOS)
}

func defaultFor(goos string) Options {
	fallback := FallbackProcess
	if goos == "darwin" || goos == "windows" {
		fallback = FallbackHome
	}
	return Options{
		Theme:              "termy",
		WorkingDirFallback: fallback,

		UseTabs:                      true,
		MaxTabs:                      10,
		WarnOnQuitWithRunningProcess: true,

		Term:      "xterm-256color",
		Colorterm: "truecolor",

		WindowWidth:  1280,
		WindowHeight: 820,

		FontFamily:        "JetBrains Mono",
		FontSize:          14,
		CursorStyle:       CursorBlock,
		CursorBlink:       true,
		BackgroundOpacity: 1.0,
		PaddingX:          12,
		PaddingY:          8,

		MouseScrollMultiplier: 3,
		ScrollbarVisibility:   ScrollbarOnScroll,
		ScrollbarStyle:        ScrollbarNeutral,
		ScrollbackHistory:     2000,
		InactiveTabScrollback: 500,

		CommandPaletteShowKeybinds: true,

		TabTitleMode:             TitleSmart,
		TabTitleFallback:         "Terminal",
		TabTitleExplicitPrefix:   "termy:tab:",
		TabTitleShellIntegration: true,
		TabTitlePromptFormat:     "{cwd}",
		TabTitleCommandFormat:    "{command}",
	}
}

// TitleSources are the valid tab_title_priority entries.
var TitleSources = []string{"manual", "explicit", "shell", "fallback"}
