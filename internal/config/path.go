package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// FileName is the config file's name inside the termy config directory.
const FileName = "config.txt"

// Dir returns the per-user termy config directory:
// $XDG_CONFIG_HOME/termy (falling back to ~/.config/termy), or
// %APPDATA%\termy on Windows.
func Dir() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "termy"), nil
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "termy"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(home, ".config", "termy"), nil
}

// Path returns the full config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// EnsureFile creates the config directory and writes the commented
// default config if no file exists yet. It returns the file path.
func EnsureFile() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultFileContents), 0o644); err != nil {
		return "", fmt.Errorf("writing default config: %w", err)
	}
	return path, nil
}

// Load parses the user's config file, creating it with defaults first
// if it does not exist.
func Load() (*Result, string, error) {
	path, err := EnsureFile()
	if err != nil {
		return nil, "", err
	}
	result, err := ParseFile(path)
	if err != nil {
		return nil, "", err
	}
	return result, path, nil
}

// DefaultFileContents is the commented starter config written on first
// run. Every option it mentions parses back to its default.
const DefaultFileContents = `# Main settings
theme = termy
# TERM value for child shells and terminal apps
term = xterm-256color
# Startup directory for new terminal sessions (~ supported)
# working_dir = ~/Documents
# Show tab bar above the terminal grid
# use_tabs = true
# Maximum number of tabs (lower = less memory usage)
# max_tabs = 10
# Hide custom titlebar buttons (settings/update/new-tab)
# hide_titlebar_buttons = false
# Warn before quitting when tabs are busy (running command/fullscreen TUI)
# warn_on_quit_with_running_process = true
# Tab title mode. Supported values: smart, shell, explicit, static
# smart = manual rename > explicit title > shell/app title > fallback
tab_title_mode = smart
# Export TERMY_* env vars for optional shell tab-title integration
tab_title_shell_integration = true
# Optional: static fallback tab title
# tab_title_fallback = Terminal
# Advanced tab-title options:
# tab_title_priority = manual, explicit, shell, fallback
# tab_title_explicit_prefix = termy:tab:
# tab_title_prompt_format = {cwd}
# tab_title_command_format = {command}
# Startup window size in pixels
window_width = 1280
window_height = 820
# Terminal font family
font_family = JetBrains Mono
# Terminal font size in pixels
font_size = 14
# Cursor style shared by terminal and inline inputs (line|block)
# cursor_style = block
# Enable cursor blink for terminal and inline inputs
# cursor_blink = true
# Terminal background opacity (0.0 = fully transparent, 1.0 = opaque)
# background_opacity = 1.0
# Enable/disable platform blur for transparent backgrounds
# background_blur = false
# Inner terminal padding in pixels
padding_x = 12
padding_y = 8
# Mouse wheel scroll speed multiplier
# mouse_scroll_multiplier = 3
# Terminal scrollbar visibility: always | on_scroll | off
# (while scrolled up in history, scrollbar stays visible in all modes)
# scrollbar_visibility = on_scroll
# Scrollbar style: neutral | muted_theme | theme
# scrollbar_style = neutral

# Advanced runtime settings (usually leave these as defaults)
# Preferred shell executable path
# shell = /bin/zsh
# Fallback startup directory when working_dir is unset: home or process
# working_dir_fallback = home
# Advertise 24-bit color support to child apps
# colorterm = truecolor
# Scrollback history lines (lower = less memory, max 100000)
# scrollback_history = 2000
# Scrollback for inactive tabs (saves memory with many tabs)
# inactive_tab_scrollback = 500
# Keybindings (trigger overrides)
# keybind = cmd-p=toggle_command_palette
# keybind = cmd-c=copy
# keybind = cmd-c=unbind
# keybind = clear
# Show/hide shortcut badges in command palette
# command_palette_show_keybinds = true

# Color overrides applied on top of the theme
# [colors]
# foreground = #e7ebf5
# background = #0b1020
`
