package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Render serializes options in the canonical config format. Parsing the
// result yields the same options back. Keybind directives and [colors]
// entries live outside Options and are not rendered here.
func (o Options) Render() string {
	var b strings.Builder
	line := func(key, value string) {
		fmt.Fprintf(&b, "%s = %s\n", key, value)
	}

	line("theme", o.Theme)
	if o.WorkingDir != "" {
		line("working_dir", o.WorkingDir)
	}
	line("working_dir_fallback", string(o.WorkingDirFallback))
	line("use_tabs", strconv.FormatBool(o.UseTabs))
	line("max_tabs", strconv.Itoa(o.MaxTabs))
	line("hide_titlebar_buttons", strconv.FormatBool(o.HideTitlebarButtons))
	line("warn_on_quit_with_running_process", strconv.FormatBool(o.WarnOnQuitWithRunningProcess))
	if o.Shell != "" {
		line("shell", o.Shell)
	}
	line("term", o.Term)
	if o.Colorterm != "" {
		line("colorterm", o.Colorterm)
	} else {
		line("colorterm", "none")
	}
	line("window_width", strconv.Itoa(o.WindowWidth))
	line("window_height", strconv.Itoa(o.WindowHeight))
	line("font_family", o.FontFamily)
	line("font_size", formatFloat(o.FontSize))
	line("cursor_style", string(o.CursorStyle))
	line("cursor_blink", strconv.FormatBool(o.CursorBlink))
	line("background_opacity", formatFloat(o.BackgroundOpacity))
	line("background_blur", strconv.FormatBool(o.BackgroundBlur))
	line("padding_x", strconv.Itoa(o.PaddingX))
	line("padding_y", strconv.Itoa(o.PaddingY))
	line("mouse_scroll_multiplier", formatFloat(o.MouseScrollMultiplier))
	line("scrollbar_visibility", string(o.ScrollbarVisibility))
	line("scrollbar_style", string(o.ScrollbarStyle))
	line("scrollback_history", strconv.Itoa(o.ScrollbackHistory))
	line("inactive_tab_scrollback", strconv.Itoa(o.InactiveTabScrollback))
	line("command_palette_show_keybinds", strconv.FormatBool(o.CommandPaletteShowKeybinds))
	line("tab_title_mode", string(o.TabTitleMode))
	if len(o.TabTitlePriority) > 0 {
		line("tab_title_priority", strings.Join(o.TabTitlePriority, ", "))
	}
	line("tab_title_fallback", o.TabTitleFallback)
	line("tab_title_explicit_prefix", o.TabTitleExplicitPrefix)
	line("tab_title_shell_integration", strconv.FormatBool(o.TabTitleShellIntegration))
	line("tab_title_prompt_format", o.TabTitlePromptFormat)
	line("tab_title_command_format", o.TabTitleCommandFormat)

	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
