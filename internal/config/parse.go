package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/termyhq/termy/internal/colors"
	"github.com/termyhq/termy/internal/diag"
)

// Parse turns config file text into a Result. It never returns an
// error: a malformed line keeps the default for its option and adds a
// diagnostic, and the zero-input result is exactly Default().
func Parse(contents string) *Result {
	p := &parser{result: &Result{
		Options: Default(),
		Unknown: make(map[string]string),
	}}

	inColors := false
	for i, raw := range strings.Split(contents, "\n") {
		number := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !inColors && strings.EqualFold(line, "[colors]") {
			inColors = true
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			p.warnf(number, "expected `key = value`, got %q", line)
			continue
		}

		if inColors {
			p.result.Colors = append(p.result.Colors, colors.Entry{Line: number, Key: key, Value: value})
			continue
		}
		p.apply(number, key, value)
	}

	return p.result
}

// ParseFile reads and parses one config file. A missing file is not an
// error; it parses as the empty file.
func ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Parse(""), nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}

type parser struct {
	result *Result
}

func (p *parser) warnf(line int, format string, args ...any) {
	p.result.Diagnostics = append(p.result.Diagnostics, diag.Newf(diag.ParseWarning, line, format, args...))
}

func (p *parser) apply(line int, key, value string) {
	opts := &p.result.Options
	switch strings.ToLower(key) {
	case "keybind":
		p.result.KeybindLines = append(p.result.KeybindLines, KeybindLine{Number: line, Value: value})
	case "theme":
		if value != "" {
			opts.Theme = value
		}
	case "working_dir":
		opts.WorkingDir = ExpandHome(value)
	case "working_dir_fallback":
		p.setEnum(line, key, value, []string{string(FallbackHome), string(FallbackProcess)}, func(v string) {
			opts.WorkingDirFallback = WorkingDirFallback(v)
		})
	case "use_tabs":
		p.setBool(line, key, value, &opts.UseTabs)
	case "max_tabs":
		p.setInt(line, key, value, 1, MaxTabsLimit, &opts.MaxTabs)
	case "hide_titlebar_buttons":
		p.setBool(line, key, value, &opts.HideTitlebarButtons)
	case "warn_on_quit_with_running_process":
		p.setBool(line, key, value, &opts.WarnOnQuitWithRunningProcess)
	case "shell":
		opts.Shell = ExpandHome(value)
	case "term":
		if value != "" {
			opts.Term = value
		}
	case "colorterm":
		opts.Colorterm = optionalString(value)
	case "window_width":
		p.setInt(line, key, value, 1, 0, &opts.WindowWidth)
	case "window_height":
		p.setInt(line, key, value, 1, 0, &opts.WindowHeight)
	case "font_family":
		if value != "" {
			opts.FontFamily = value
		}
	case "font_size":
		p.setFloat(line, key, value, func(v float64) bool { return v > 0 }, func(v float64) float64 { return v }, &opts.FontSize)
	case "cursor_style":
		switch strings.ToLower(value) {
		case "line", "bar", "beam", "ibeam":
			opts.CursorStyle = CursorLine
		case "block", "box":
			opts.CursorStyle = CursorBlock
		default:
			p.warnf(line, "invalid %s %q: expected line or block", key, value)
		}
	case "cursor_blink":
		p.setBool(line, key, value, &opts.CursorBlink)
	case "background_opacity":
		p.setFloat(line, key, value, nil, clamp(0, 1), &opts.BackgroundOpacity)
	case "background_blur":
		p.setBool(line, key, value, &opts.BackgroundBlur)
	case "padding_x":
		p.setInt(line, key, value, 0, 0, &opts.PaddingX)
	case "padding_y":
		p.setInt(line, key, value, 0, 0, &opts.PaddingY)
	case "mouse_scroll_multiplier":
		p.setFloat(line, key, value, nil, clamp(0.1, 1000), &opts.MouseScrollMultiplier)
	case "scrollbar_visibility":
		p.setEnum(line, key, value,
			[]string{string(ScrollbarAlways), string(ScrollbarOnScroll), string(ScrollbarOff)},
			func(v string) { opts.ScrollbarVisibility = ScrollbarVisibility(v) })
	case "scrollbar_style":
		p.setEnum(line, key, value,
			[]string{string(ScrollbarNeutral), string(ScrollbarMutedTheme), string(ScrollbarTheme)},
			func(v string) { opts.ScrollbarStyle = ScrollbarStyle(v) })
	case "scrollback_history", "scrollback":
		p.setInt(line, "scrollback_history", value, 0, MaxScrollbackHistory, &opts.ScrollbackHistory)
	case "inactive_tab_scrollback":
		p.setInt(line, key, value, 0, MaxScrollbackHistory, &opts.InactiveTabScrollback)
	case "command_palette_show_keybinds":
		p.setBool(line, key, value, &opts.CommandPaletteShowKeybinds)
	case "tab_title_mode":
		p.setEnum(line, key, value,
			[]string{string(TitleSmart), string(TitleShell), string(TitleExplicit), string(TitleStatic)},
			func(v string) { opts.TabTitleMode = TitleMode(v) })
	case "tab_title_priority":
		opts.TabTitlePriority = p.parsePriority(line, value)
	case "tab_title_fallback":
		if value != "" {
			opts.TabTitleFallback = value
		}
	case "tab_title_explicit_prefix":
		if value != "" {
			opts.TabTitleExplicitPrefix = value
		}
	case "tab_title_shell_integration":
		p.setBool(line, key, value, &opts.TabTitleShellIntegration)
	case "tab_title_prompt_format":
		if value != "" {
			opts.TabTitlePromptFormat = value
		}
	case "tab_title_command_format":
		if value != "" {
			opts.TabTitleCommandFormat = value
		}
	default:
		// Unknown keys are kept for forward compatibility, last wins.
		p.result.Unknown[strings.ToLower(key)] = value
	}
}

func (p *parser) setBool(line int, key, value string, dst *bool) {
	switch value {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		p.warnf(line, "invalid %s %q: expected true or false", key, value)
	}
}

// setInt parses and clamps. max 0 means unbounded above.
func (p *parser) setInt(line int, key, value string, min, max int, dst *int) {
	n, err := strconv.Atoi(value)
	if err != nil {
		p.warnf(line, "invalid %s %q: expected an integer", key, value)
		return
	}
	if n < min {
		n = min
	}
	if max > 0 && n > max {
		n = max
	}
	*dst = n
}

func (p *parser) setFloat(line int, key, value string, valid func(float64) bool, adjust func(float64) float64, dst *float64) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		p.warnf(line, "invalid %s %q: expected a number", key, value)
		return
	}
	if valid != nil && !valid(f) {
		p.warnf(line, "invalid %s %q: must be positive", key, value)
		return
	}
	*dst = adjust(f)
}

func (p *parser) setEnum(line int, key, value string, allowed []string, set func(string)) {
	lower := strings.ToLower(value)
	for _, candidate := range allowed {
		if lower == candidate {
			set(candidate)
			return
		}
	}
	p.warnf(line, "invalid %s %q: expected one of %s", key, value, strings.Join(allowed, ", "))
}

func (p *parser) parsePriority(line int, value string) []string {
	var priority []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !validTitleSource(name) {
			p.warnf(line, "unknown tab_title_priority source %q: expected one of %s",
				name, strings.Join(TitleSources, ", "))
			continue
		}
		if !seen[name] {
			seen[name] = true
			priority = append(priority, name)
		}
	}
	return priority
}

func validTitleSource(name string) bool {
	for _, source := range TitleSources {
		if name == source {
			return true
		}
	}
	return false
}

func clamp(lo, hi float64) func(float64) float64 {
	return func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
}

func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = stripQuotes(strings.TrimSpace(line[idx+1:]))
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

func stripQuotes(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// optionalString treats the usual "turn this off" spellings as unset.
func optionalString(value string) string {
	switch strings.ToLower(value) {
	case "", "none", "unset", "default", "auto":
		return ""
	}
	return value
}

// ExpandHome resolves a leading ~ to the user's home directory. Any
// other value passes through unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
