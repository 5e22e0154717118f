package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/termyhq/termy/internal/diag"
)

func TestParseEmptyIsDefault(t *testing.T) {
	result := Parse("")
	if !reflect.DeepEqual(result.Options, Default()) {
		t.Errorf("empty parse = %+v, want defaults", result.Options)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", result.Diagnostics)
	}
}

func TestParseOptions(t *testing.T) {
	result := Parse(strings.Join([]string{
		"# comment",
		"theme = dracula",
		"  use_tabs = false",
		"MAX_TABS = 7",
		"font_family = \"Fira Code\"",
		"font_size = 16.5",
		"cursor_style = beam",
		"tab_title_fallback = 'My Terminal'",
		"tab_title_priority = shell, manual",
		"colorterm = none",
		"scrollback = 5000",
	}, "\n"))

	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	opts := result.Options
	if opts.Theme != "dracula" {
		t.Errorf("theme = %q", opts.Theme)
	}
	if opts.UseTabs {
		t.Error("use_tabs should be false")
	}
	if opts.MaxTabs != 7 {
		t.Errorf("max_tabs = %d, keys should be case-insensitive", opts.MaxTabs)
	}
	if opts.FontFamily != "Fira Code" {
		t.Errorf("font_family = %q, quotes should be stripped", opts.FontFamily)
	}
	if opts.FontSize != 16.5 {
		t.Errorf("font_size = %v", opts.FontSize)
	}
	if opts.CursorStyle != CursorLine {
		t.Errorf("cursor_style = %q, beam is a line alias", opts.CursorStyle)
	}
	if opts.TabTitleFallback != "My Terminal" {
		t.Errorf("tab_title_fallback = %q", opts.TabTitleFallback)
	}
	if !reflect.DeepEqual(opts.TabTitlePriority, []string{"shell", "manual"}) {
		t.Errorf("tab_title_priority = %v", opts.TabTitlePriority)
	}
	if opts.Colorterm != "" {
		t.Errorf("colorterm = %q, none should unset it", opts.Colorterm)
	}
	if opts.ScrollbackHistory != 5000 {
		t.Errorf("scrollback alias not applied: %d", opts.ScrollbackHistory)
	}
}

func TestParseLastWins(t *testing.T) {
	result := Parse("theme = nord\ntheme = dracula\n")
	if result.Options.Theme != "dracula" {
		t.Errorf("theme = %q, want last occurrence", result.Options.Theme)
	}
}

func TestParseStrictBooleans(t *testing.T) {
	for _, value := range []string{"True", "FALSE", "yes", "1", ""} {
		result := Parse("use_tabs = " + value)
		if result.Options.UseTabs != Default().UseTabs {
			t.Errorf("use_tabs = %q should keep the default", value)
		}
		if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != diag.ParseWarning {
			t.Errorf("use_tabs = %q: expected one ParseWarning, got %v", value, result.Diagnostics)
		}
	}
}

func TestParseClamps(t *testing.T) {
	tests := []struct {
		line string
		get  func(Options) float64
		want float64
	}{
		{"max_tabs = 0", func(o Options) float64 { return float64(o.MaxTabs) }, 1},
		{"max_tabs = 500", func(o Options) float64 { return float64(o.MaxTabs) }, 100},
		{"mouse_scroll_multiplier = 0.001", func(o Options) float64 { return o.MouseScrollMultiplier }, 0.1},
		{"mouse_scroll_multiplier = 9999999", func(o Options) float64 { return o.MouseScrollMultiplier }, 1000},
		{"background_opacity = 1.5", func(o Options) float64 { return o.BackgroundOpacity }, 1},
		{"scrollback_history = 200000", func(o Options) float64 { return float64(o.ScrollbackHistory) }, 100000},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			result := Parse(tt.line)
			if len(result.Diagnostics) != 0 {
				t.Fatalf("clamping should be silent, got %v", result.Diagnostics)
			}
			if got := tt.get(result.Options); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMalformedNumberKeepsDefault(t *testing.T) {
	result := Parse("font_size = big")
	if result.Options.FontSize != Default().FontSize {
		t.Errorf("font_size = %v, want default", result.Options.FontSize)
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Line != 1 {
		t.Fatalf("expected one line-1 warning, got %v", result.Diagnostics)
	}
}

func TestParseUnknownKeyRetained(t *testing.T) {
	result := Parse("future_option = 42\nfuture_option = 43\n")
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unknown keys are not warnings: %v", result.Diagnostics)
	}
	if result.Unknown["future_option"] != "43" {
		t.Errorf("Unknown = %v, want last value retained", result.Unknown)
	}
}

func TestParseKeybindLines(t *testing.T) {
	result := Parse(strings.Join([]string{
		"theme = termy",
		"keybind = clear",
		"",
		"keybind = cmd-p=toggle_command_palette",
	}, "\n"))

	want := []KeybindLine{
		{Number: 2, Value: "clear"},
		{Number: 4, Value: "cmd-p=toggle_command_palette"},
	}
	if !reflect.DeepEqual(result.KeybindLines, want) {
		t.Errorf("keybind lines = %v, want %v", result.KeybindLines, want)
	}
}

func TestParseColorsSectionRunsToEOF(t *testing.T) {
	result := Parse(strings.Join([]string{
		"theme = termy",
		"[colors]",
		"foreground = #ffffff",
		"# a comment inside colors",
		"theme = dracula",
	}, "\n"))

	if result.Options.Theme != "termy" {
		t.Errorf("theme = %q: keys after [colors] are color entries, not options", result.Options.Theme)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("colors = %v, want 2 raw entries", result.Colors)
	}
	if result.Colors[0].Key != "foreground" || result.Colors[0].Line != 3 {
		t.Errorf("first entry = %+v", result.Colors[0])
	}
	if result.Colors[1].Key != "theme" {
		t.Errorf("second entry = %+v", result.Colors[1])
	}
}

func TestParseExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/termy-test")
	result := Parse("working_dir = ~/projects")
	want := filepath.Join("/home/termy-test", "projects")
	if result.Options.WorkingDir != want {
		t.Errorf("working_dir = %q, want %q", result.Options.WorkingDir, want)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	opts := Default()
	opts.Theme = "nord"
	opts.MaxTabs = 42
	opts.TabTitlePriority = []string{"manual", "fallback"}
	opts.Colorterm = ""

	result := Parse(opts.Render())
	if len(result.Diagnostics) != 0 {
		t.Fatalf("canonical form should parse cleanly: %v", result.Diagnostics)
	}
	if !reflect.DeepEqual(result.Options, opts) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", result.Options, opts)
	}
}

func TestDefaultFileContentsParsesToDefaults(t *testing.T) {
	result := Parse(DefaultFileContents)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("default config should be clean: %v", result.Diagnostics)
	}
	if !reflect.DeepEqual(result.Options, Default()) {
		t.Errorf("default file parses to %+v, want Default()", result.Options)
	}
}

func TestUpsertValue(t *testing.T) {
	contents := "# header\ntheme = nord\n\n[colors]\nforeground = #ffffff\n"

	updated := UpsertValue(contents, "theme", "dracula")
	if !strings.Contains(updated, "theme = dracula") || strings.Contains(updated, "theme = nord") {
		t.Errorf("replace failed:\n%s", updated)
	}

	updated = UpsertValue(contents, "font_size", "18")
	colorsAt := strings.Index(updated, "[colors]")
	insertAt := strings.Index(updated, "font_size = 18")
	if insertAt < 0 || colorsAt < 0 || insertAt > colorsAt {
		t.Errorf("insert should land before [colors]:\n%s", updated)
	}

	if got := UpsertValue("", "theme", "nord"); got != "theme = nord\n" {
		t.Errorf("upsert into empty file = %q", got)
	}
}

func TestUpsertValueIgnoresCommentedKey(t *testing.T) {
	updated := UpsertValue("# theme = nord\n", "theme", "dracula")
	if !strings.Contains(updated, "# theme = nord") || !strings.Contains(updated, "theme = dracula") {
		t.Errorf("commented line must stay untouched:\n%s", updated)
	}
}

func TestReplaceColorsSection(t *testing.T) {
	contents := "theme = nord\n\n[colors]\nforeground = #000000\n"

	updated := ReplaceColorsSection(contents, []string{"foreground = #ffffff", "cursor = #ff0000"})
	if strings.Contains(updated, "#000000") {
		t.Errorf("old section should be gone:\n%s", updated)
	}
	result := Parse(updated)
	if len(result.Colors) != 2 {
		t.Errorf("colors = %v", result.Colors)
	}
	if result.Options.Theme != "nord" {
		t.Error("root section must survive")
	}

	if got := ReplaceColorsSection(contents, nil); strings.Contains(got, "[colors]") {
		t.Errorf("empty entries should drop the section:\n%s", got)
	}
}

func TestDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-test", "termy") {
		t.Errorf("dir = %q", dir)
	}
}

func TestEnsureFileCreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := EnsureFile()
	if err != nil {
		t.Fatal(err)
	}
	result, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result.Options, Default()) {
		t.Error("created file should parse to defaults")
	}

	// Second call must not rewrite an existing file.
	if _, err := EnsureFile(); err != nil {
		t.Fatal(err)
	}
}
