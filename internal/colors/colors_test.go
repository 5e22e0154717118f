package colors

import (
	"testing"

	"github.com/termyhq/termy/internal/diag"
	"github.com/termyhq/termy/internal/theme"
)

func TestCanonicalSlot(t *testing.T) {
	tests := []struct {
		key  string
		name string
		ok   bool
	}{
		{"foreground", "foreground", true},
		{"fg", "foreground", true},
		{"BG", "background", true},
		{"cursor", "cursor", true},
		{"color0", "black", true},
		{"color1", "red", true},
		{"color15", "bright_white", true},
		{"bright_black", "bright_black", true},
		{"brightblack", "bright_black", true},
		{" red ", "red", true},
		{"color16", "", false},
		{"border", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			slot, ok := CanonicalSlot(tt.key)
			if ok != tt.ok {
				t.Fatalf("CanonicalSlot(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if ok && slot.Name != tt.name {
				t.Errorf("CanonicalSlot(%q).Name = %q, want %q", tt.key, slot.Name, tt.name)
			}
		})
	}
}

func TestSlotsCoverPalette(t *testing.T) {
	slots := Slots()
	if len(slots) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(slots))
	}
	seen := make(map[string]bool)
	for _, slot := range slots {
		if seen[slot.Name] {
			t.Errorf("duplicate slot %q", slot.Name)
		}
		seen[slot.Name] = true
	}
}

func TestResolveOverride(t *testing.T) {
	base := theme.Termy()
	entries := []Entry{{Line: 3, Key: "foreground", Value: "#FFFFFF"}}

	palette, diags := Resolve(theme.Default(), "termy", entries, nil)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if palette.Foreground != (theme.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("foreground = %+v, want white", palette.Foreground)
	}
	if palette.Background != base.Background {
		t.Error("background should keep the base theme value")
	}
	for i := range palette.ANSI {
		if palette.ANSI[i] != base.ANSI[i] {
			t.Errorf("ansi[%d] should keep the base theme value", i)
		}
	}
}

func TestResolveInvalidValueKeepsBase(t *testing.T) {
	base := theme.Termy()

	// The last two are 7 characters with a '#' but carry a non-hex
	// digit or stray whitespace; they must not parse as a color.
	for _, value := range []string{"zzzzzz", "#fff", "#fffffg", "# 12345"} {
		t.Run(value, func(t *testing.T) {
			entries := []Entry{{Line: 7, Key: "foreground", Value: value}}

			palette, diags := Resolve(theme.Default(), "termy", entries, nil)
			if palette.Foreground != base.Foreground {
				t.Error("invalid override must keep the base foreground")
			}
			if len(diags) != 1 || diags[0].Kind != diag.InvalidColorValue {
				t.Fatalf("expected one InvalidColorValue diagnostic, got %v", diags)
			}
			if diags[0].Line != 7 {
				t.Errorf("diagnostic line = %d, want 7", diags[0].Line)
			}
		})
	}
}

func TestResolveUnknownKey(t *testing.T) {
	entries := []Entry{{Line: 2, Key: "border", Value: "#123456"}}

	_, diags := Resolve(theme.Default(), "termy", entries, nil)
	if len(diags) != 1 || diags[0].Kind != diag.ParseWarning {
		t.Fatalf("expected one ParseWarning diagnostic, got %v", diags)
	}
}

func TestResolveUnknownThemeFallsBack(t *testing.T) {
	palette, diags := Resolve(theme.Default(), "no-such-theme", nil, nil)
	if len(diags) != 1 || diags[0].Kind != diag.UnknownTheme {
		t.Fatalf("expected one UnknownTheme diagnostic, got %v", diags)
	}
	if palette != theme.Termy() {
		t.Error("unknown theme should resolve to the default palette")
	}
}

func TestResolveImportOverrides(t *testing.T) {
	entries := []Entry{{Line: 3, Key: "cursor", Value: "#111111"}}
	imported := map[string]string{
		"cursor":       "#222222",
		"$schema":      "https://example.com/scheme.json",
		"bright_green": "#00ff00",
	}

	palette, diags := Resolve(theme.Default(), "termy", entries, imported)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if palette.Cursor != (theme.RGB{R: 0x22, G: 0x22, B: 0x22}) {
		t.Error("import should apply over [colors] entries")
	}
	if palette.ANSI[10] != (theme.RGB{R: 0, G: 0xFF, B: 0}) {
		t.Error("bright_green import not applied")
	}
}

func TestParseImport(t *testing.T) {
	data := []byte(`{
		"$schema": "https://example.com/scheme.json",
		"fg": "#E7EBF5",
		"color9": "#ff6e6e",
		"unknown_slot": "#123456"
	}`)

	imported, err := ParseImport(data)
	if err != nil {
		t.Fatalf("ParseImport: %v", err)
	}
	if imported["foreground"] != "#E7EBF5" {
		t.Errorf("fg alias not canonicalized: %v", imported)
	}
	if imported["bright_red"] != "#ff6e6e" {
		t.Errorf("color9 alias not canonicalized: %v", imported)
	}
	if _, ok := imported["unknown_slot"]; ok {
		t.Error("unknown keys should be dropped")
	}
}

func TestParseImportErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"not an object", `["#ffffff"]`},
		{"non-string value", `{"foreground": 42}`},
		{"invalid hex", `{"foreground": "zzzzzz"}`},
		{"nothing valid", `{"$schema": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseImport([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigLines(t *testing.T) {
	imported := map[string]string{
		"bright_white": "#ffffff",
		"foreground":   "#e7ebf5",
		"red":          "#f1b8c5",
	}

	lines := ConfigLines(imported)
	want := []string{
		"foreground = #e7ebf5",
		"red = #f1b8c5",
		"bright_white = #ffffff",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
