package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
		ok    bool
	}{
		{"#ffffff", RGB{255, 255, 255}, true},
		{"#FFFFFF", RGB{255, 255, 255}, true},
		{"#0b1020", RGB{0x0B, 0x10, 0x20}, true},
		{"  #a7e9a3  ", RGB{0xA7, 0xE9, 0xA3}, true},
		{"ffffff", RGB{}, false},
		{"#fff", RGB{}, false},
		{"#zzzzzz", RGB{}, false},
		{"#fffffg", RGB{}, false},
		{"#12345g", RGB{}, false},
		{"# 12345", RGB{}, false},
		{"#1 2345", RGB{}, false},
		{"#ffffff00", RGB{}, false},
		{"", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseHex(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseHex(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{0x1A, 0x1B, 0x26}
	parsed, ok := ParseHex(c.Hex())
	if !ok {
		t.Fatalf("ParseHex(%q) failed", c.Hex())
	}
	if parsed != c {
		t.Errorf("round trip = %+v, want %+v", parsed, c)
	}
}

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"termy", "termy", true},
		{"default", "termy", true},
		{"Tokyo Night", "tokyo-night", true},
		{"tokyo_night", "tokyo-night", true},
		{"gruvbox", "gruvbox-dark", true},
		{"catppuccin", "catppuccin-mocha", true},
		{"SOLARIZED", "solarized-dark", true},
		{"one", "one-dark", true},
		{"oceanicnext", "oceanic-next", true},
		{"my-custom-theme", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalID(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("CanonicalID(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Tokyo Night", "tokyo-night"},
		{"tokyo__night", "tokyo-night"},
		{"  nord  ", "nord"},
		{"a--b", "a-b"},
		{"trailing-", "trailing"},
		{"-leading", "leading"},
		{"weird!chars", "weirdchars"},
	}

	for _, tt := range tests {
		if got := NormalizeID(tt.input); got != tt.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuiltinsResolve(t *testing.T) {
	for _, id := range BuiltinIDs {
		if _, ok := Resolve(id); !ok {
			t.Errorf("builtin theme %q did not resolve", id)
		}
	}

	if _, ok := Resolve("no-such-theme"); ok {
		t.Error("unknown theme should not resolve")
	}
}

func TestRegistryLaterProviderWins(t *testing.T) {
	r := WithBuiltins()
	override := Colors{Foreground: RGB{1, 2, 3}}
	r.Register(staticProvider{id: "termy", colors: override})

	got, ok := r.Resolve("termy")
	if !ok {
		t.Fatal("termy should resolve")
	}
	if got.Foreground != override.Foreground {
		t.Error("later provider should shadow builtin")
	}
}

type staticProvider struct {
	id     string
	colors Colors
}

func (p staticProvider) Theme(id string) (Colors, bool) {
	if id == p.id {
		return p.colors, true
	}
	return Colors{}, false
}

func (p staticProvider) ThemeIDs() []string { return []string{p.id} }

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	good := `foreground = "#c0caf5"
background = "#1a1b26"
cursor = "#c0caf5"
ansi = [
  "#15161e", "#f7768e", "#9ece6a", "#e0af68",
  "#7aa2f7", "#bb9af7", "#7dcfff", "#a9b1d6",
  "#414868", "#f7768e", "#9ece6a", "#e0af68",
  "#7aa2f7", "#bb9af7", "#7dcfff", "#c0caf5",
]
`
	if err := os.WriteFile(filepath.Join(dir, "My Theme.toml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("ansi = [\"#nope\"]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, skipped, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(skipped) != 1 {
		t.Errorf("expected 1 skipped file, got %d: %v", len(skipped), skipped)
	}

	colors, ok := p.Theme("my-theme")
	if !ok {
		t.Fatal("my-theme should resolve from directory provider")
	}
	if colors.Background != (RGB{0x1A, 0x1B, 0x26}) {
		t.Errorf("unexpected background %+v", colors.Background)
	}

	if _, ok := p.Theme("broken"); ok {
		t.Error("broken theme file should not resolve")
	}
}

func TestLoadDirMissing(t *testing.T) {
	p, skipped, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir should not error, got %v", err)
	}
	if len(skipped) != 0 || len(p.ThemeIDs()) != 0 {
		t.Error("missing dir should yield empty provider")
	}
}
