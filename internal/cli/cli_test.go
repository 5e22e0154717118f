package cli

import (
	"strings"
	"testing"

	"github.com/termyhq/termy/internal/config"
)

func TestPrettifyNormalizesDirectives(t *testing.T) {
	result := config.Parse(strings.Join([]string{
		"theme = Gruvbox",
		"keybind = Command-P=toggle_command_palette",
		"keybind = cmd-x=not_an_action",
		"[colors]",
		"fg = #FFFFFF",
		"border = #123456",
		"background = zzz",
	}, "\n"))

	pretty := prettify(result)

	if !strings.Contains(pretty, "keybind = cmd-p=toggle_command_palette") {
		t.Errorf("trigger not canonicalized:\n%s", pretty)
	}
	if strings.Contains(pretty, "not_an_action") {
		t.Errorf("invalid directive should be dropped:\n%s", pretty)
	}
	if !strings.Contains(pretty, "foreground = #ffffff") {
		t.Errorf("color key not canonicalized:\n%s", pretty)
	}
	if strings.Contains(pretty, "border") || strings.Contains(pretty, "zzz") {
		t.Errorf("invalid color entries should be dropped:\n%s", pretty)
	}

	// The canonical form is a fixed point.
	if again := prettify(config.Parse(pretty)); again != pretty {
		t.Errorf("prettify is not idempotent:\n--- first\n%s\n--- second\n%s", pretty, again)
	}
}

func TestPrettifyKeepsUnknownKeys(t *testing.T) {
	pretty := prettify(config.Parse("future_option = 42\n"))
	if !strings.Contains(pretty, "future_option = 42") {
		t.Errorf("unknown keys must survive prettify:\n%s", pretty)
	}
}

func TestShellQuote(t *testing.T) {
	if got := shellQuote("termy:tab:"); got != "'termy:tab:'" {
		t.Errorf("shellQuote = %q", got)
	}
	if got := shellQuote("it's"); got != `'it'\''s'` {
		t.Errorf("shellQuote = %q", got)
	}
}
