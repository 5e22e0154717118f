// Package colors merges a base theme palette with user overrides from the
// config [colors] section and imported JSON color schemes. The result is
// always a total palette: every slot has a value.
package colors

import (
	"sort"
	"strings"

	"github.com/termyhq/termy/internal/diag"
	"github.com/termyhq/termy/internal/theme"
)

const (
	kindANSI = iota
	kindForeground
	kindBackground
	kindCursor
)

// Slot identifies one of the 18 palette slots.
type Slot struct {
	// Name is the canonical config key for the slot (e.g. "bright_red").
	Name string

	kind int
	ansi int
}

// Get reads the slot's value from a palette.
func (s Slot) Get(p theme.Colors) theme.RGB {
	switch s.kind {
	case kindForeground:
		return p.Foreground
	case kindBackground:
		return p.Background
	case kindCursor:
		return p.Cursor
	default:
		return p.ANSI[s.ansi]
	}
}

func (s Slot) set(p *theme.Colors, c theme.RGB) {
	switch s.kind {
	case kindForeground:
		p.Foreground = c
	case kindBackground:
		p.Background = c
	case kindCursor:
		p.Cursor = c
	default:
		p.ANSI[s.ansi] = c
	}
}

var ansiNames = [16]string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// Slots returns every palette slot in display order: foreground,
// background, cursor, then the 16 ANSI colors.
func Slots() []Slot {
	slots := []Slot{
		{Name: "foreground", kind: kindForeground},
		{Name: "background", kind: kindBackground},
		{Name: "cursor", kind: kindCursor},
	}
	for i, name := range ansiNames {
		slots = append(slots, Slot{Name: name, kind: kindANSI, ansi: i})
	}
	return slots
}

// CanonicalSlot resolves a config or import key to its palette slot.
// Accepted aliases: fg/bg, colorN for the ANSI slots, and the bright
// names with or without the underscore.
func CanonicalSlot(key string) (Slot, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "foreground", "fg":
		return Slot{Name: "foreground", kind: kindForeground}, true
	case "background", "bg":
		return Slot{Name: "background", kind: kindBackground}, true
	case "cursor":
		return Slot{Name: "cursor", kind: kindCursor}, true
	case "black", "color0":
		return ansiSlot(0), true
	case "red", "color1":
		return ansiSlot(1), true
	case "green", "color2":
		return ansiSlot(2), true
	case "yellow", "color3":
		return ansiSlot(3), true
	case "blue", "color4":
		return ansiSlot(4), true
	case "magenta", "color5":
		return ansiSlot(5), true
	case "cyan", "color6":
		return ansiSlot(6), true
	case "white", "color7":
		return ansiSlot(7), true
	case "bright_black", "brightblack", "color8":
		return ansiSlot(8), true
	case "bright_red", "brightred", "color9":
		return ansiSlot(9), true
	case "bright_green", "brightgreen", "color10":
		return ansiSlot(10), true
	case "bright_yellow", "brightyellow", "color11":
		return ansiSlot(11), true
	case "bright_blue", "brightblue", "color12":
		return ansiSlot(12), true
	case "bright_magenta", "brightmagenta", "color13":
		return ansiSlot(13), true
	case "bright_cyan", "brightcyan", "color14":
		return ansiSlot(14), true
	case "bright_white", "brightwhite", "color15":
		return ansiSlot(15), true
	}
	return Slot{}, false
}

func ansiSlot(i int) Slot {
	return Slot{Name: ansiNames[i], kind: kindANSI, ansi: i}
}

// Entry is one raw key/value pair from the config [colors] section,
// carrying its 1-based config line for diagnostics.
type Entry struct {
	Line  int
	Key   string
	Value string
}

// Resolve builds the final palette: the named theme's full palette with
// [colors] entries applied over it, then imported entries over that.
// Malformed keys and values are skipped with a diagnostic and never leave
// a slot without a value.
func Resolve(reg *theme.Registry, themeID string, entries []Entry, imported map[string]string) (theme.Colors, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	palette, ok := reg.Resolve(themeID)
	if !ok {
		diags = append(diags, diag.Newf(diag.UnknownTheme, 0,
			"unknown theme %q, using %q", themeID, theme.DefaultID))
		palette, ok = reg.Resolve(theme.DefaultID)
		if !ok {
			palette = theme.Termy()
		}
	}

	for _, entry := range entries {
		slot, ok := CanonicalSlot(entry.Key)
		if !ok {
			diags = append(diags, diag.Newf(diag.ParseWarning, entry.Line,
				"unknown color key %q", entry.Key))
			continue
		}
		c, ok := theme.ParseHex(entry.Value)
		if !ok {
			diags = append(diags, diag.Newf(diag.InvalidColorValue, entry.Line,
				"invalid color value %q for %s, keeping theme value", entry.Value, slot.Name))
			continue
		}
		slot.set(&palette, c)
	}

	for _, key := range sortedKeys(imported) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		slot, ok := CanonicalSlot(key)
		if !ok {
			diags = append(diags, diag.Newf(diag.ParseWarning, 0,
				"unknown imported color key %q", key))
			continue
		}
		c, ok := theme.ParseHex(imported[key])
		if !ok {
			diags = append(diags, diag.Newf(diag.InvalidColorValue, 0,
				"invalid imported color value %q for %s", imported[key], slot.Name))
			continue
		}
		slot.set(&palette, c)
	}

	return palette, diags
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
