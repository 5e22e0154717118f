package keybind

import (
	"fmt"
	"strings"
)

// SecondaryModifier is the platform-abstract modifier alias in trigger
// strings. It resolves to cmd on macOS and Windows and ctrl elsewhere,
// once, when bindings are resolved - not at parse time.
const SecondaryModifier = "secondary"

// canonical modifier order in a normalized trigger chord.
var modifierOrder = []string{SecondaryModifier, "ctrl", "alt", "shift", "cmd", "fn"}

var modifierAliases = map[string]string{
	"secondary": SecondaryModifier,
	"ctrl":      "ctrl",
	"control":   "ctrl",
	"alt":       "alt",
	"opt":       "alt",
	"option":    "alt",
	"shift":     "shift",
	"cmd":       "cmd",
	"command":   "cmd",
	"super":     "cmd",
	"win":       "cmd",
	"fn":        "fn",
}

// namedKeys are the accepted multi-character key names. Any single
// character is also a valid key.
var namedKeys = map[string]bool{
	"enter": true, "escape": true, "space": true, "tab": true,
	"backspace": true, "delete": true, "insert": true,
	"up": true, "down": true, "left": true, "right": true,
	"home": true, "end": true, "pageup": true, "pagedown": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
}

// CanonicalizeTrigger normalizes a trigger string: each whitespace
// separated chord is parsed into modifiers plus key, modifier aliases are
// resolved, modifiers are emitted in a fixed order, and the key is
// lowercased. The secondary alias is preserved.
func CanonicalizeTrigger(trigger string) (string, error) {
	fields := strings.Fields(trigger)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty keybind trigger")
	}

	chords := make([]string, 0, len(fields))
	for _, field := range fields {
		chord, err := canonicalizeChord(field)
		if err != nil {
			return "", fmt.Errorf("invalid keybind trigger component %q: %w", field, err)
		}
		chords = append(chords, chord)
	}
	return strings.Join(chords, " "), nil
}

func canonicalizeChord(chord string) (string, error) {
	mods := make(map[string]bool)
	rest := chord

	for {
		idx := strings.Index(rest, "-")
		// A dash at position 0 or at the end means the remainder is the
		// key itself ("-", "cmd--", "cmd-=").
		if idx <= 0 || idx == len(rest)-1 {
			break
		}
		canonical, ok := modifierAliases[strings.ToLower(rest[:idx])]
		if !ok {
			break
		}
		mods[canonical] = true
		rest = rest[idx+1:]
	}

	key := strings.ToLower(rest)
	if key == "" {
		return "", fmt.Errorf("missing key")
	}
	if len([]rune(key)) > 1 && !namedKeys[key] {
		if _, isMod := modifierAliases[key]; isMod {
			return "", fmt.Errorf("modifier %q used as key", key)
		}
		return "", fmt.Errorf("unknown key %q", key)
	}

	var b strings.Builder
	for _, mod := range modifierOrder {
		if mods[mod] {
			b.WriteString(mod)
			b.WriteByte('-')
		}
	}
	b.WriteString(key)
	return b.String(), nil
}

// SecondaryFor returns the concrete modifier the secondary alias means on
// the given GOOS.
func SecondaryFor(goos string) string {
	switch goos {
	case "darwin", "windows":
		return "cmd"
	default:
		return "ctrl"
	}
}

// ResolveSecondary substitutes the secondary alias in an already
// canonical trigger with the platform modifier and re-canonicalizes, so
// e.g. secondary-p and cmd-p collide on macOS.
func ResolveSecondary(trigger, goos string) string {
	if !strings.Contains(trigger, SecondaryModifier+"-") {
		return trigger
	}
	replaced := strings.ReplaceAll(trigger, SecondaryModifier+"-", SecondaryFor(goos)+"-")
	canonical, err := CanonicalizeTrigger(replaced)
	if err != nil {
		return replaced
	}
	return canonical
}
