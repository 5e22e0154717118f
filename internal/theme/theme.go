// Package theme provides the builtin color themes and the registry that
// resolves a theme id to its terminal palette.
package theme

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
)

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a strict #RRGGBB color string. Hex digits are
// case-insensitive; anything else (missing #, short form, alpha) fails.
func ParseHex(value string) (RGB, bool) {
	value = strings.TrimSpace(value)
	if len(value) != 7 || value[0] != '#' {
		return RGB{}, false
	}
	b, err := hex.DecodeString(value[1:])
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, true
}

// Colors is a complete terminal palette: the 16 standard ANSI colors plus
// the default foreground, background, and cursor colors.
type Colors struct {
	ANSI       [16]RGB
	Foreground RGB
	Background RGB
	Cursor     RGB
}

// Provider resolves theme ids to palettes. Providers registered later take
// precedence over earlier ones, so user providers can shadow builtins.
type Provider interface {
	Theme(id string) (Colors, bool)
	ThemeIDs() []string
}

// Registry holds an ordered list of theme providers.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// WithBuiltins returns a registry seeded with the builtin theme provider.
func WithBuiltins() *Registry {
	r := NewRegistry()
	r.Register(builtinProvider{})
	return r
}

// Register appends a provider. Later registrations win on conflicts.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

// Resolve returns the palette for a theme id, trying providers in reverse
// registration order.
func (r *Registry) Resolve(id string) (Colors, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.providers) - 1; i >= 0; i-- {
		if colors, ok := r.providers[i].Theme(id); ok {
			return colors, true
		}
	}
	return Colors{}, false
}

// IDs returns all known theme ids, first occurrence wins.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var ids []string
	for _, p := range r.providers {
		for _, id := range p.ThemeIDs() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry seeded with builtins.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = WithBuiltins()
	})
	return defaultRegistry
}

// Resolve looks up a theme id in the default registry.
func Resolve(id string) (Colors, bool) {
	return Default().Resolve(id)
}

// IDs lists the theme ids known to the default registry.
func IDs() []string {
	return Default().IDs()
}

// CanonicalID maps a theme id or one of its accepted aliases to the
// canonical builtin id. Returns false for ids that are not builtin.
func CanonicalID(id string) (string, bool) {
	normalized := strings.ReplaceAll(NormalizeID(id), "-", "")
	switch normalized {
	case "termy", "default":
		return "termy", true
	case "tokyonight":
		return "tokyo-night", true
	case "catppuccin", "catppuccinmocha":
		return "catppuccin-mocha", true
	case "dracula":
		return "dracula", true
	case "gruvbox", "gruvboxdark":
		return "gruvbox-dark", true
	case "nord":
		return "nord", true
	case "solarized", "solarizeddark":
		return "solarized-dark", true
	case "one", "onedark":
		return "one-dark", true
	case "monokai":
		return "monokai", true
	case "material", "materialdark":
		return "material-dark", true
	case "palenight":
		return "palenight", true
	case "tomorrow", "tomorrownight":
		return "tomorrow-night", true
	case "oceanic", "oceanicnext":
		return "oceanic-next", true
	}
	return "", false
}

// EffectiveID maps a configured theme id to the id it resolves as:
// builtin aliases canonicalize, anything else normalizes (user themes).
func EffectiveID(id string) string {
	if canonical, ok := CanonicalID(id); ok {
		return canonical
	}
	return NormalizeID(id)
}

// NormalizeID lowercases a theme id and collapses runs of dashes,
// underscores, and spaces into single dashes. Other characters are dropped.
func NormalizeID(id string) string {
	var b strings.Builder
	lastDash := false
	for _, ch := range strings.ToLower(strings.TrimSpace(id)) {
		switch {
		case ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			b.WriteRune(ch)
			lastDash = false
		case ch == '-' || ch == '_' || ch == ' ':
			if b.Len() > 0 && !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
