package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// themeFile is the on-disk TOML shape of a user theme.
type themeFile struct {
	Foreground string   `toml:"foreground"`
	Background string   `toml:"background"`
	Cursor     string   `toml:"cursor"`
	ANSI       []string `toml:"ansi"`
}

// DirProvider serves themes loaded from *.toml files in a directory. The
// theme id is the normalized file name without extension. Files that fail
// to parse are skipped; LoadDir reports them without failing the load.
type DirProvider struct {
	themes map[string]Colors
	ids    []string
}

// LoadDir reads every *.toml file in dir into a DirProvider. A missing
// directory yields an empty provider and no error. The returned slice
// holds one message per skipped file.
func LoadDir(dir string) (*DirProvider, []string, error) {
	p := &DirProvider{themes: make(map[string]Colors)}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return p, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading themes directory: %w", err)
	}

	var skipped []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".toml") {
			continue
		}
		id := NormalizeID(strings.TrimSuffix(name, ".toml"))
		if id == "" {
			continue
		}
		colors, err := loadThemeFile(filepath.Join(dir, name))
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		if _, exists := p.themes[id]; !exists {
			p.ids = append(p.ids, id)
		}
		p.themes[id] = colors
	}
	sort.Strings(p.ids)
	return p, skipped, nil
}

func loadThemeFile(path string) (Colors, error) {
	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Colors{}, err
	}

	if len(file.ANSI) != 16 {
		return Colors{}, fmt.Errorf("ansi must list exactly 16 colors, got %d", len(file.ANSI))
	}

	var colors Colors
	for i, value := range file.ANSI {
		c, ok := ParseHex(value)
		if !ok {
			return Colors{}, fmt.Errorf("ansi[%d]: invalid color %q", i, value)
		}
		colors.ANSI[i] = c
	}

	for _, slot := range []struct {
		name  string
		value string
		dst   *RGB
	}{
		{"foreground", file.Foreground, &colors.Foreground},
		{"background", file.Background, &colors.Background},
		{"cursor", file.Cursor, &colors.Cursor},
	} {
		c, ok := ParseHex(slot.value)
		if !ok {
			return Colors{}, fmt.Errorf("%s: invalid color %q", slot.name, slot.value)
		}
		*slot.dst = c
	}

	return colors, nil
}

// Theme implements Provider.
func (p *DirProvider) Theme(id string) (Colors, bool) {
	colors, ok := p.themes[NormalizeID(id)]
	return colors, ok
}

// ThemeIDs implements Provider.
func (p *DirProvider) ThemeIDs() []string {
	return p.ids
}
