package colors

import (
	"encoding/json"
	"fmt"

	"github.com/termyhq/termy/internal/theme"
)

// ParseImport decodes a JSON color scheme: an object mapping slot names to
// #RRGGBB strings. Keys beginning with $ (schema references) are dropped,
// unknown keys are skipped, and any non-string or malformed color value is
// an error so a broken import never half-applies.
func ParseImport(data []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	imported := make(map[string]string)
	for key, value := range raw {
		if len(key) > 0 && key[0] == '$' {
			continue
		}

		var hex string
		if err := json.Unmarshal(value, &hex); err != nil {
			return nil, fmt.Errorf("color %q must be a hex string", key)
		}

		slot, ok := CanonicalSlot(key)
		if !ok {
			continue
		}
		if _, ok := theme.ParseHex(hex); !ok {
			return nil, fmt.Errorf("invalid hex color for %q: %s", key, hex)
		}
		imported[slot.Name] = hex
	}

	if len(imported) == 0 {
		return nil, fmt.Errorf("no valid colors found in JSON")
	}
	return imported, nil
}

// ConfigLines renders an imported color map as [colors] section lines in
// slot display order, ready for write-back into the config file.
func ConfigLines(imported map[string]string) []string {
	var lines []string
	for _, slot := range Slots() {
		if hex, ok := imported[slot.Name]; ok {
			lines = append(lines, fmt.Sprintf("%s = %s", slot.Name, hex))
		}
	}
	return lines
}
