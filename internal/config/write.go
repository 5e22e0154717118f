package config

import (
	"fmt"
	"strings"
)

// UpsertValue replaces the first uncommented `key = ...` line in the
// root section with `key = value`, or inserts one if the key is absent.
// Comments and unrelated lines are preserved byte for byte.
func UpsertValue(contents, key, value string) string {
	lines := strings.Split(contents, "\n")
	replacement := fmt.Sprintf("%s = %s", key, value)

	colorsAt := -1
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if strings.EqualFold(line, "[colors]") {
			colorsAt = i
			break
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if k, _, ok := splitKeyValue(line); ok && strings.EqualFold(k, key) {
			lines[i] = replacement
			return strings.Join(lines, "\n")
		}
	}

	// Key not present: insert before [colors] if there is one, else
	// append to the end of the file.
	if colorsAt >= 0 {
		inserted := make([]string, 0, len(lines)+1)
		inserted = append(inserted, lines[:colorsAt]...)
		inserted = append(inserted, replacement)
		inserted = append(inserted, lines[colorsAt:]...)
		return strings.Join(inserted, "\n")
	}
	trimmed := strings.TrimRight(contents, "\n")
	if trimmed == "" {
		return replacement + "\n"
	}
	return trimmed + "\n" + replacement + "\n"
}

// ReplaceColorsSection replaces the [colors] section (which runs to end
// of file) with the given entry lines, appending a new section when none
// exists. Empty entries remove the section entirely.
func ReplaceColorsSection(contents string, entries []string) string {
	lines := strings.Split(contents, "\n")
	root := lines
	for i, raw := range lines {
		if strings.EqualFold(strings.TrimSpace(raw), "[colors]") {
			root = lines[:i]
			break
		}
	}

	body := strings.TrimRight(strings.Join(root, "\n"), "\n")
	if len(entries) == 0 {
		if body == "" {
			return ""
		}
		return body + "\n"
	}

	var b strings.Builder
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	b.WriteString("[colors]\n")
	for _, entry := range entries {
		b.WriteString(entry)
		b.WriteString("\n")
	}
	return b.String()
}
