package output

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value string
		want  Format
		ok    bool
	}{
		{"", FormatText, true},
		{"text", FormatText, true},
		{"json", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"yaml", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"xml", FormatText, false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.value)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.value, got, ok)
		}
	}
}

func TestFormatterOutputData(t *testing.T) {
	data := map[string]string{"theme": "nord"}

	var buf bytes.Buffer
	f := New(WithFormat(FormatJSON), WithWriter(&buf))
	if err := f.OutputData(data, nil); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["theme"] != "nord" {
		t.Errorf("decoded = %v", decoded)
	}

	buf.Reset()
	f = New(WithFormat(FormatYAML), WithWriter(&buf))
	if err := f.OutputData(data, nil); err != nil {
		t.Fatal(err)
	}
	decoded = nil
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded["theme"] != "nord" {
		t.Errorf("decoded = %v", decoded)
	}

	buf.Reset()
	f = New(WithWriter(&buf))
	err := f.OutputData(data, func(w io.Writer) error {
		_, werr := io.WriteString(w, "theme: nord\n")
		return werr
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "theme: nord\n" {
		t.Errorf("text mode should call textFn, got %q", buf.String())
	}
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, "TRIGGER", "ACTION")
	table.AddRow("cmd-p", "toggle_command_palette")
	table.AddRow("cmd-q", "quit")
	table.Render()

	out := buf.String()
	if !strings.Contains(out, "TRIGGER") || !strings.Contains(out, "cmd-p") {
		t.Errorf("table output missing content:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("table should have header, separator, and 2 rows, got %d lines", len(lines))
	}
}
