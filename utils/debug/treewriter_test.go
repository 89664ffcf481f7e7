package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "theme",
			args:   nil,
			want:   "theme\n",
		},
		{
			name:   "depth 1",
			depth:  1,
			format: "spacing",
			args:   nil,
			want:   "  spacing\n",
		},
		{
			name:   "with formatting",
			depth:  2,
			format: "tier %d of %d",
			args:   []any{1, 4},
			want:   "    tier 1 of 4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{
			name:  "empty value",
			depth: 0,
			label: "prefix",
			value: "",
			want:  "prefix: \n",
		},
		{
			name:  "simple value",
			depth: 1,
			label: "phi",
			value: "1.618034rem",
			want:  "  phi: \"1.618034rem\"\n",
		},
		{
			name:  "value with quotes",
			depth: 0,
			label: "selector",
			value: `a[title="phi"]`,
			want:  "selector: \"a[title=\\\"phi\\\"]\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Map(t *testing.T) {
	tw := NewTreeWriter()
	tw.Map(0, "rotate", map[string]string{
		"phi-major": "222.4922deg",
		"phi":       "137.5078deg",
	})

	want := "rotate\n  phi: \"137.5078deg\"\n  phi-major: \"222.4922deg\"\n"
	if got := tw.String(); got != want {
		t.Errorf("Map() = %q, want %q", got, want)
	}
}

func TestTreeWriter_MapEmpty(t *testing.T) {
	tw := NewTreeWriter()
	tw.Map(0, "width", nil)
	if got := tw.String(); got != "" {
		t.Errorf("Map() with empty input = %q, want empty", got)
	}
}

func TestTreeWriter_MultipleOperations(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "theme")
	tw.Map(1, "spacing", map[string]string{"phi": "1.618034rem"})
	tw.TextBlock(1, "prefix", "my-theme")

	got := tw.String()
	want := "theme\n  spacing\n    phi: \"1.618034rem\"\n  prefix: \"my-theme\"\n"
	if got != want {
		t.Errorf("Multiple operations:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "simple text",
			input: "61.8034%",
			want:  `"61.8034%"`,
		},
		{
			name:  "with newline",
			input: "line1\nline2",
			want:  `"line1\nline2"`,
		},
		{
			name:  "with backslash",
			input: `a\b`,
			want:  `"a\\b"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeText(tt.input); got != tt.want {
				t.Errorf("encodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Indentation(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "root")
	tw.Line(1, "child")
	tw.Line(2, "grandchild")

	for _, line := range []string{"root\n", "  child\n", "    grandchild\n"} {
		if !strings.Contains(tw.String(), line) {
			t.Errorf("missing line %q in output %q", line, tw.String())
		}
	}
}
