package css_test

import (
	"testing"

	"go.uber.org/zap"

	"grt/css"
)

func TestParser_RoundTrip(t *testing.T) {
	utilities := map[string]map[string]string{
		"aspect-phi":    {"aspect-ratio": "1.618034 / 1"},
		"grid-cols-phi": {"grid-template-columns": "minmax(0, 61.8034%) minmax(0, 38.1966%)"},
		"px-phi":        {"padding-left": "1.618034rem", "padding-right": "1.618034rem"},
		"gap-x-phi-sm":  {"column-gap": "1rem"},
		"leading-phi":   {"line-height": "1.618034"},
	}

	text := css.FromUtilities(utilities).String()
	sheet := css.NewParser(zap.NewNop()).Parse([]byte(text))

	if len(sheet.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", sheet.Warnings)
	}
	if len(sheet.Rules) != len(utilities) {
		t.Fatalf("parsed %d rules, want %d", len(sheet.Rules), len(utilities))
	}

	for name, decls := range utilities {
		rule, ok := sheet.RuleBySelector("." + name)
		if !ok {
			t.Errorf("missing rule for %q", name)
			continue
		}
		if len(rule.Properties) != len(decls) {
			t.Errorf("%q: parsed %d properties, want %d", name, len(rule.Properties), len(decls))
		}
		for prop, want := range decls {
			if got := rule.Properties[prop]; got != want {
				t.Errorf("%q %s = %q, want %q", name, prop, got, want)
			}
		}
	}
}

func TestParser_NilLogger(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`.p-phi { padding: 1.618034rem; }`))
	if len(sheet.Rules) != 1 {
		t.Fatalf("parsed %d rules, want 1", len(sheet.Rules))
	}
}

func TestParser_SkipsAtRules(t *testing.T) {
	input := []byte(`@media (min-width: 640px) {
  .hidden { display: none; }
}

.p-phi {
  padding: 1.618034rem;
}
`)

	sheet := css.NewParser(zap.NewNop()).Parse(input)

	if len(sheet.Warnings) == 0 {
		t.Error("expected a warning for the skipped at-rule")
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("parsed %d rules, want 1", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector != ".p-phi" {
		t.Errorf("selector = %q, want .p-phi", sheet.Rules[0].Selector)
	}
}

func TestParser_Empty(t *testing.T) {
	sheet := css.NewParser(zap.NewNop()).Parse(nil)
	if len(sheet.Rules) != 0 {
		t.Errorf("parsed %d rules from empty input", len(sheet.Rules))
	}
}
