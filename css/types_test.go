package css_test

import (
	"strings"
	"testing"

	"grt/css"
)

func TestFromUtilities_Ordering(t *testing.T) {
	sheet := css.FromUtilities(map[string]map[string]string{
		"gap-phi-10": {"gap": "1rem"},
		"gap-phi-2":  {"gap": "1rem"},
		"aspect-phi": {"aspect-ratio": "1.618034 / 1"},
	})

	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(sheet.Rules))
	}

	// natural ordering: numbered suffixes sort numerically
	want := []string{".aspect-phi", ".gap-phi-2", ".gap-phi-10"}
	for i, sel := range want {
		if sheet.Rules[i].Selector != sel {
			t.Errorf("rule %d selector = %q, want %q", i, sheet.Rules[i].Selector, sel)
		}
	}
}

func TestStylesheet_String(t *testing.T) {
	sheet := css.FromUtilities(map[string]map[string]string{
		"text-phi": {
			"line-height": "1.618034",
			"font-size":   "1rem",
		},
	})

	got := sheet.String()
	want := ".text-phi {\n  font-size: 1rem;\n  line-height: 1.618034;\n}\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStylesheet_Deterministic(t *testing.T) {
	in := map[string]map[string]string{
		"p-phi":  {"padding": "1.618034rem"},
		"m-phi":  {"margin": "1.618034rem"},
		"px-phi": {"padding-left": "1.618034rem", "padding-right": "1.618034rem"},
	}

	first := css.FromUtilities(in).String()
	for i := 0; i < 10; i++ {
		if got := css.FromUtilities(in).String(); got != first {
			t.Fatal("serialization is not deterministic")
		}
	}
}

func TestRuleBySelector(t *testing.T) {
	sheet := css.FromUtilities(map[string]map[string]string{
		"leading-phi": {"line-height": "1.618034"},
	})

	rule, ok := sheet.RuleBySelector(".leading-phi")
	if !ok {
		t.Fatal("expected rule for .leading-phi")
	}
	if rule.Properties["line-height"] != "1.618034" {
		t.Errorf("line-height = %q", rule.Properties["line-height"])
	}

	if _, ok := sheet.RuleBySelector(".missing"); ok {
		t.Error("unexpected rule for .missing")
	}
}

func TestStylesheet_BlankLineBetweenRules(t *testing.T) {
	sheet := css.FromUtilities(map[string]map[string]string{
		"a-one": {"gap": "1rem"},
		"b-two": {"gap": "2rem"},
	})

	if got := sheet.String(); !strings.Contains(got, "}\n\n.") {
		t.Errorf("expected blank line between rules, got %q", got)
	}
}
