package gen

import (
	"encoding/json"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"

	"grt/common"
	"grt/css"
	"grt/phi"
	"grt/tokens"
)

func TestCollect(t *testing.T) {
	utilities, theme, err := Collect(16, "")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(utilities) == 0 {
		t.Error("Collect() returned empty utility batch")
	}
	if len(theme.Spacing) == 0 {
		t.Error("Collect() returned empty theme")
	}
}

func TestCollect_InvalidBase(t *testing.T) {
	if _, _, err := Collect(0, ""); err == nil {
		t.Fatal("Collect(0) did not fail")
	}
}

func TestRender_Css(t *testing.T) {
	utilities, theme, err := Collect(16, "")
	if err != nil {
		t.Fatal(err)
	}

	data, err := Render(common.OutputFmtCss, utilities, theme)
	if err != nil {
		t.Fatalf("Render(css) error = %v", err)
	}

	out := string(data)
	if !strings.Contains(out, ".text-phi {") {
		t.Error("css output missing .text-phi rule")
	}
	if !strings.Contains(out, "grid-template-columns: minmax(0, 61.8034%) minmax(0, 38.1966%);") {
		t.Error("css output missing golden grid template")
	}
}

func TestRender_Json(t *testing.T) {
	utilities, theme, err := Collect(16, "")
	if err != nil {
		t.Fatal(err)
	}

	data, err := Render(common.OutputFmtJson, utilities, theme)
	if err != nil {
		t.Fatalf("Render(json) error = %v", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("json output does not parse: %v", err)
	}
	if doc.Theme.Spacing["phi"] != theme.Spacing["phi"] {
		t.Error("theme did not survive json round trip")
	}
	if len(doc.Utilities) != len(utilities) {
		t.Errorf("utilities did not survive json round trip: %d vs %d", len(doc.Utilities), len(utilities))
	}
}

func TestRender_Yaml(t *testing.T) {
	utilities, theme, err := Collect(16, "")
	if err != nil {
		t.Fatal(err)
	}

	data, err := Render(common.OutputFmtYaml, utilities, theme)
	if err != nil {
		t.Fatalf("Render(yaml) error = %v", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if doc.Theme.LineHeight["phi"] != "1.618034" {
		t.Errorf("lineHeight phi = %q after yaml round trip", doc.Theme.LineHeight["phi"])
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	utilities, _, err := Collect(16, "")
	if err != nil {
		t.Fatal(err)
	}

	text := css.FromUtilities(utilityMaps(utilities)).String()
	parsed := css.NewParser(nil).Parse([]byte(text))

	if err := verify(utilities, parsed); err != nil {
		t.Errorf("generated output failed verification: %v", err)
	}
}

func TestVerify_DetectsMismatch(t *testing.T) {
	utilities := tokens.Utilities{
		"p-phi": {"padding": phi.FormatRem(phi.Phi)},
	}

	parsed := &css.Stylesheet{Rules: []css.Rule{
		{Selector: ".p-phi", Properties: map[string]string{"padding": "2rem"}},
	}}

	if err := verify(utilities, parsed); err == nil {
		t.Error("verify() missed a changed property value")
	}

	if err := verify(utilities, &css.Stylesheet{}); err == nil {
		t.Error("verify() missed a missing rule")
	}
}
