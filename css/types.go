// Package css holds a minimal stylesheet model for utility-class output: a
// flat list of class rules with string property values. It can serialize the
// model deterministically and parse serialized output back for verification.
package css

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Rule represents a single class rule: selector plus property declarations.
type Rule struct {
	Selector   string            // full selector, e.g. ".gap-x-phi"
	Properties map[string]string // property name -> value string
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string // anything the parser skipped or did not understand
}

// FromUtilities builds a stylesheet with one class rule per utility. Rules
// are ordered naturally by class name (so "grid-cols-phi-hybrid-3" sorts
// before "grid-cols-phi-hybrid-10") to keep output deterministic.
func FromUtilities(utilities map[string]map[string]string) *Stylesheet {
	names := make([]string, 0, len(utilities))
	for name := range utilities {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	sheet := &Stylesheet{Rules: make([]Rule, 0, len(names))}
	for _, name := range names {
		props := make(map[string]string, len(utilities[name]))
		for k, v := range utilities[name] {
			props[k] = v
		}
		sheet.Rules = append(sheet.Rules, Rule{Selector: "." + name, Properties: props})
	}
	return sheet
}

// RuleBySelector returns the first rule matching the given selector.
func (s *Stylesheet) RuleBySelector(selector string) (Rule, bool) {
	for _, r := range s.Rules {
		if r.Selector == selector {
			return r, true
		}
	}
	return Rule{}, false
}

// WriteTo writes the stylesheet to w, implementing io.WriterTo. Properties
// within a rule are sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		n, err := writeRule(w, rule)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}

	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, rule.Properties[name])
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
