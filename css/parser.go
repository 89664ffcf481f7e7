package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses serialized utility CSS back into the stylesheet model. It is
// used to verify that generated output survives a round trip through a real
// CSS tokenizer - not as a general purpose stylesheet parser.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. At-rules are not part of the
// generated output and are skipped with a warning.
func (p *Parser) Parse(data []byte) *Stylesheet {
	sheet := &Stylesheet{Rules: make([]Rule, 0)}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(tok)
			sheet.Warnings = append(sheet.Warnings, "skipped at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			p.skipAtRuleBlock(parser)

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selector := buildSelector(tok, parser.Values())
			props := p.parseDeclarations(parser)
			sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Properties: props})
		}
	}
}

// buildSelector reassembles the selector string from grammar data and tokens.
func buildSelector(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

// parseDeclarations collects property declarations until the ruleset ends.
func (p *Parser) parseDeclarations(parser *css.Parser) map[string]string {
	props := make(map[string]string)

	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			props[string(tok)] = buildValue(parser.Values())

		case css.CustomPropertyGrammar:
			// custom properties are not generated, ignore
			continue
		}
	}
}

// buildValue joins value tokens into a single normalized string with runs of
// whitespace collapsed.
func buildValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 && !strings.HasSuffix(parts[len(parts)-1], " ") {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// skipAtRuleBlock consumes tokens until the matching EndAtRuleGrammar.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
