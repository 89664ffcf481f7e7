// Package tokens assembles golden-ratio design tokens into the two payloads a
// styling host consumes: a flat batch of named utility rules and a nested
// theme extension tree. All numeric derivation lives in package phi - this
// package only names, formats and groups.
package tokens

import (
	"github.com/gosimple/slug"

	"grt/phi"
)

// Declarations maps CSS property names to value strings for a single rule.
type Declarations map[string]string

// Utilities is the payload of the "add utilities" sink: class name (without
// the leading dot) to declarations. Keys are unique by construction.
type Utilities map[string]Declarations

// FontSize pairs a font-size value with the line-height it should be set at.
type FontSize struct {
	Size       string `yaml:"size" json:"size"`
	LineHeight string `yaml:"line_height" json:"lineHeight"`
}

// Theme is the payload of the "extend theme" sink. Top-level keys are fixed;
// each maps to internally consistent units: rem for lengths, unitless for
// line-height, ms for durations, deg for rotation, vh for heights and
// percentages for widths.
type Theme struct {
	Spacing            map[string]string   `yaml:"spacing" json:"spacing"`
	Padding            map[string]string   `yaml:"padding" json:"padding"`
	Margin             map[string]string   `yaml:"margin" json:"margin"`
	Gap                map[string]string   `yaml:"gap" json:"gap"`
	Width              map[string]string   `yaml:"width" json:"width"`
	Height             map[string]string   `yaml:"height" json:"height"`
	FontSize           map[string]FontSize `yaml:"font_size" json:"fontSize"`
	LineHeight         map[string]string   `yaml:"line_height" json:"lineHeight"`
	BorderRadius       map[string]string   `yaml:"border_radius" json:"borderRadius"`
	TransitionDuration map[string]string   `yaml:"transition_duration" json:"transitionDuration"`
	Rotate             map[string]string   `yaml:"rotate" json:"rotate"`
}

// Sinks are the two opaque operations supplied by the styling host. Either
// may be nil when the host is not interested in that half of the output.
type Sinks struct {
	AddUtilities func(Utilities) error
	ExtendTheme  func(Theme) error
}

type options struct {
	base   float64
	prefix string
}

// Option adjusts token generation.
type Option func(*options)

// WithBaseSize sets the base size the spacing and typography scales are
// derived from. Default is phi.DefaultBase (16, i.e. 1rem at conventional
// root font size). Validation happens during generation.
func WithBaseSize(base float64) Option {
	return func(o *options) { o.base = base }
}

// WithPrefix prepends a prefix to every generated utility class name. The
// value is slugged first so the result is always a valid class name.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = slug.Make(prefix) }
}

func defaultOptions() options {
	return options{base: phi.DefaultBase}
}

// className applies the configured prefix to a bare utility name.
func (o options) className(name string) string {
	if len(o.prefix) == 0 {
		return name
	}
	return o.prefix + "-" + name
}
