// Package phi derives multi-scale numeric tables from the golden ratio.
//
// Every table here is a pure function of the constant φ and (where it makes
// sense) a caller supplied base size. Values are kept at full float64
// precision - rounding for display is a separate concern, see units.go.
// Complements (100 - x) are always taken from the exact value, never from the
// rounded representation, so dependent calculations do not accumulate
// formatting error.
package phi

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Phi is the golden ratio, (1+√5)/2.
	Phi = 1.618033988749895
	// InvPhi is 1/φ, which is also φ-1.
	InvPhi = 1 / Phi
	// SqrtPhi is √φ, a single half-step of the scale.
	SqrtPhi = 1.272019649514069

	// DefaultBase is the reference size everything is expressed against. It
	// matches the conventional 16px root font size, so a value of 16 maps to
	// exactly 1rem.
	DefaultBase = 16.0
)

// ErrDomain is returned when a numeric input falls outside the valid domain
// of a derivation. Callers are expected to test with errors.Is.
var ErrDomain = errors.New("input outside of valid domain")

// RatioTable holds percentage splits of a whole into golden-ratio segments.
// Major and Minor partition 100% between them; deeper levels describe a
// diminishing progression and are not required to sum to anything.
type RatioTable struct {
	Major    float64    // 100/φ
	Minor    float64    // 100/φ²
	Tertiary float64    // 100/φ³
	Extended [4]float64 // 100/φ³ .. 100/φ⁶
}

// Ratios computes the standard golden-ratio percentage table.
func Ratios() RatioTable {
	t := RatioTable{
		Major:    100 * InvPhi,
		Minor:    100 * InvPhi * InvPhi,
		Tertiary: 100 * math.Pow(InvPhi, 3),
	}
	for i := range t.Extended {
		t.Extended[i] = 100 * math.Pow(InvPhi, float64(i+3))
	}
	return t
}

// ColumnRatioSet holds the fixed descending geometric sequence used for
// multi-column layouts.
type ColumnRatioSet struct {
	Pure [6]float64 // 100/φ¹ .. 100/φ⁶
}

// ColumnRatios computes the pure golden column sequence.
func ColumnRatios() ColumnRatioSet {
	var s ColumnRatioSet
	for i := range s.Pure {
		s.Pure[i] = 100 * math.Pow(InvPhi, float64(i+1))
	}
	return s
}

// HybridSplit describes an n-column layout with one golden major column and
// the remainder shared equally between the other columns.
type HybridSplit struct {
	Major float64 // percentage of the emphasized column
	Equal float64 // percentage of each remaining column
}

// Hybrid computes the split for an n-column hybrid layout. It needs at least
// two columns - with a single column there is nothing to share the remainder
// between.
func Hybrid(n int) (HybridSplit, error) {
	if n < 2 {
		return HybridSplit{}, fmt.Errorf("hybrid layout requires at least 2 columns, got %d: %w", n, ErrDomain)
	}
	major := 100 * InvPhi
	return HybridSplit{
		Major: major,
		Equal: (100 - major) / float64(n-1),
	}, nil
}

// Tier is a single named entry of a derived scale.
type Tier struct {
	Name  string
	Value float64
}

// SpacingScale is an ordered set of spacing tiers, largest first. Values are
// root-relative lengths (multiples of 1rem).
type SpacingScale []Tier

// Spacing derives the four-tier spacing scale from base. The result is
// strictly decreasing. base must be positive and finite.
func Spacing(base float64) (SpacingScale, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	return SpacingScale{
		{"phi", base * Phi / DefaultBase},
		{"phi-sm", base / DefaultBase},
		{"phi-xs", base * InvPhi / DefaultBase},
		{"phi-2xs", base * InvPhi * InvPhi / DefaultBase},
	}, nil
}

// TypeTier is a single entry of the typography scale: a font size paired with
// the unitless line-height multiplier it should be set at.
type TypeTier struct {
	Name       string
	Size       float64 // root-relative font size
	LineHeight float64 // unitless multiplier
	Alt        bool    // true for √φ half-step tiers
}

// TypographyScale is an ordered set of typography tiers, largest first.
// Alt tiers interleave numerically between the integer-power tiers and keep
// their own parallel naming track.
type TypographyScale []TypeTier

// Typography derives the typography scale from base: seven tiers at integer
// powers of φ plus four alt tiers one √φ half-step below each major tier
// above the base. Sizes at or above φ·base use the tight line-height, the
// rest read best at φ itself.
func Typography(base float64) (TypographyScale, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	var (
		tight = 1 + InvPhi
		scale = TypographyScale{
			{Name: "phi-3xl", Size: math.Pow(Phi, 4)},
			{Name: "phi-3xl-alt", Size: math.Pow(Phi, 3) * SqrtPhi, Alt: true},
			{Name: "phi-2xl", Size: math.Pow(Phi, 3)},
			{Name: "phi-2xl-alt", Size: math.Pow(Phi, 2) * SqrtPhi, Alt: true},
			{Name: "phi-xl", Size: math.Pow(Phi, 2)},
			{Name: "phi-xl-alt", Size: Phi * SqrtPhi, Alt: true},
			{Name: "phi-lg", Size: Phi},
			{Name: "phi-lg-alt", Size: SqrtPhi, Alt: true},
			{Name: "phi", Size: 1},
			{Name: "phi-sm", Size: InvPhi},
			{Name: "phi-xs", Size: InvPhi * InvPhi},
		}
	)
	for i := range scale {
		// pairing is decided on the unscaled factor so the base scaling
		// cannot flip the boundary tier through rounding
		if scale[i].Size >= Phi {
			scale[i].LineHeight = tight
		} else {
			scale[i].LineHeight = Phi
		}
		scale[i].Size *= base / DefaultBase
	}
	return scale, nil
}

// LineHeightSet is the fixed table of named unitless line-height multipliers.
// No base-size dependence - these are pure functions of φ.
type LineHeightSet []Tier

// LineHeights computes the line-height constant table.
func LineHeights() LineHeightSet {
	return LineHeightSet{
		{"phi", Phi},
		{"phi-2", Phi * Phi},
		{"phi-0.5", SqrtPhi},
		{"phi-tight", 1 + InvPhi},
		{"phi-relaxed", Phi + InvPhi},
	}
}

func checkBase(base float64) error {
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 0 {
		return fmt.Errorf("base size must be positive and finite, got %v: %w", base, ErrDomain)
	}
	return nil
}
