package tokens

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"grt/phi"
)

// Fixed token constants
//
// These are the documented literals that are not part of any derived scale:
// border radii and transition durations follow descending powers of 1/φ
// against their natural reference (1rem, 1000ms), rotation uses the golden
// angle 360/φ² and its complement, heights are golden fractions of the
// viewport.

const (
	goldenAngle = 360 * phi.InvPhi * phi.InvPhi // ≈137.5078
	durationRef = 1000.0                        // ms
)

// hybridColumnCounts lists the column counts hybrid grid templates are
// generated for. Two columns are already covered by the plain major/minor
// template.
var hybridColumnCounts = []int{3, 4, 5, 6}

// Register derives every token table, assembles the utility batch and the
// theme tree and hands them to the host sinks. Nothing is invoked until all
// derivation succeeded, so the host never observes partial output. Both
// sinks receive complete, independent payloads; their errors are aggregated.
func Register(s Sinks, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	spacing, err := phi.Spacing(o.base)
	if err != nil {
		return fmt.Errorf("spacing scale: %w", err)
	}
	typography, err := phi.Typography(o.base)
	if err != nil {
		return fmt.Errorf("typography scale: %w", err)
	}
	var (
		ratios      = phi.Ratios()
		columns     = phi.ColumnRatios()
		lineHeights = phi.LineHeights()
	)

	utilities := buildUtilities(o, spacing, typography, lineHeights, ratios, columns)
	theme := buildTheme(spacing, typography, lineHeights, ratios)

	if s.AddUtilities != nil {
		err = multierr.Append(err, wrapSinkErr("add utilities", s.AddUtilities(utilities)))
	}
	if s.ExtendTheme != nil {
		err = multierr.Append(err, wrapSinkErr("extend theme", s.ExtendTheme(theme)))
	}
	return err
}

func wrapSinkErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s sink: %w", name, err)
}

// boxSides drives the directional expansion of padding and margin variants:
// one axis or side suffix to the list of property suffixes it sets.
var boxSides = []struct {
	suffix string
	sides  []string
}{
	{"", []string{""}},
	{"x", []string{"-left", "-right"}},
	{"y", []string{"-top", "-bottom"}},
	{"t", []string{"-top"}},
	{"r", []string{"-right"}},
	{"b", []string{"-bottom"}},
	{"l", []string{"-left"}},
}

// gapAxes is the same idea for gap, which has its own axis properties.
var gapAxes = []struct {
	suffix   string
	property string
}{
	{"", "gap"},
	{"-x", "column-gap"},
	{"-y", "row-gap"},
}

func buildUtilities(o options, spacing phi.SpacingScale, typography phi.TypographyScale, lineHeights phi.LineHeightSet, ratios phi.RatioTable, columns phi.ColumnRatioSet) Utilities {
	u := make(Utilities)
	add := func(name string, decl Declarations) {
		u[o.className(name)] = decl
	}

	// Aspect ratios. Landscape is an explicit alias for the unsuffixed form.
	add("aspect-phi", Declarations{"aspect-ratio": phi.FormatNumber(phi.Phi) + " / 1"})
	add("aspect-phi-landscape", Declarations{"aspect-ratio": phi.FormatNumber(phi.Phi) + " / 1"})
	add("aspect-phi-portrait", Declarations{"aspect-ratio": "1 / " + phi.FormatNumber(phi.Phi)})

	// Grid column templates. Track sizes are descriptive proportions clamped
	// by minmax - templates deliberately need not sum to exactly 100%.
	add("grid-cols-phi", gridTemplate(ratios.Major, ratios.Minor))
	add("grid-cols-phi-rev", gridTemplate(ratios.Minor, ratios.Major))
	add("grid-cols-phi-cascade", gridTemplate(ratios.Major, ratios.Minor, ratios.Tertiary))
	// The small-column pair partitions the full width: the complement is
	// taken from the exact tertiary value.
	add("grid-cols-phi-small-start", gridTemplate(ratios.Tertiary, 100-ratios.Tertiary))
	add("grid-cols-phi-small-end", gridTemplate(100-ratios.Tertiary, ratios.Tertiary))
	for _, n := range hybridColumnCounts {
		split, err := phi.Hybrid(n)
		if err != nil {
			// counts are fixed above 2, this cannot happen
			panic(err)
		}
		tracks := make([]float64, 0, n)
		tracks = append(tracks, split.Major)
		for i := 1; i < n; i++ {
			tracks = append(tracks, split.Equal)
		}
		add(fmt.Sprintf("grid-cols-phi-hybrid-%d", n), gridTemplate(tracks...))
	}

	// Padding, margin and gap variants: direction × size tier. Only the top
	// three tiers get utility classes, the full scale stays available through
	// the theme.
	for _, tier := range spacing[:3] {
		value := phi.FormatRem(tier.Value)
		for _, dir := range boxSides {
			pd := make(Declarations, len(dir.sides))
			md := make(Declarations, len(dir.sides))
			for _, side := range dir.sides {
				pd["padding"+side] = value
				md["margin"+side] = value
			}
			add("p"+dir.suffix+"-"+tier.Name, pd)
			add("m"+dir.suffix+"-"+tier.Name, md)
		}
		for _, axis := range gapAxes {
			add("gap"+axis.suffix+"-"+tier.Name, Declarations{axis.property: value})
		}
	}

	// Line-height classes.
	for _, lh := range lineHeights {
		add("leading-"+lh.Name, Declarations{"line-height": phi.FormatNumber(lh.Value)})
	}

	// Typography classes: font size paired with its line-height.
	for _, tier := range typography {
		add("text-"+tier.Name, Declarations{
			"font-size":   phi.FormatRem(tier.Size),
			"line-height": phi.FormatNumber(tier.LineHeight),
		})
	}

	return u
}

// gridTemplate renders a grid-template-columns declaration from percentage
// proportions, each clamped with minmax so the browser normalizes overshoot.
func gridTemplate(percents ...float64) Declarations {
	tracks := make([]string, len(percents))
	for i, p := range percents {
		tracks[i] = "minmax(0, " + phi.FormatPercent(p) + ")"
	}
	return Declarations{"grid-template-columns": strings.Join(tracks, " ")}
}

func buildTheme(spacing phi.SpacingScale, typography phi.TypographyScale, lineHeights phi.LineHeightSet, ratios phi.RatioTable) Theme {
	lengths := make(map[string]string, len(spacing))
	for _, tier := range spacing {
		lengths[tier.Name] = phi.FormatRem(tier.Value)
	}
	copyLengths := func() map[string]string {
		m := make(map[string]string, len(lengths))
		for k, v := range lengths {
			m[k] = v
		}
		return m
	}

	fontSizes := make(map[string]FontSize, len(typography))
	for _, tier := range typography {
		fontSizes[tier.Name] = FontSize{
			Size:       phi.FormatRem(tier.Size),
			LineHeight: phi.FormatNumber(tier.LineHeight),
		}
	}

	lhs := make(map[string]string, len(lineHeights))
	for _, lh := range lineHeights {
		lhs[lh.Name] = phi.FormatNumber(lh.Value)
	}

	return Theme{
		Spacing: lengths,
		Padding: copyLengths(),
		Margin:  copyLengths(),
		Gap:     copyLengths(),
		Width: map[string]string{
			"phi":          phi.FormatPercent(ratios.Major),
			"phi-minor":    phi.FormatPercent(ratios.Minor),
			"phi-tertiary": phi.FormatPercent(ratios.Tertiary),
		},
		Height: map[string]string{
			"phi":       phi.FormatVh(ratios.Major),
			"phi-minor": phi.FormatVh(ratios.Minor),
		},
		FontSize:   fontSizes,
		LineHeight: lhs,
		BorderRadius: map[string]string{
			"phi":    phi.FormatRem(phi.InvPhi * phi.InvPhi),
			"phi-sm": phi.FormatRem(phi.InvPhi * phi.InvPhi * phi.InvPhi),
			"phi-lg": phi.FormatRem(phi.InvPhi),
		},
		TransitionDuration: map[string]string{
			"phi":    phi.FormatMs(durationRef * phi.InvPhi),
			"phi-sm": phi.FormatMs(durationRef * phi.InvPhi * phi.InvPhi),
			"phi-xs": phi.FormatMs(durationRef * phi.InvPhi * phi.InvPhi * phi.InvPhi),
		},
		Rotate: map[string]string{
			"phi":       phi.FormatDeg(goldenAngle),
			"phi-major": phi.FormatDeg(360 - goldenAngle),
		},
	}
}
