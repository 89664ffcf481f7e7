package gen

import (
	"sort"

	"grt/tokens"
	"grt/utils/debug"
)

// themeTree renders a theme as an indented tree for the debug report.
func themeTree(theme tokens.Theme) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "theme")
	tw.Map(1, "spacing", theme.Spacing)
	tw.Map(1, "padding", theme.Padding)
	tw.Map(1, "margin", theme.Margin)
	tw.Map(1, "gap", theme.Gap)
	tw.Map(1, "width", theme.Width)
	tw.Map(1, "height", theme.Height)
	if len(theme.FontSize) > 0 {
		tw.Line(1, "font-size")
		names := make([]string, 0, len(theme.FontSize))
		for name := range theme.FontSize {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fs := theme.FontSize[name]
			tw.Line(2, "%s", name)
			tw.TextBlock(3, "size", fs.Size)
			tw.TextBlock(3, "line-height", fs.LineHeight)
		}
	}
	tw.Map(1, "line-height", theme.LineHeight)
	tw.Map(1, "border-radius", theme.BorderRadius)
	tw.Map(1, "transition-duration", theme.TransitionDuration)
	tw.Map(1, "rotate", theme.Rotate)
	return tw.String()
}
