// The only reason this package exists is because output format is needed both
// by the command line tool and by generation code. I do not want either of
// them to depend on full program configuration just for a single enum.
package common

// Specification of requested output type.
// ENUM(css, json, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCss:
		return ".css"
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
