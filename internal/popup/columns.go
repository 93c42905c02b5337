package popup

import (
	"sort"

	"geopoly/internal/geom"
	"geopoly/internal/mark"
)

// RequiredColumns lists the columns a query must return so rows can be
// shown in a popup: the vertex and line draw-info columns plus every field
// the non-position channels reference. The result is sorted.
func RequiredColumns(spec *mark.MarkSpec) []string {
	set := map[string]struct{}{
		geom.ColVerts:        {},
		geom.ColLineDrawInfo: {},
	}
	if spec != nil {
		for _, f := range spec.Fields() {
			set[f] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// IsRowEligible reports whether the row carries both geometry columns with data.
func IsRowEligible(row geom.Row) bool {
	return len(row.Verts()) > 0 && len(row.LineDrawInfo()) > 0
}
