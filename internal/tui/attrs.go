package tui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	table "github.com/charmbracelet/bubbles/table"

	"geopoly/internal/geom"
)

// refreshAttrsFromCurrent rebuilds the table columns/rows from the loaded rows
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	// If there are no columns or rows, disable attributes view to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		// first cell is the row number, pad or truncate the rest to the columns
		cells := make([]string, len(tcols))
		copy(cells, r)
		trows = append(trows, table.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns (columns, rows) for the table. Each row starts
// with its 1-based row number. With a popup open only the popup's row and
// the columns its mark spec consults are listed.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if p := m.chart.popup; p != nil && m.popupRow >= 0 && m.popupRow < len(m.rows) {
		var cols []string
		for _, c := range p.Columns {
			if !isGeomColumn(c) {
				cols = append(cols, c)
			}
		}
		return cols, [][]string{attrRow(m.popupRow, m.rows[m.popupRow], cols)}
	}
	if len(m.rows) == 0 {
		if m.selPath == "" {
			// pasted WKT without features: nothing to list
			return nil, nil
		}
		cols := []string{"name", "path", "bbox", "points", "lines", "polygons"}
		vals := []string{"1", filepath.Base(m.selPath), m.selPath, fmt.Sprintf("[%.5f,%.5f,%.5f,%.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY), fmt.Sprintf("%d", len(m.points)), fmt.Sprintf("%d", len(m.lines)), fmt.Sprintf("%d", len(m.polygons))}
		return cols, [][]string{vals}
	}
	cols := attrColumns(m.rows)
	out := make([][]string, 0, len(m.rows))
	for i, r := range m.rows {
		out = append(out, attrRow(i, r, cols))
	}
	return cols, out
}

// attrColumns unions the non-geometry columns of rows, sorted.
func attrColumns(rows []geom.Row) []string {
	seen := map[string]bool{}
	var cols []string
	for _, r := range rows {
		for k := range r {
			if !seen[k] && !isGeomColumn(k) {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

func attrRow(i int, r geom.Row, cols []string) []string {
	vals := make([]string, 0, len(cols)+1)
	vals = append(vals, fmt.Sprintf("%d", i+1))
	for _, c := range cols {
		vals = append(vals, attrValue(r[c]))
	}
	return vals
}

func attrValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
