package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geopoly/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		p := filepath.Join(m.cwd, name)
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" || ext == ".csv" || ext == ".kml" || ext == ".wkt" {
			items = append(items, fileItem{title: name, desc: ext, path: p})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads supported formats into the model.
func (m *Model) loadPath(p string) {
	ext := strings.ToLower(filepath.Ext(p))
	var (
		d   geom.Data
		err error
	)
	switch ext {
	case ".geojson", ".json":
		d, err = geom.LoadGeo(p)
	case ".csv":
		d, err = geom.LoadCSV(p)
	case ".kml":
		d, err = geom.LoadKML(p)
	case ".wkt":
		var b []byte
		if b, err = os.ReadFile(p); err == nil {
			d, err = geom.ParseWKTData(string(b))
		}
	default:
		m.status = "unsupported file: " + ext
		return
	}
	if err != nil {
		m.log.Warn("load_error", "path", p, "err", err)
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(d)
	m.log.Info("load_ok", "path", p, "points", len(d.Points), "lines", len(d.Lines), "polygons", len(d.Polygons), "rows", len(m.rows))
	if m.spec != nil {
		m.status = "loaded: " + filepath.Base(p) + m.counts()
	}
	// If attributes are currently shown, verify availability for the new dataset
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// setData replaces the displayed geometry and rebuilds the polygon layer.
func (m *Model) setData(d geom.Data) {
	m.points, m.lines, m.polygons, m.bbox = d.Points, d.Lines, d.Polygons, d.BBox
	// reset viewport; prefer polys > lines > points for visibility
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.showPolys = len(m.polygons) > 0
	m.showLines = len(m.lines) > 0 && !m.showPolys
	m.showPoints = len(m.points) > 0 && !m.showPolys
	m.rebuildLayer(d.Features)
}

func (m *Model) counts() string {
	return fmt.Sprintf("  counts: pts=%d ls=%d poly=%d", len(m.points), len(m.lines), len(m.polygons))
}
