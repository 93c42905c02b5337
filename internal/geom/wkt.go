package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ParseWKTData returns Data for any WKT geometry. Polygons and multipolygons
// also become a single feature without attributes.
func ParseWKTData(s string) (Data, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	var d Data
	if err := d.addWKT(s, nil); err != nil {
		return Data{}, err
	}
	if d.empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

func (d *Data) addWKT(s string, props map[string]any) error {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return fmt.Errorf("wkt: %w", err)
	}
	return d.addGeom(g, props)
}

func (d *Data) addGeom(g geom.T, props map[string]any) error {
	switch v := g.(type) {
	case *geom.Point:
		if c := v.Coords(); len(c) >= 2 {
			d.addPoint(xy(c))
		}
	case *geom.MultiPoint:
		for _, c := range v.Coords() {
			if len(c) >= 2 {
				d.addPoint(xy(c))
			}
		}
	case *geom.LineString:
		d.addLine(coordsXY(v.Coords()))
	case *geom.MultiLineString:
		for _, ls := range v.Coords() {
			d.addLine(coordsXY(ls))
		}
	case *geom.Polygon:
		d.addFeature([][][][2]float64{ringsXY(v.Coords())}, props)
	case *geom.MultiPolygon:
		var polys [][][][2]float64
		for _, p := range v.Coords() {
			polys = append(polys, ringsXY(p))
		}
		d.addFeature(polys, props)
	case *geom.GeometryCollection:
		for _, c := range v.Geoms() {
			if err := d.addGeom(c, props); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported wkt type %T", g)
	}
	return nil
}

func xy(c geom.Coord) [2]float64 { return [2]float64{c[0], c[1]} }

func coordsXY(cs []geom.Coord) [][2]float64 {
	out := make([][2]float64, 0, len(cs))
	for _, c := range cs {
		if len(c) >= 2 {
			out = append(out, xy(c))
		}
	}
	return out
}

func ringsXY(rings [][]geom.Coord) [][][2]float64 {
	out := make([][][2]float64, 0, len(rings))
	for _, r := range rings {
		out = append(out, coordsXY(r))
	}
	return out
}
