package geom

import (
	"encoding/json"
	"errors"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// LoadGeo reads a GeoJSON file and returns Data (points, lines, polygons).
// Polygon features keep their properties for popups.
func LoadGeo(path string) (Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Data{}, err
	}
	var d Data
	switch head.Type {
	case "":
		return Data{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Data{}, err
		}
		for _, f := range fc.Features {
			d.addGeoJSON(f.Geometry, f.Properties)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Data{}, err
		}
		d.addGeoJSON(f.Geometry, f.Properties)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Data{}, err
		}
		d.addGeoJSON(g, nil)
	}
	if d.empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

func (d *Data) addGeoJSON(g *geojson.Geometry, props map[string]any) {
	if g == nil {
		return
	}
	switch g.Type {
	case geojson.GeometryPoint:
		if len(g.Point) >= 2 {
			d.addPoint([2]float64{g.Point[0], g.Point[1]})
		}
	case geojson.GeometryMultiPoint:
		for _, p := range g.MultiPoint {
			if len(p) >= 2 {
				d.addPoint([2]float64{p[0], p[1]})
			}
		}
	case geojson.GeometryLineString:
		d.addLine(positions(g.LineString))
	case geojson.GeometryMultiLineString:
		for _, ls := range g.MultiLineString {
			d.addLine(positions(ls))
		}
	case geojson.GeometryPolygon:
		d.addFeature([][][][2]float64{polygonPositions(g.Polygon)}, props)
	case geojson.GeometryMultiPolygon:
		var polys [][][][2]float64
		for _, p := range g.MultiPolygon {
			polys = append(polys, polygonPositions(p))
		}
		d.addFeature(polys, props)
	case geojson.GeometryCollection:
		for _, c := range g.Geometries {
			d.addGeoJSON(c, props)
		}
	}
}

func positions(ps [][]float64) [][2]float64 {
	out := make([][2]float64, 0, len(ps))
	for _, p := range ps {
		if len(p) >= 2 {
			out = append(out, [2]float64{p[0], p[1]})
		}
	}
	return out
}

func polygonPositions(rings [][][]float64) [][][2]float64 {
	out := make([][][2]float64, 0, len(rings))
	for _, r := range rings {
		out = append(out, positions(r))
	}
	return out
}
