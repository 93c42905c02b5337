package geom

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Name    string      `xml:"name"`
	Point   *kmlPoint   `xml:"Point"`
	Polygon *kmlPolygon `xml:"Polygon"`
}

// LoadKML reads Placemark points and polygons from a KML file. The placemark
// name becomes the polygon feature's "name" attribute.
func LoadKML(path string) (Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var doc struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
		Document   struct {
			Placemarks []kmlPlacemark `xml:"Placemark"`
		} `xml:"Document"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Data{}, err
	}
	var d Data
	for _, pm := range append(doc.Placemarks, doc.Document.Placemarks...) {
		if pm.Point != nil {
			for _, p := range kmlCoords(pm.Point.Coordinates) {
				d.addPoint(p)
			}
		}
		if pm.Polygon != nil {
			rings := [][][2]float64{kmlCoords(pm.Polygon.Outer.Coordinates)}
			for _, in := range pm.Polygon.Inner {
				rings = append(rings, kmlCoords(in.Coordinates))
			}
			props := map[string]any{}
			if pm.Name != "" {
				props["name"] = pm.Name
			}
			d.addFeature([][][][2]float64{rings}, props)
		}
	}
	if d.empty() {
		return Data{}, errors.New("kml: no placemarks found")
	}
	return d, nil
}

// kmlCoords parses "lon,lat[,alt]" tuples separated by whitespace; altitude is ignored.
func kmlCoords(s string) [][2]float64 {
	var out [][2]float64
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, [2]float64{lon, lat})
	}
	return out
}
