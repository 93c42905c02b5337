package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with either latitude/longitude columns (points) or a
// WKT geometry column (features, remaining columns become attributes).
// Column detection is case-insensitive: lat|latitude|y, lon|lng|long|longitude|x,
// wkt|geom|geometry|the_geom.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	header := recs[0]
	idxLat, idxLon, idxGeom := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "wkt", "geom", "geometry", "the_geom":
			if idxGeom == -1 {
				idxGeom = i
			}
		}
	}
	var d Data
	switch {
	case idxGeom >= 0:
		for _, row := range recs[1:] {
			if idxGeom >= len(row) {
				continue
			}
			props := map[string]any{}
			for i, h := range header {
				if i == idxGeom || i >= len(row) {
					continue
				}
				props[h] = csvValue(row[i])
			}
			// rows with bad geometry are skipped like unparseable coordinates
			_ = d.addWKT(row[idxGeom], props)
		}
	case idxLat >= 0 && idxLon >= 0:
		for _, row := range recs[1:] {
			if idxLon >= len(row) || idxLat >= len(row) {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			d.addPoint([2]float64{lon, lat})
		}
	default:
		return Data{}, errors.New("csv: latitude/longitude or geometry columns not found")
	}
	if d.empty() {
		return Data{}, errors.New("csv: no valid geometries parsed")
	}
	return d, nil
}

// csvValue keeps numeric cells numeric so scales can map them.
func csvValue(s string) any {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
