package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Feature is one polygonal feature and its attributes. Each feature becomes
// one packed row.
type Feature struct {
	Polygons   [][][][2]float64 // polygons with rings (first outer, following holes)
	Properties map[string]any
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64
	Features []Feature
	BBox     BBox

	nverts int
}

func (d *Data) extend(pt [2]float64) {
	if d.nverts == 0 {
		d.BBox = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
	} else {
		if pt[0] < d.BBox.MinX {
			d.BBox.MinX = pt[0]
		}
		if pt[1] < d.BBox.MinY {
			d.BBox.MinY = pt[1]
		}
		if pt[0] > d.BBox.MaxX {
			d.BBox.MaxX = pt[0]
		}
		if pt[1] > d.BBox.MaxY {
			d.BBox.MaxY = pt[1]
		}
	}
	d.nverts++
}

func (d *Data) addPoint(pt [2]float64) {
	d.Points = append(d.Points, pt)
	d.extend(pt)
}

func (d *Data) addLine(ls [][2]float64) {
	if len(ls) == 0 {
		return
	}
	d.Lines = append(d.Lines, ls)
	for _, p := range ls {
		d.extend(p)
	}
}

// addFeature registers the polygons for drawing and as a popup feature.
func (d *Data) addFeature(polys [][][][2]float64, props map[string]any) {
	var kept [][][][2]float64
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		kept = append(kept, poly)
		for _, ring := range poly {
			for _, p := range ring {
				d.extend(p)
			}
		}
	}
	if len(kept) == 0 {
		return
	}
	d.Polygons = append(d.Polygons, kept...)
	if props == nil {
		props = map[string]any{}
	}
	d.Features = append(d.Features, Feature{Polygons: kept, Properties: props})
}

func (d *Data) empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}
