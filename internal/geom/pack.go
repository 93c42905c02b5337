package geom

// Packer encodes features into packed rows the way the upstream polygon
// tables store them. Vertices of consecutive rows are numbered as if they
// lived in one shared buffer, so firstIndex values are buffer-absolute.
type Packer struct {
	next int32 // absolute index of the next vertex
}

// Pack encodes one feature. It reports false when no ring has three
// distinct vertices.
func (p *Packer) Pack(f Feature) (Row, bool) {
	var verts []float32
	var ringStarts, lineInfo, polyInfo []int32
	base := p.next
	for _, poly := range f.Polygons {
		polyStart := int32(len(verts) / 2)
		polyCount := int32(0)
		for _, ring := range poly {
			ring = openRing(ring)
			if len(ring) < 3 {
				continue
			}
			first := int32(len(verts) / 2)
			for _, pt := range ring {
				verts = append(verts, float32(pt[0]), float32(pt[1]))
			}
			// closure duplicates: the first three vertices again
			for _, pt := range ring[:ClosureVerts] {
				verts = append(verts, float32(pt[0]), float32(pt[1]))
			}
			count := int32(len(ring) + ClosureVerts)
			ringStarts = append(ringStarts, first)
			lineInfo = append(lineInfo, count, 1, base+first, 0)
			polyCount += int32(len(ring))
		}
		if polyCount > 0 {
			polyInfo = append(polyInfo, polyCount, 1, base+polyStart, 0)
		}
	}
	if len(lineInfo) == 0 {
		return nil, false
	}
	p.next += int32(len(verts) / 2)

	row := Row{}
	for k, v := range f.Properties {
		row[k] = v
	}
	row[ColVerts] = verts
	row[ColIndices] = ringStarts
	row[ColLineDrawInfo] = lineInfo
	row[ColPolyDrawInfo] = polyInfo
	return row, true
}

// PackFeatures packs features in order, skipping the ones without a usable
// ring.
func PackFeatures(fs []Feature) []Row {
	var p Packer
	rows := make([]Row, 0, len(fs))
	for _, f := range fs {
		if row, ok := p.Pack(f); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// openRing drops the explicit closing vertex GeoJSON and WKT rings carry.
func openRing(ring [][2]float64) [][2]float64 {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}
