package geom

// Fixed geometry columns of a packed polygon row. The names match the
// upstream polygon tables and must not change.
const (
	// ColVerts holds interleaved x,y float32 coordinates: verts[0] = vert0.x,
	// verts[1] = vert0.y, verts[2] = vert1.x, ...
	ColVerts = "mapd_geo_coords"
	// ColIndices holds the row-relative first vertex of each ring.
	ColIndices = "mapd_geo_indices"
	// ColLineDrawInfo holds one draw-info record per ring.
	ColLineDrawInfo = "mapd_geo_linedrawinfo"
	// ColPolyDrawInfo holds one draw-info record per polygon.
	ColPolyDrawInfo = "mapd_geo_polydrawinfo"
)

const (
	// DrawInfoStride is the number of int32 fields per draw-info record:
	// count, instanceCount, firstIndex, baseInstance.
	DrawInfoStride = 4
	// ClosureVerts is the number of trailing duplicate vertices per ring.
	ClosureVerts = 3
)

// PackedBuffer is the geometry of one row as stored upstream. firstIndex in
// DrawInfo is in vertex units and absolute in the upstream buffer, so
// consumers offset it by the first record's firstIndex.
type PackedBuffer struct {
	Verts    []float32
	DrawInfo []int32
}

// Row is one query result row keyed by column name.
type Row map[string]any

// Verts returns the vertex column, or nil when absent or of another type.
func (r Row) Verts() []float32 {
	v, _ := r[ColVerts].([]float32)
	return v
}

// LineDrawInfo returns the per-ring draw-info column.
func (r Row) LineDrawInfo() []int32 {
	v, _ := r[ColLineDrawInfo].([]int32)
	return v
}

// Buffer returns the vertex and line draw-info columns as a PackedBuffer.
func (r Row) Buffer() PackedBuffer {
	return PackedBuffer{Verts: r.Verts(), DrawInfo: r.LineDrawInfo()}
}
