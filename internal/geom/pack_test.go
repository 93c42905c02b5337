package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, s float64) [][2]float64 {
	return [][2]float64{{x, y}, {x + s, y}, {x + s, y + s}, {x, y + s}, {x, y}}
}

func TestPackClosureDuplicates(t *testing.T) {
	var p Packer
	row, ok := p.Pack(Feature{Polygons: [][][][2]float64{{square(0, 0, 1)}}})
	require.True(t, ok)

	info := row.LineDrawInfo()
	require.Len(t, info, DrawInfoStride)
	assert.Equal(t, []int32{7, 1, 0, 0}, info)

	verts := row.Verts()
	require.Len(t, verts, 7*2)
	// last three vertices repeat the first three
	assert.Equal(t, verts[0:6], verts[8:14])
}

func TestPackAbsoluteFirstIndex(t *testing.T) {
	rows := PackFeatures([]Feature{
		{Polygons: [][][][2]float64{{square(0, 0, 1)}}},
		{Polygons: [][][][2]float64{{square(5, 5, 1), square(5.2, 5.2, 0.2)}}},
	})
	require.Len(t, rows, 2)

	info := rows[1].LineDrawInfo()
	require.Len(t, info, 2*DrawInfoStride)
	// the first row used 7 vertices of the shared buffer
	assert.Equal(t, int32(7), info[2])
	assert.Equal(t, int32(14), info[6])
	assert.Equal(t, []int32{0, 7}, rows[1][ColIndices])
	assert.Equal(t, []int32{8, 1, 7, 0}, rows[1][ColPolyDrawInfo])
}

func TestPackSkipsDegenerate(t *testing.T) {
	var p Packer
	_, ok := p.Pack(Feature{Polygons: [][][][2]float64{{{{0, 0}, {1, 1}, {0, 0}}}}})
	assert.False(t, ok)

	row, ok := p.Pack(Feature{
		Polygons:   [][][][2]float64{{square(0, 0, 2)}},
		Properties: map[string]any{"name": "a", ColVerts: "shadowed"},
	})
	require.True(t, ok)
	assert.Equal(t, "a", row["name"])
	assert.Len(t, row.Verts(), 14)
	// nothing was consumed by the skipped feature
	assert.Equal(t, int32(0), row.LineDrawInfo()[2])
}

func TestRowAccessorsWrongType(t *testing.T) {
	row := Row{ColVerts: []float64{1, 2}, ColLineDrawInfo: "x"}
	assert.Nil(t, row.Verts())
	assert.Nil(t, row.LineDrawInfo())
	assert.Equal(t, PackedBuffer{}, row.Buffer())
}
