package polytope

import (
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// Even permutations of four indices, in a fixed order.
var evenPerms4 = [12][4]int{
	{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
	{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
	{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
}

// NewSixHundredCell builds a representative 36-vertex subset of the
// 600-cell: the 16-cell's axis vertices, the 16 half-integer tesseract
// vertices, and the twelve all-positive even permutations of
// (φ,1,1/φ,0)/2, all at circumradius size. Edges are tolerance-banded
// around the 600-cell's edge length, size/φ.
func NewSixHundredCell(size float64) *Polytope {
	phi := (1 + math.Sqrt(5)) / 2

	set := newVertexSet()
	// Axis vertices (the 16-cell).
	for axis := 0; axis < 4; axis++ {
		for _, sign := range []float64{1, -1} {
			var c [4]float64
			c[axis] = sign * size
			set.add(math4.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]})
		}
	}
	// Half-integer vertices (the tesseract at radius size).
	h := size / 2
	for i := 0; i < 16; i++ {
		v := math4.Vec4{X: -h, Y: -h, Z: -h, W: -h}
		if i&1 != 0 {
			v.X = h
		}
		if i&2 != 0 {
			v.Y = h
		}
		if i&4 != 0 {
			v.Z = h
		}
		if i&8 != 0 {
			v.W = h
		}
		set.add(v)
	}
	// Golden-ratio vertices: even permutations of (φ,1,1/φ,0)/2.
	base := [4]float64{phi * size / 2, size / 2, size / (2 * phi), 0}
	for _, p := range evenPerms4 {
		set.add(math4.Vec4{X: base[p[0]], Y: base[p[1]], Z: base[p[2]], W: base[p[3]]})
	}

	edge := size / phi
	edges := edgesAtDistance(set.verts, edge, 0.02*size)

	return &Polytope{
		Name:        SixHundredCell.String(),
		Description: "representative subset of the 600-cell's icosahedral vertex structure",
		Color:       colormap.RGB{R: 0.80, G: 0.45, B: 1.00},
		Vertices:    set.verts,
		Edges:       edges,
	}
}
