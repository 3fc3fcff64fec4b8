package polytope

import (
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// NewTwentyFourCell builds the 24-cell from all permutations of
// (±1,±1,0,0)/√2 scaled to circumradius size. At unit circumradius the
// edge length equals the circumradius, so edges are the vertex pairs at
// that distance: 24 vertices, 96 edges, degree 8.
func NewTwentyFourCell(size float64) *Polytope {
	s := size / math.Sqrt2
	set := newVertexSet()
	axes := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, ax := range axes {
		for _, sa := range []float64{s, -s} {
			for _, sb := range []float64{s, -s} {
				var c [4]float64
				c[ax[0]] = sa
				c[ax[1]] = sb
				set.add(math4.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]})
			}
		}
	}

	edge := size // edge length equals circumradius
	edges := edgesAtDistance(set.verts, edge, 1e-6*size)

	return &Polytope{
		Name:        TwentyFourCell.String(),
		Description: "24-cell, the self-dual regular polytope with no 3D analogue",
		Color:       colormap.RGB{R: 0.55, G: 1.00, B: 0.45},
		Vertices:    set.verts,
		Edges:       edges,
	}
}
