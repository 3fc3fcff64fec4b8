package polytope

import (
	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// NewSixteenCell builds the 4D cross-polytope: ±s along each axis.
// Every vertex pair is an edge except the four mutually antipodal
// pairs, giving 8 vertices and 24 edges.
func NewSixteenCell(size float64) *Polytope {
	s := size
	verts := []math4.Vec4{
		{X: s}, {X: -s},
		{Y: s}, {Y: -s},
		{Z: s}, {Z: -s},
		{W: s}, {W: -s},
	}

	var edges []Edge
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			// Antipodal pairs sit at consecutive indices (2k, 2k+1).
			if i/2 == j/2 {
				continue
			}
			edges = append(edges, Edge{i, j})
		}
	}

	return &Polytope{
		Name:        SixteenCell.String(),
		Description: "16-cell cross-polytope, the 4D analogue of the octahedron",
		Color:       colormap.RGB{R: 1.00, G: 0.45, B: 0.35},
		Vertices:    verts,
		Edges:       edges,
	}
}
