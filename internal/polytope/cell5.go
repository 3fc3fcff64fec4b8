package polytope

import (
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// NewFiveCell builds the 4-simplex from a fixed template normalized to
// a common circumradius. Every vertex pair is an edge: the complete
// graph K5, 5 vertices and 10 edges.
func NewFiveCell(size float64) *Polytope {
	invSqrt5 := 1 / math.Sqrt(5)
	template := []math4.Vec4{
		{X: 1, Y: 1, Z: 1, W: -invSqrt5},
		{X: 1, Y: -1, Z: -1, W: -invSqrt5},
		{X: -1, Y: 1, Z: -1, W: -invSqrt5},
		{X: -1, Y: -1, Z: 1, W: -invSqrt5},
		{W: 4 * invSqrt5},
	}

	verts := make([]math4.Vec4, len(template))
	for i, v := range template {
		verts[i] = v.Normalize().Scale(size)
	}

	var edges []Edge
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			edges = append(edges, Edge{i, j})
		}
	}

	return &Polytope{
		Name:        FiveCell.String(),
		Description: "5-cell simplex, the 4D analogue of the tetrahedron",
		Color:       colormap.RGB{R: 1.00, G: 0.85, B: 0.30},
		Vertices:    verts,
		Edges:       edges,
	}
}
