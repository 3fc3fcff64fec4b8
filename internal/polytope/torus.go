package polytope

import (
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// Grid resolution of the Clifford torus.
const (
	torusSegments1 = 16
	torusSegments2 = 16
)

// NewCliffordTorus samples the flat torus (R·cosθ, R·sinθ, r·cosφ,
// r·sinφ) with R = r = size/√2, so every vertex sits on the 3-sphere
// of radius size. Edges connect grid neighbors with wraparound in both
// directions.
func NewCliffordTorus(size float64) *Polytope {
	r := size / math.Sqrt2
	n1, n2 := torusSegments1, torusSegments2

	verts := make([]math4.Vec4, 0, n1*n2)
	for i := 0; i < n1; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n1)
		for j := 0; j < n2; j++ {
			phi := 2 * math.Pi * float64(j) / float64(n2)
			verts = append(verts, math4.Vec4{
				X: r * math.Cos(theta),
				Y: r * math.Sin(theta),
				Z: r * math.Cos(phi),
				W: r * math.Sin(phi),
			})
		}
	}

	idx := func(i, j int) int { return i*n2 + j }
	edges := make([]Edge, 0, 2*n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			a := idx(i, j)
			edges = append(edges, orderEdge(a, idx((i+1)%n1, j)))
			edges = append(edges, orderEdge(a, idx(i, (j+1)%n2)))
		}
	}

	return &Polytope{
		Name:        CliffordTorus.String(),
		Description: "flat torus embedded in the 3-sphere",
		Color:       colormap.RGB{R: 0.40, G: 0.95, B: 0.85},
		Vertices:    verts,
		Edges:       edges,
	}
}

func orderEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}
