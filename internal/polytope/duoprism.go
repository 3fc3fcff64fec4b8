package polytope

import (
	"fmt"
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// NewDuoprism builds the Cartesian product of an m-gon in the XY plane
// and an n-gon in the ZW plane, each with circumradius size/√2 so the
// product sits at circumradius size. Vertex (i,j) connects to
// (i+1 mod m, j) and (i, j+1 mod n): m·n vertices and 2·m·n edges.
func NewDuoprism(m, n int, size float64) *Polytope {
	r := size / math.Sqrt2

	verts := make([]math4.Vec4, 0, m*n)
	for i := 0; i < m; i++ {
		a := 2 * math.Pi * float64(i) / float64(m)
		for j := 0; j < n; j++ {
			b := 2 * math.Pi * float64(j) / float64(n)
			verts = append(verts, math4.Vec4{
				X: r * math.Cos(a),
				Y: r * math.Sin(a),
				Z: r * math.Cos(b),
				W: r * math.Sin(b),
			})
		}
	}

	idx := func(i, j int) int { return i*n + j }
	edges := make([]Edge, 0, 2*m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a := idx(i, j)
			edges = append(edges, orderEdge(a, idx((i+1)%m, j)))
			edges = append(edges, orderEdge(a, idx(i, (j+1)%n)))
		}
	}

	name := Duoprism33.String()
	color := colormap.RGB{R: 0.95, G: 0.75, B: 0.45}
	if m == 4 && n == 4 {
		name = Duoprism44.String()
		color = colormap.RGB{R: 0.55, G: 0.80, B: 0.95}
	}

	return &Polytope{
		Name:        name,
		Description: fmt.Sprintf("%d,%d-duoprism, the product of two polygons", m, n),
		Color:       color,
		Vertices:    verts,
		Edges:       edges,
	}
}
