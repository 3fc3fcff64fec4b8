package polytope

import (
	"math/bits"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// NewTesseract builds the 8-cell: all sign combinations of (±s)⁴ with
// s = size/2. Two vertices share an edge iff their index bitmasks
// differ in exactly one bit, giving 16 vertices and 32 edges.
func NewTesseract(size float64) *Polytope {
	s := size / 2
	verts := make([]math4.Vec4, 16)
	for i := 0; i < 16; i++ {
		v := math4.Vec4{X: -s, Y: -s, Z: -s, W: -s}
		if i&1 != 0 {
			v.X = s
		}
		if i&2 != 0 {
			v.Y = s
		}
		if i&4 != 0 {
			v.Z = s
		}
		if i&8 != 0 {
			v.W = s
		}
		verts[i] = v
	}

	var edges []Edge
	for i := 0; i < 16; i++ {
		for j := i + 1; j < 16; j++ {
			if bits.OnesCount(uint(i^j)) == 1 {
				edges = append(edges, Edge{i, j})
			}
		}
	}

	return &Polytope{
		Name:        Tesseract.String(),
		Description: "8-cell hypercube, the 4D analogue of the cube",
		Color:       colormap.RGB{R: 0.35, G: 0.65, B: 1.00},
		Vertices:    verts,
		Edges:       edges,
	}
}
