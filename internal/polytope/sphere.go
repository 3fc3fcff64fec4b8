package polytope

import (
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// Sampling detail of the hypersphere approximation. The interior grid
// (psi, theta in the open interval, phi wrapping) yields
// (spherePsiSteps-1) × (sphereThetaSteps-1) × spherePhiSteps = 200
// vertices.
const (
	spherePsiSteps   = 6
	sphereThetaSteps = 6
	spherePhiSteps   = 8
	sphereEdgeCap    = 800
)

// NewHypersphere samples the 3-sphere of radius size on a spherical
// coordinate grid. Edges join each vertex to its near neighbors using
// an adaptive distance threshold, capped at sphereEdgeCap.
func NewHypersphere(size float64) *Polytope {
	var verts []math4.Vec4
	for a := 1; a < spherePsiSteps; a++ {
		psi := math.Pi * float64(a) / float64(spherePsiSteps)
		for b := 1; b < sphereThetaSteps; b++ {
			theta := math.Pi * float64(b) / float64(sphereThetaSteps)
			for c := 0; c < spherePhiSteps; c++ {
				phi := 2 * math.Pi * float64(c) / float64(spherePhiSteps)
				sp, st := math.Sin(psi), math.Sin(theta)
				verts = append(verts, math4.Vec4{
					X: size * sp * st * math.Cos(phi),
					Y: size * sp * st * math.Sin(phi),
					Z: size * sp * math.Cos(theta),
					W: size * math.Cos(psi),
				})
			}
		}
	}

	// Per-vertex nearest-neighbor distance drives the edge threshold,
	// so dense polar rings and the sparse equator both connect locally.
	nearest := make([]float64, len(verts))
	for i := range verts {
		nearest[i] = math.Inf(1)
		for j := range verts {
			if i == j {
				continue
			}
			if d := verts[i].Distance(verts[j]); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	var edges []Edge
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			limit := 1.2 * math.Min(nearest[i], nearest[j])
			if verts[i].Distance(verts[j]) <= limit {
				edges = append(edges, Edge{i, j})
			}
		}
	}
	if len(edges) > sphereEdgeCap {
		edges = edges[:sphereEdgeCap]
	}

	return &Polytope{
		Name:        Hypersphere.String(),
		Description: "spherical-coordinate sampling of the 3-sphere",
		Color:       colormap.RGB{R: 0.95, G: 0.60, B: 0.85},
		Vertices:    verts,
		Edges:       edges,
	}
}
