// Package polytope builds the catalog of four-dimensional shapes as
// vertex and edge sets.
package polytope

import (
	"fmt"
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// Construction ceilings. Individual shapes stay well below these.
const (
	MaxVertices = 1000
	MaxEdges    = 2000
)

// Vertices closer than this are considered duplicates.
const dedupTolerance = 1e-3

// Edge joins two vertices by index. A < B always holds for generated
// edges.
type Edge struct {
	A, B int
}

// Polytope is an immutable 4D shape: vertex positions plus the edges
// between them. Vertex index is stable identity across frames.
type Polytope struct {
	Name        string
	Description string
	Color       colormap.RGB
	Vertices    []math4.Vec4
	Edges       []Edge
}

// Validate checks the construction invariants: finite coordinates, no
// near-duplicate vertices, edges in range with distinct endpoints, and
// counts under the ceilings.
func (p *Polytope) Validate() error {
	if len(p.Vertices) == 0 {
		return fmt.Errorf("%s: no vertices", p.Name)
	}
	if len(p.Vertices) > MaxVertices {
		return fmt.Errorf("%s: %d vertices exceeds ceiling %d", p.Name, len(p.Vertices), MaxVertices)
	}
	if len(p.Edges) > MaxEdges {
		return fmt.Errorf("%s: %d edges exceeds ceiling %d", p.Name, len(p.Edges), MaxEdges)
	}
	for i, v := range p.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("%s: vertex %d is not finite: %+v", p.Name, i, v)
		}
	}
	for i := range p.Vertices {
		for j := i + 1; j < len(p.Vertices); j++ {
			if p.Vertices[i].Distance(p.Vertices[j]) < dedupTolerance {
				return fmt.Errorf("%s: vertices %d and %d coincide", p.Name, i, j)
			}
		}
	}
	for i, e := range p.Edges {
		if e.A == e.B {
			return fmt.Errorf("%s: edge %d joins vertex %d to itself", p.Name, i, e.A)
		}
		if e.A < 0 || e.A >= len(p.Vertices) || e.B < 0 || e.B >= len(p.Vertices) {
			return fmt.Errorf("%s: edge %d (%d,%d) out of range", p.Name, i, e.A, e.B)
		}
	}
	return nil
}

// vertexSet accumulates vertices while rejecting duplicates via a
// quantized coordinate key.
type vertexSet struct {
	verts []math4.Vec4
	seen  map[[4]int64]struct{}
}

func newVertexSet() *vertexSet {
	return &vertexSet{seen: make(map[[4]int64]struct{})}
}

func (s *vertexSet) add(v math4.Vec4) {
	const q = 1e6
	k := [4]int64{
		int64(math.Round(v.X * q)),
		int64(math.Round(v.Y * q)),
		int64(math.Round(v.Z * q)),
		int64(math.Round(v.W * q)),
	}
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.verts = append(s.verts, v)
}

// edgesAtDistance connects every vertex pair whose separation falls
// inside the band [target-tol, target+tol].
func edgesAtDistance(verts []math4.Vec4, target, tol float64) []Edge {
	var edges []Edge
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			d := verts[i].Distance(verts[j])
			if math.Abs(d-target) <= tol {
				edges = append(edges, Edge{i, j})
			}
		}
	}
	return edges
}
