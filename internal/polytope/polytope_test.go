package polytope

import (
	"math"
	"testing"
)

func TestCatalogCounts(t *testing.T) {
	cases := []struct {
		shape    Shape
		vertices int
		edges    int
	}{
		{Tesseract, 16, 32},
		{SixteenCell, 8, 24},
		{TwentyFourCell, 24, 96},
		{FiveCell, 5, 10},
		{CliffordTorus, torusSegments1 * torusSegments2, 2 * torusSegments1 * torusSegments2},
		{Duoprism33, 9, 18},
		{Duoprism44, 16, 32},
	}
	for _, c := range cases {
		p := c.shape.Build(2)
		if len(p.Vertices) != c.vertices {
			t.Errorf("%s: %d vertices, want %d", c.shape, len(p.Vertices), c.vertices)
		}
		if len(p.Edges) != c.edges {
			t.Errorf("%s: %d edges, want %d", c.shape, len(p.Edges), c.edges)
		}
	}
}

func TestCatalogInvariants(t *testing.T) {
	for _, s := range All {
		p := s.Build(2)
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
}

func TestHypersphereCeilings(t *testing.T) {
	p := Hypersphere.Build(2)
	if len(p.Vertices) > 200 {
		t.Errorf("hypersphere has %d vertices, ceiling is 200", len(p.Vertices))
	}
	if len(p.Edges) > sphereEdgeCap {
		t.Errorf("hypersphere has %d edges, cap is %d", len(p.Edges), sphereEdgeCap)
	}
	if len(p.Edges) == 0 {
		t.Error("hypersphere generated no edges")
	}
}

func TestSixHundredCellSubsetSize(t *testing.T) {
	p := SixHundredCell.Build(2)
	if len(p.Vertices) < 32 || len(p.Vertices) > 40 {
		t.Errorf("600-cell subset has %d vertices, want 32..40", len(p.Vertices))
	}
	if len(p.Edges) == 0 {
		t.Error("600-cell subset generated no edges")
	}
}

func TestTwentyFourCellDegree(t *testing.T) {
	p := TwentyFourCell.Build(2)
	degree := make([]int, len(p.Vertices))
	for _, e := range p.Edges {
		degree[e.A]++
		degree[e.B]++
	}
	for i, d := range degree {
		if d != 8 {
			t.Errorf("24-cell vertex %d has degree %d, want 8", i, d)
		}
	}
}

func TestTesseractEdgeLength(t *testing.T) {
	// At size 2 every edge has length 2 (side s=1 on each axis).
	p := Tesseract.Build(2)
	for _, e := range p.Edges {
		d := p.Vertices[e.A].Distance(p.Vertices[e.B])
		if math.Abs(d-2) > 1e-12 {
			t.Errorf("tesseract edge (%d,%d) length %v, want 2", e.A, e.B, d)
		}
	}
}

func TestCommonCircumradius(t *testing.T) {
	// Radius-based shapes put every vertex on the 3-sphere of radius size.
	for _, s := range []Shape{SixteenCell, TwentyFourCell, FiveCell, CliffordTorus, Hypersphere, SixHundredCell, Duoprism33, Duoprism44} {
		p := s.Build(1.5)
		for i, v := range p.Vertices {
			if math.Abs(v.Length()-1.5) > 1e-9 {
				t.Errorf("%s vertex %d has radius %v, want 1.5", s, i, v.Length())
				break
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	for _, s := range All {
		a := s.Build(2)
		b := s.Build(2)
		if len(a.Vertices) != len(b.Vertices) || len(a.Edges) != len(b.Edges) {
			t.Fatalf("%s: repeated builds differ in counts", s)
		}
		for i := range a.Vertices {
			if a.Vertices[i] != b.Vertices[i] {
				t.Fatalf("%s: vertex %d differs between builds", s, i)
			}
		}
		for i := range a.Edges {
			if a.Edges[i] != b.Edges[i] {
				t.Fatalf("%s: edge %d differs between builds", s, i)
			}
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range All {
		got, err := Parse(s.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("Parse(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := Parse("klein-bottle"); err == nil {
		t.Error("Parse of unknown id should fail")
	}
}
