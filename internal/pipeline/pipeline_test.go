package pipeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/Faultbox/hyperscope/internal/polytope"
	"github.com/Faultbox/hyperscope/internal/projection"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

func snapshotFrame(f *Frame) Frame {
	out := Frame{MinW: f.MinW, MaxW: f.MaxW}
	out.Vertices = append(out.Vertices, f.Vertices...)
	out.Edges = append(out.Edges, f.Edges...)
	return out
}

func TestTickPublishesFrame(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.Tick(0.016)
	f := p.Frame()
	if len(f.Vertices) != 16 || len(f.Edges) != 32 {
		t.Fatalf("frame has %d vertices / %d edges, want 16/32", len(f.Vertices), len(f.Edges))
	}
	if !(f.MinW < f.MaxW) {
		t.Errorf("w range not tracked: [%v, %v]", f.MinW, f.MaxW)
	}
}

func TestDirtyCheckSkipsUnchangedTicks(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.Tick(0.016)
	if p.ComputedTicks() != 1 {
		t.Fatalf("first tick should compute, got %d", p.ComputedTicks())
	}
	before := snapshotFrame(p.Frame())

	for i := 0; i < 10; i++ {
		p.Tick(0.016)
	}
	if p.ComputedTicks() != 1 {
		t.Errorf("unchanged ticks recomputed: %d computed ticks", p.ComputedTicks())
	}
	after := snapshotFrame(p.Frame())
	if !reflect.DeepEqual(before, after) {
		t.Error("published output changed across skipped ticks")
	}
}

func TestRotationChangeForcesRecompute(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.Tick(0.016)
	p.SetManualRotation(math4.Angles{XY: 0.5})
	p.Tick(0.016)
	if p.ComputedTicks() != 2 {
		t.Errorf("rotation change did not recompute: %d", p.ComputedTicks())
	}
}

func TestSubToleranceChangeSkips(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.SetManualRotation(math4.Angles{XY: 0.5})
	p.Tick(0.016)
	p.SetManualRotation(math4.Angles{XY: 0.5 + 5e-4})
	p.Tick(0.016)
	if p.ComputedTicks() != 1 {
		t.Errorf("sub-tolerance rotation change recomputed: %d", p.ComputedTicks())
	}
}

func TestAutoRotationAccumulates(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.SetAutoRotation(true)
	p.SetAutoVelocities(math4.Angles{ZW: 1})
	p.Tick(0.25)
	p.Tick(0.25)
	got := p.TotalRotation().ZW
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("accumulated ZW = %v, want 0.5", got)
	}
	if p.ComputedTicks() != 2 {
		t.Errorf("moving auto-rotation should compute every tick: %d", p.ComputedTicks())
	}
}

func TestXWQuarterTurnScenario(t *testing.T) {
	// Size-2 tesseract vertex (-1,-1,-1,-1) rotated π/2 in XW then
	// projected orthographically lands at (1,-1,-1): x' = -w, w' = x
	// under the Givens convention.
	p := New(polytope.Tesseract, 2, nil)
	p.SetProjection(projection.Config{Mode: projection.Orthographic})
	p.SetManualRotation(math4.Angles{XW: math.Pi / 2})
	p.Tick(0.016)

	// Vertex 0 carries the all-minus sign combination.
	got := p.Frame().Vertices[0]
	want := math4.Vec3{X: 1, Y: -1, Z: -1}
	const tol = 5e-3 // angles are quantized to 3 decimals for the matrix cache
	if math.Abs(got.Pos.X-want.X) > tol || math.Abs(got.Pos.Y-want.Y) > tol || math.Abs(got.Pos.Z-want.Z) > tol {
		t.Errorf("projected vertex = %+v, want %+v", got.Pos, want)
	}
	if math.Abs(got.W-(-1)) > tol {
		t.Errorf("rotated w = %v, want -1", got.W)
	}
}

func TestMorphHoldsFromShapeAtZeroProgress(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.SetProjection(projection.Config{Mode: projection.Orthographic})
	p.Tick(0.016)

	p.SetShape(polytope.FiveCell, 2)
	p.SetMorphRate(0) // hold progress at zero
	p.Tick(0.016)

	from := polytope.Tesseract.Build(2)
	f := p.Frame()
	if len(f.Vertices) != 5 {
		t.Fatalf("morph frame has %d vertices, want TO count 5", len(f.Vertices))
	}
	for i, out := range f.Vertices {
		want := from.Vertices[i].XYZ()
		if out.Pos != want {
			t.Errorf("vertex %d at progress 0 = %v, want FROM position %v", i, out.Pos, want)
		}
	}
}

func TestMorphReachesToShapeExactly(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.SetProjection(projection.Config{Mode: projection.Orthographic})
	p.Tick(0.016)

	p.SetShape(polytope.FiveCell, 2)
	p.SetMorphRate(1000)
	p.Tick(0.016)

	if p.Transitioning() {
		t.Fatal("transition should be complete")
	}
	to := polytope.FiveCell.Build(2)
	for i, out := range p.Frame().Vertices {
		want := to.Vertices[i].XYZ()
		if out.Pos != want {
			t.Errorf("vertex %d after morph = %v, want TO position %v", i, out.Pos, want)
		}
	}
}

func TestMorphFadesInFromDestination(t *testing.T) {
	// 5-cell -> tesseract: indices 5..15 are absent in FROM and must
	// sit at their TO position throughout the morph.
	p := New(polytope.FiveCell, 2, nil)
	p.SetProjection(projection.Config{Mode: projection.Orthographic})
	p.Tick(0.016)

	p.SetShape(polytope.Tesseract, 2)
	p.SetMorphRate(0)
	p.Tick(0.016)

	to := polytope.Tesseract.Build(2)
	f := p.Frame()
	if len(f.Vertices) != 16 {
		t.Fatalf("morph frame has %d vertices, want 16", len(f.Vertices))
	}
	for i := 5; i < 16; i++ {
		want := to.Vertices[i].XYZ()
		if f.Vertices[i].Pos != want {
			t.Errorf("new vertex %d = %v, want its destination %v", i, f.Vertices[i].Pos, want)
		}
	}
}

func TestSliceEdgeVisibility(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.SetProjection(projection.Config{Mode: projection.Orthographic})
	p.SetSlice(SliceConfig{Enabled: true, Position: 1, Thickness: 0.5})
	p.Tick(0.016)

	f := p.Frame()
	// Vertex 0 has w=-1 (outside), vertex 8 has w=+1 (inside).
	if f.Vertices[0].Visible {
		t.Error("vertex outside the band should be invisible")
	}
	if !f.Vertices[8].Visible {
		t.Error("vertex inside the band should be visible")
	}

	poly := p.Polytope()
	for i, e := range poly.Edges {
		inA := math.Abs(f.Vertices[e.A].W-1) < 0.5
		inB := math.Abs(f.Vertices[e.B].W-1) < 0.5
		want := inA || inB
		if f.Edges[i].Visible != want {
			t.Errorf("edge %d (%d,%d): visible=%v, want %v", i, e.A, e.B, f.Edges[i].Visible, want)
		}
	}
	// Concretely: one endpoint in the band keeps the edge, both outside drop it.
	var sawPartial, sawHidden bool
	for i, e := range poly.Edges {
		wa, wb := f.Vertices[e.A].W, f.Vertices[e.B].W
		if wa > 0 != (wb > 0) && !f.Edges[i].Visible {
			t.Errorf("edge %d crosses the band but is hidden", i)
		}
		if wa > 0 != (wb > 0) {
			sawPartial = true
		}
		if wa < 0 && wb < 0 {
			sawHidden = true
			if f.Edges[i].Visible {
				t.Errorf("edge %d with both endpoints outside is visible", i)
			}
		}
	}
	if !sawPartial || !sawHidden {
		t.Fatal("test shape did not produce both partial and hidden edges")
	}
}

func TestSliceScanAdvancesAndWraps(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.SetSlice(SliceConfig{Enabled: true, Position: 1.9, Thickness: 0.5, Scan: true, ScanSpeed: 1})
	p.Tick(0.1)
	// 1.9 + 1*0.1*2 = 2.1 wraps to -2.
	if got := p.Slice().Position; got != -2 {
		t.Errorf("scan position = %v, want wrap to -2", got)
	}
	// Scan keeps every tick dirty.
	before := p.ComputedTicks()
	p.Tick(0.1)
	if p.ComputedTicks() != before+1 {
		t.Error("scan tick was skipped by the dirty check")
	}
}

func TestStaticBaseColor(t *testing.T) {
	p := New(polytope.Tesseract, 2, nil)
	p.SetDisplay(Display{ShowVertices: true, ShowEdges: true, ColorByW: false})
	p.Tick(0.016)
	base := p.Polytope().Color
	for i, v := range p.Frame().Vertices {
		if v.Color != base {
			t.Fatalf("vertex %d color = %v, want base %v", i, v.Color, base)
		}
	}
}

func TestShapeChangeKeepsVertexIdentity(t *testing.T) {
	p := New(polytope.Duoprism33, 2, nil)
	p.Tick(0.016)
	p.SetShape(polytope.Duoprism44, 2)
	p.SetMorphRate(1000)
	p.Tick(0.016)
	if got := len(p.Frame().Vertices); got != 16 {
		t.Errorf("frame has %d vertices after shape change, want 16", got)
	}
	if p.Shape() != polytope.Duoprism44 {
		t.Errorf("active shape = %v", p.Shape())
	}
}

func TestMatrixCacheBounded(t *testing.T) {
	c := newMatrixCache(matrixCacheLimit)
	for i := 0; i < 3*matrixCacheLimit; i++ {
		c.lookup(math4.Angles{XY: float64(i) * 0.01})
	}
	if c.len() > matrixCacheLimit {
		t.Errorf("cache grew to %d entries, limit %d", c.len(), matrixCacheLimit)
	}
}

func TestMatrixCacheHitsForNearbyAngles(t *testing.T) {
	c := newMatrixCache(matrixCacheLimit)
	a := c.lookup(math4.Angles{XW: 0.12345})
	b := c.lookup(math4.Angles{XW: 0.12349}) // same key after quantization
	if a != b {
		t.Error("quantized lookups should return the identical matrix")
	}
	if c.len() != 1 {
		t.Errorf("cache holds %d entries, want 1", c.len())
	}
}
