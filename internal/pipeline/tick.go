package pipeline

import (
	"math"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/internal/projection"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// dirtyTolerance is the float tolerance of the per-tick change check.
const dirtyTolerance = 1e-3

// Slice auto-scan sweeps Position across [-2, 2], wrapping at the top.
const (
	scanRange = 2.0
	scanGain  = 2.0
)

// Tick advances the pipeline by dt seconds and republishes the frame.
// The pass is single-threaded and order-sensitive: rotation
// accumulation precedes matrix composition, transform precedes
// projection, and the w range is final before any color is mapped.
func (p *Pipeline) Tick(dt float64) {
	// 1. Integrate auto-rotation.
	if p.autoEnabled {
		p.accum = p.accum.Add(p.autoVel.Scale(dt))
	}

	// 2. Effective rotation per plane.
	total := p.accum.Add(p.manual)

	// 3. Skip the tick entirely when nothing relevant changed. Scan
	// and an active morph always force the work.
	scanActive := p.slice.Enabled && p.slice.Scan
	if p.hasFrame &&
		p.transition == nil &&
		!scanActive &&
		anglesNear(total, p.lastTotal) &&
		projNear(p.proj, p.lastProj) &&
		sliceNear(p.slice, p.lastSlice) &&
		p.display == p.lastShow {
		return
	}

	p.computed++

	// 4. Composed rotation matrix, cached across ticks.
	m := p.cache.lookup(total)

	// 5. Advance the shape morph. The TO shape's vertex count is
	// canonical; indices the FROM shape lacks fade in from their own
	// destination.
	verts := p.poly.Vertices
	if t := p.transition; t != nil {
		t.progress += p.morphRate * dt
		if t.progress >= 1 {
			// Complete: the TO vertices are used exactly, not a lerp
			// that could round away from them.
			t.progress = 1
			p.transition = nil
		} else {
			ease := math4.Smoothstep(t.progress)
			if cap(p.morphed) < len(t.to.Vertices) {
				p.morphed = make([]math4.Vec4, len(t.to.Vertices))
			}
			p.morphed = p.morphed[:len(t.to.Vertices)]
			for i, to := range t.to.Vertices {
				from := to
				if i < len(t.from.Vertices) {
					from = t.from.Vertices[i]
				}
				p.morphed[i] = from.Lerp(to, ease)
			}
			verts = p.morphed
		}
	}

	// 6. Transform, project, and track the w range in one pass.
	if cap(p.frame.Vertices) < len(verts) {
		p.frame.Vertices = make([]VertexOut, len(verts))
	}
	p.frame.Vertices = p.frame.Vertices[:len(verts)]
	minW, maxW := math.Inf(1), math.Inf(-1)
	for i, v := range verts {
		tv := m.MulVec(v)
		out := &p.frame.Vertices[i]
		out.Pos = projection.Project(tv, p.proj)
		out.W = tv.W
		if tv.W < minW {
			minW = tv.W
		}
		if tv.W > maxW {
			maxW = tv.W
		}
	}
	p.frame.MinW, p.frame.MaxW = minW, maxW

	// 7+8. Visibility and color. Edges stay visible while at least one
	// endpoint is inside the slice band, which produces the
	// characteristic cut look.
	base := p.poly.Color
	for i := range p.frame.Vertices {
		out := &p.frame.Vertices[i]
		out.Visible = p.display.ShowVertices && p.inSlice(out.W)
		if p.display.ColorByW {
			out.Color = colormap.WToColor(out.W, minW, maxW)
		} else {
			out.Color = base
		}
	}
	edges := p.poly.Edges
	if cap(p.frame.Edges) < len(edges) {
		p.frame.Edges = make([]EdgeOut, len(edges))
	}
	p.frame.Edges = p.frame.Edges[:len(edges)]
	for i, e := range edges {
		a := &p.frame.Vertices[e.A]
		b := &p.frame.Vertices[e.B]
		out := &p.frame.Edges[i]
		out.A = a.Pos
		out.B = b.Pos
		out.Visible = p.display.ShowEdges && (p.inSlice(a.W) || p.inSlice(b.W))
		out.ColorA = a.Color
		out.ColorB = b.Color
	}

	// 9. Advance the slice scan.
	if scanActive {
		p.slice.Position += p.slice.ScanSpeed * dt * scanGain
		if p.slice.Position > scanRange {
			p.slice.Position = -scanRange
		}
	}

	p.lastTotal = total
	p.lastProj = p.proj
	p.lastSlice = p.slice
	p.lastShow = p.display
	p.hasFrame = true
}

// inSlice reports whether a w coordinate is inside the visibility
// band; everything is visible while slicing is off.
func (p *Pipeline) inSlice(w float64) bool {
	if !p.slice.Enabled {
		return true
	}
	return math.Abs(w-p.slice.Position) < p.slice.Thickness
}

// Transitioning reports whether a shape morph is in flight.
func (p *Pipeline) Transitioning() bool { return p.transition != nil }

// MorphProgress returns the active transition's progress, or 1 when no
// transition is running.
func (p *Pipeline) MorphProgress() float64 {
	if p.transition == nil {
		return 1
	}
	return p.transition.progress
}

func near(a, b float64) bool { return math.Abs(a-b) <= dirtyTolerance }

func anglesNear(a, b math4.Angles) bool {
	ap, bp := a.Planes(), b.Planes()
	for i := range ap {
		if !near(ap[i], bp[i]) {
			return false
		}
	}
	return true
}

func projNear(a, b projection.Config) bool {
	return a.Mode == b.Mode && near(a.ViewDistance, b.ViewDistance)
}

func sliceNear(a, b SliceConfig) bool {
	return a.Enabled == b.Enabled &&
		near(a.Position, b.Position) &&
		near(a.Thickness, b.Thickness)
}
