// Package pipeline advances the per-tick transform state and publishes
// the projected frame consumed by the renderer.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hyperscope/internal/colormap"
	"github.com/Faultbox/hyperscope/internal/polytope"
	"github.com/Faultbox/hyperscope/internal/projection"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

// Display holds the per-frame visibility toggles.
type Display struct {
	ShowVertices bool
	ShowEdges    bool
	ColorByW     bool
}

// SliceConfig defines the hyperplane slice band
// w ∈ [Position-Thickness, Position+Thickness] and the optional
// auto-scan that sweeps Position over time.
type SliceConfig struct {
	Enabled   bool
	Position  float64
	Thickness float64
	Scan      bool
	ScanSpeed float64
}

// VertexOut is the published per-vertex result of a tick.
type VertexOut struct {
	Pos     math4.Vec3
	W       float64
	Visible bool
	Color   colormap.RGB
}

// EdgeOut is the published per-edge result of a tick.
type EdgeOut struct {
	A, B           math4.Vec3
	Visible        bool
	ColorA, ColorB colormap.RGB
}

// Frame is the tick's published output. The pipeline owns the backing
// buffers and overwrites them in place; consumers read between ticks
// and must not mutate or retain them.
type Frame struct {
	Vertices   []VertexOut
	Edges      []EdgeOut
	MinW, MaxW float64
}

// shapeTransition morphs the displayed vertices from one shape to
// another; inert once progress reaches 1.
type shapeTransition struct {
	progress float64
	from     *polytope.Polytope
	to       *polytope.Polytope
}

// Pipeline owns all mutable transform state. It is single-writer:
// state changes go through the typed setters and are observed on the
// next Tick.
type Pipeline struct {
	log *zap.Logger

	shape polytope.Shape
	size  float64
	poly  *polytope.Polytope

	manual      math4.Angles
	autoVel     math4.Angles
	autoEnabled bool
	accum       math4.Angles

	proj    projection.Config
	slice   SliceConfig
	display Display

	morphRate  float64
	transition *shapeTransition

	cache *matrixCache

	// Last-tick values for the dirty check.
	lastTotal math4.Angles
	lastProj  projection.Config
	lastSlice SliceConfig
	lastShow  Display
	hasFrame  bool

	morphed  []math4.Vec4 // scratch for transition vertices
	frame    Frame
	computed uint64
}

// DefaultMorphRate advances a shape transition from 0 to 1 in half a
// second.
const DefaultMorphRate = 2.0

// New creates a pipeline showing the given shape. A nil logger
// disables logging.
func New(shape polytope.Shape, size float64, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Pipeline{
		log:       log,
		shape:     shape,
		size:      size,
		poly:      shape.Build(size),
		proj:      projection.Config{Mode: projection.Perspective, ViewDistance: 3},
		slice:     SliceConfig{Thickness: 0.5},
		display:   Display{ShowVertices: true, ShowEdges: true, ColorByW: true},
		morphRate: DefaultMorphRate,
		cache:     newMatrixCache(matrixCacheLimit),
	}
	log.Info("pipeline initialized",
		zap.Stringer("shape", shape),
		zap.Int("vertices", len(p.poly.Vertices)),
		zap.Int("edges", len(p.poly.Edges)),
	)
	return p
}

// Shape returns the active shape.
func (p *Pipeline) Shape() polytope.Shape { return p.shape }

// Polytope returns the active (target) polytope.
func (p *Pipeline) Polytope() *polytope.Polytope { return p.poly }

// Frame returns the most recently published frame.
func (p *Pipeline) Frame() *Frame { return &p.frame }

// SetShape switches the displayed shape, starting a morph transition
// from the previous one.
func (p *Pipeline) SetShape(shape polytope.Shape, size float64) {
	if shape == p.shape && size == p.size {
		return
	}
	next := shape.Build(size)
	p.transition = &shapeTransition{from: p.poly, to: next}
	p.shape = shape
	p.size = size
	p.poly = next
	p.log.Debug("shape changed",
		zap.Stringer("shape", shape),
		zap.Float64("size", size),
	)
}

// SetManualRotation sets the absolute manual rotation angles.
func (p *Pipeline) SetManualRotation(a math4.Angles) { p.manual = a }

// ManualRotation returns the absolute manual rotation angles.
func (p *Pipeline) ManualRotation() math4.Angles { return p.manual }

// SetAutoVelocities sets the six per-plane angular velocities in
// radians per second, integrated while auto-rotation is enabled.
func (p *Pipeline) SetAutoVelocities(v math4.Angles) { p.autoVel = v }

// SetAutoRotation enables or disables auto-rotation.
func (p *Pipeline) SetAutoRotation(enabled bool) { p.autoEnabled = enabled }

// ResetRotation clears both the manual angles and the accumulator.
func (p *Pipeline) ResetRotation() {
	p.manual = math4.Angles{}
	p.accum = math4.Angles{}
}

// SetProjection sets the projection configuration.
func (p *Pipeline) SetProjection(cfg projection.Config) { p.proj = cfg }

// Projection returns the projection configuration.
func (p *Pipeline) Projection() projection.Config { return p.proj }

// SetSlice sets the hyperplane slice configuration.
func (p *Pipeline) SetSlice(cfg SliceConfig) { p.slice = cfg }

// Slice returns the hyperplane slice configuration, including the
// scan-advanced position.
func (p *Pipeline) Slice() SliceConfig { return p.slice }

// SetDisplay sets the visibility toggles.
func (p *Pipeline) SetDisplay(d Display) { p.display = d }

// SetMorphRate sets the shape-transition speed in progress units per
// second.
func (p *Pipeline) SetMorphRate(rate float64) { p.morphRate = rate }

// ComputedTicks counts the ticks that performed transform work, i.e.
// were not skipped by the dirty check.
func (p *Pipeline) ComputedTicks() uint64 { return p.computed }

// TotalRotation returns the effective rotation, manual plus
// accumulated auto-rotation.
func (p *Pipeline) TotalRotation() math4.Angles {
	return p.accum.Add(p.manual)
}
