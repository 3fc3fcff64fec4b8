// Package projection maps 4D points into 3D display space.
package projection

import (
	"fmt"

	"github.com/Faultbox/hyperscope/pkg/math4"
)

// Mode selects one of the three 4D→3D projection schemes.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
	Stereographic
)

// String returns the mode's config id.
func (m Mode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	case Stereographic:
		return "stereographic"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode resolves a config id back to its Mode.
func ParseMode(id string) (Mode, error) {
	switch id {
	case "perspective":
		return Perspective, nil
	case "orthographic":
		return Orthographic, nil
	case "stereographic":
		return Stereographic, nil
	default:
		return 0, fmt.Errorf("unknown projection mode %q", id)
	}
}

// Config selects the projection applied each tick.
type Config struct {
	Mode         Mode
	ViewDistance float64
}

// Denominators below this magnitude use the finite fallback instead of
// a near-infinite divide; a momentarily degenerate vertex must not
// halt the frame.
const denomEpsilon = 1e-4

// The fallback scales the 3D part by this factor as a finite stand-in
// for the point at infinity.
const fallbackScale = 1000

// Project maps p through the configured mode. Stereographic projects
// from the pole at w = ViewDistance.
func Project(p math4.Vec4, cfg Config) math4.Vec3 {
	switch cfg.Mode {
	case Orthographic:
		return ProjectOrthographic(p)
	case Stereographic:
		return ProjectStereographic(p, cfg.ViewDistance)
	default:
		return ProjectPerspective(p, cfg.ViewDistance)
	}
}

// ProjectPerspective scales x, y, z by viewDistance / (viewDistance - w),
// shrinking points far in +w like a pinhole camera shrinks distant
// objects.
func ProjectPerspective(p math4.Vec4, viewDistance float64) math4.Vec3 {
	d := viewDistance - p.W
	if d > -denomEpsilon && d < denomEpsilon {
		return p.XYZ().Scale(fallbackScale)
	}
	return p.XYZ().Scale(viewDistance / d)
}

// ProjectOrthographic drops w.
func ProjectOrthographic(p math4.Vec4) math4.Vec3 {
	return p.XYZ()
}

// ProjectStereographic divides x, y, z by (projectionPoint - w), the
// angle-preserving map from the 3-sphere.
func ProjectStereographic(p math4.Vec4, projectionPoint float64) math4.Vec3 {
	d := projectionPoint - p.W
	if d > -denomEpsilon && d < denomEpsilon {
		return p.XYZ().Scale(fallbackScale)
	}
	return p.XYZ().Scale(1 / d)
}
