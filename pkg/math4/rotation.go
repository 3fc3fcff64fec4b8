package math4

import "math"

// Angles holds rotation angles in radians for the six coordinate planes
// of 4D space. A rotation in n dimensions is parametrized by the 2D plane
// it acts in; in 4D there are six such planes.
type Angles struct {
	XY, XZ, XW, YZ, YW, ZW float64
}

// Add returns the per-plane sum of two angle sets.
func (a Angles) Add(other Angles) Angles {
	return Angles{
		XY: a.XY + other.XY,
		XZ: a.XZ + other.XZ,
		XW: a.XW + other.XW,
		YZ: a.YZ + other.YZ,
		YW: a.YW + other.YW,
		ZW: a.ZW + other.ZW,
	}
}

// Scale returns the angles multiplied per-plane by s, e.g. angular
// velocities integrated over a time step.
func (a Angles) Scale(s float64) Angles {
	return Angles{
		XY: a.XY * s,
		XZ: a.XZ * s,
		XW: a.XW * s,
		YZ: a.YZ * s,
		YW: a.YW * s,
		ZW: a.ZW * s,
	}
}

// Planes returns the six angles in the canonical plane order
// XY, XZ, XW, YZ, YW, ZW.
func (a Angles) Planes() [6]float64 {
	return [6]float64{a.XY, a.XZ, a.XW, a.YZ, a.YW, a.ZW}
}

// Each generator places a single Givens block (cosθ, -sinθ; sinθ, cosθ)
// at the two axes named by the plane and leaves the orthogonal
// complement fixed. Under RotXW, x' = x·cosθ - w·sinθ and
// w' = x·sinθ + w·cosθ.

// RotXY returns a rotation in the XY plane.
func RotXY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// RotXZ returns a rotation in the XZ plane.
func RotXZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[0][0], m[0][2] = c, -s
	m[2][0], m[2][2] = s, c
	return m
}

// RotXW returns a rotation in the XW plane.
func RotXW(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[0][0], m[0][3] = c, -s
	m[3][0], m[3][3] = s, c
	return m
}

// RotYZ returns a rotation in the YZ plane.
func RotYZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotYW returns a rotation in the YW plane.
func RotYW(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[1][1], m[1][3] = c, -s
	m[3][1], m[3][3] = s, c
	return m
}

// RotZW returns a rotation in the ZW plane.
func RotZW(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[2][2], m[2][3] = c, -s
	m[3][2], m[3][3] = s, c
	return m
}

// Compose folds the given matrices left to right starting from identity.
// 4D rotations do not commute, so callers must always pass the planes in
// one fixed order; RotationMatrix is the canonical composition.
func Compose(ms ...Mat4) Mat4 {
	result := Identity()
	for _, m := range ms {
		result = result.Mul(m)
	}
	return result
}

// RotationMatrix composes the six plane rotations in the canonical
// order XY, XZ, XW, YZ, YW, ZW.
func RotationMatrix(a Angles) Mat4 {
	return Compose(
		RotXY(a.XY),
		RotXZ(a.XZ),
		RotXW(a.XW),
		RotYZ(a.YZ),
		RotYW(a.YW),
		RotZW(a.ZW),
	)
}
