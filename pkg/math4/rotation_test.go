package math4

import (
	"math"
	"testing"
)

func matNearlyEqual(a, b Mat4, eps float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(a[r][c]-b[r][c]) > eps {
				return false
			}
		}
	}
	return true
}

func TestComposeEmptyIsIdentity(t *testing.T) {
	if got := Compose(); got != Identity() {
		t.Errorf("Compose() = %v, want identity", got)
	}
}

func TestRotationMatrixZeroAngles(t *testing.T) {
	got := RotationMatrix(Angles{})
	if !matNearlyEqual(got, Identity(), 1e-15) {
		t.Errorf("RotationMatrix(zero) = %v, want identity", got)
	}
}

func TestRotationMatrixIsOrthonormal(t *testing.T) {
	r := RotationMatrix(Angles{
		XY: math.Pi / 6,
		XZ: math.Pi / 7,
		XW: math.Pi / 5,
		YZ: math.Pi / 8,
		YW: math.Pi / 9,
		ZW: math.Pi / 10,
	})
	p := r.Transpose().Mul(r)
	if !matNearlyEqual(p, Identity(), 1e-12) {
		t.Fatalf("R^T R != I: %v", p)
	}
}

func TestRotationsDoNotCommute(t *testing.T) {
	a, b := 0.7, 1.1
	ab := Compose(RotXY(a), RotXW(b))
	ba := Compose(RotXW(b), RotXY(a))
	if matNearlyEqual(ab, ba, 1e-9) {
		t.Fatal("RotXY and RotXW commuted for generic angles")
	}
}

func TestRotXYQuarterTurn(t *testing.T) {
	// 90° in XY: (1,0,0,0) -> (0,1,0,0).
	o := RotXY(math.Pi / 2).MulVec(Vec4{1, 0, 0, 0})
	if math.Abs(o.X) > 1e-12 || math.Abs(o.Y-1) > 1e-12 {
		t.Fatalf("RotXY quarter turn: %+v", o)
	}
	if math.Abs(o.Length()-1) > 1e-12 {
		t.Fatalf("RotXY broke length: %.12g", o.Length())
	}
}

func TestRotXWSignConvention(t *testing.T) {
	// The Givens block convention gives x' = -w, w' = x at a quarter turn.
	o := RotXW(math.Pi / 2).MulVec(Vec4{-1, -1, -1, -1})
	want := Vec4{1, -1, -1, -1}
	if math.Abs(o.X-want.X) > 1e-12 || math.Abs(o.Y-want.Y) > 1e-12 ||
		math.Abs(o.Z-want.Z) > 1e-12 || math.Abs(o.W-want.W) > 1e-12 {
		t.Fatalf("RotXW(π/2)·(-1,-1,-1,-1) = %+v, want %+v", o, want)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec4{0.3, -1.2, 2.5, -0.7}
	r := RotationMatrix(Angles{XY: 0.4, XW: -1.3, YW: 2.2, ZW: 0.9})
	o := r.MulVec(v)
	if math.Abs(o.Length()-v.Length()) > 1e-12 {
		t.Fatalf("rotation changed length: %.12g vs %.12g", o.Length(), v.Length())
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := RotXZ(0.8)
	if got := m.Mul(Identity()); !matNearlyEqual(got, m, 1e-15) {
		t.Errorf("M * I != M: %v", got)
	}
	if got := Identity().Mul(m); !matNearlyEqual(got, m, 1e-15) {
		t.Errorf("I * M != M: %v", got)
	}
}
