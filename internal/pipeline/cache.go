package pipeline

import (
	"math"

	"github.com/Faultbox/hyperscope/pkg/math4"
)

// matrixCacheLimit bounds the rotation-matrix cache; on overflow the
// whole cache is cleared.
const matrixCacheLimit = 100

// matrixKey quantizes the six plane angles to 3 decimals. A packed
// integer key avoids per-tick string allocation in the hot path.
type matrixKey [6]int32

func quantizeAngle(a float64) int32 {
	return int32(math.Round(a * 1000))
}

func keyFor(a math4.Angles) matrixKey {
	p := a.Planes()
	var k matrixKey
	for i, v := range p {
		k[i] = quantizeAngle(v)
	}
	return k
}

// matrixCache memoizes composed rotation matrices across ticks. The
// matrix is built from the quantized angles so equal keys always map
// to bit-identical matrices.
type matrixCache struct {
	entries map[matrixKey]math4.Mat4
	limit   int
}

func newMatrixCache(limit int) *matrixCache {
	return &matrixCache{
		entries: make(map[matrixKey]math4.Mat4, limit),
		limit:   limit,
	}
}

func (c *matrixCache) lookup(a math4.Angles) math4.Mat4 {
	k := keyFor(a)
	if m, ok := c.entries[k]; ok {
		return m
	}
	m := math4.RotationMatrix(math4.Angles{
		XY: float64(k[0]) / 1000,
		XZ: float64(k[1]) / 1000,
		XW: float64(k[2]) / 1000,
		YZ: float64(k[3]) / 1000,
		YW: float64(k[4]) / 1000,
		ZW: float64(k[5]) / 1000,
	})
	if len(c.entries) >= c.limit {
		c.entries = make(map[matrixKey]math4.Mat4, c.limit)
	}
	c.entries[k] = m
	return m
}

func (c *matrixCache) len() int { return len(c.entries) }
