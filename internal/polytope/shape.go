package polytope

import "fmt"

// Shape identifies one of the catalog polytopes. Each variant carries
// its own factory via Build.
type Shape int

const (
	Tesseract Shape = iota
	SixteenCell
	TwentyFourCell
	FiveCell
	CliffordTorus
	Hypersphere
	SixHundredCell
	Duoprism33
	Duoprism44
)

// All lists the catalog in display order.
var All = []Shape{
	Tesseract,
	SixteenCell,
	TwentyFourCell,
	FiveCell,
	CliffordTorus,
	Hypersphere,
	SixHundredCell,
	Duoprism33,
	Duoprism44,
}

// String returns the shape's catalog id.
func (s Shape) String() string {
	switch s {
	case Tesseract:
		return "tesseract"
	case SixteenCell:
		return "16-cell"
	case TwentyFourCell:
		return "24-cell"
	case FiveCell:
		return "5-cell"
	case CliffordTorus:
		return "clifford-torus"
	case Hypersphere:
		return "hypersphere"
	case SixHundredCell:
		return "600-cell"
	case Duoprism33:
		return "duoprism-3-3"
	case Duoprism44:
		return "duoprism-4-4"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Parse resolves a catalog id back to its Shape.
func Parse(id string) (Shape, error) {
	for _, s := range All {
		if s.String() == id {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", id)
}

// Build constructs the shape at the given size. Construction is
// deterministic; the result is treated as immutable by callers.
func (s Shape) Build(size float64) *Polytope {
	switch s {
	case Tesseract:
		return NewTesseract(size)
	case SixteenCell:
		return NewSixteenCell(size)
	case TwentyFourCell:
		return NewTwentyFourCell(size)
	case FiveCell:
		return NewFiveCell(size)
	case CliffordTorus:
		return NewCliffordTorus(size)
	case Hypersphere:
		return NewHypersphere(size)
	case SixHundredCell:
		return NewSixHundredCell(size)
	case Duoprism33:
		return NewDuoprism(3, 3, size)
	case Duoprism44:
		return NewDuoprism(4, 4, size)
	default:
		panic(fmt.Sprintf("polytope: unknown shape %d", int(s)))
	}
}
