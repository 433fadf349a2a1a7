package triangle

// Invalid is the result for side lengths that do not form a triangle.
const Invalid = "invalid"

// Shape is the side-equality facet of a classification.
type Shape int

const (
	ShapeScalene Shape = iota
	ShapeIsosceles
	ShapeEquilateral
)

// String returns the lowercase label used in classification results.
func (s Shape) String() string {
	switch s {
	case ShapeEquilateral:
		return "equilateral"
	case ShapeIsosceles:
		return "isosceles"
	default:
		return "scalene"
	}
}

// Classification is the outcome of analyzing three side lengths.
// Shape and Right are meaningful only when Valid is true.
type Classification struct {
	Valid bool
	Shape Shape
	Right bool
}

// String renders the classification as "invalid", "<shape>" or
// "right <shape>".
func (c Classification) String() string {
	if !c.Valid {
		return Invalid
	}
	if c.Right {
		return "right " + c.Shape.String()
	}
	return c.Shape.String()
}
