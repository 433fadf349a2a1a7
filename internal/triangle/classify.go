// Package triangle classifies triangles by their side lengths.
package triangle

// Classify returns the category label for a triangle with sides a, b and c:
// "equilateral", "isosceles", "scalene", one of the latter two prefixed by
// "right ", or "invalid". Argument order does not matter.
func Classify(a, b, c float64) string {
	return Analyze(a, b, c).String()
}

// Analyze classifies the triangle with sides a, b and c.
//
// All comparisons are exact. Sides that are equal only up to floating point
// error are treated as different.
func Analyze(a, b, c float64) Classification {
	// NaN fails every comparison, so it is rejected here too.
	if !(a > 0 && b > 0 && c > 0) {
		return Classification{}
	}
	// Strict inequality rejects degenerate (flat) triangles.
	if !(a+b > c && a+c > b && b+c > a) {
		return Classification{}
	}

	if a == b && a == c {
		return Classification{Valid: true, Shape: ShapeEquilateral}
	}

	result := Classification{Valid: true, Right: isRight(a, b, c)}
	if a == b || a == c || b == c {
		result.Shape = ShapeIsosceles
	} else {
		result.Shape = ShapeScalene
	}
	return result
}

// isRight reports whether any assignment of the sides satisfies x²+y²=z².
func isRight(a, b, c float64) bool {
	a2, b2, c2 := a*a, b*b, c*c
	return a2+b2 == c2 || a2+c2 == b2 || b2+c2 == a2
}
