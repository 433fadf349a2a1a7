package triangle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotANumber = errors.New("not a number")
	ErrSideCount  = errors.New("exactly 3 sides are required")
)

// ParseSide converts a textual side length into a float64. Integers,
// decimals and exponent forms are accepted. Magnitudes too large for a
// float64 parse as ±Inf. Hexadecimal forms are rejected.
func ParseSide(token string) (float64, error) {
	s := strings.TrimSpace(token)
	if isHex(s) {
		return 0, fmt.Errorf("%q: %w", token, ErrNotANumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%q: %w", token, ErrNotANumber)
	}
	return v, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// ParseSides parses exactly three tokens into side lengths.
func ParseSides(tokens []string) ([3]float64, error) {
	var sides [3]float64
	if len(tokens) != len(sides) {
		return sides, fmt.Errorf("got %d: %w", len(tokens), ErrSideCount)
	}
	for i, tok := range tokens {
		v, err := ParseSide(tok)
		if err != nil {
			return sides, fmt.Errorf("side_%d: %w", i+1, err)
		}
		sides[i] = v
	}
	return sides, nil
}

// ClassifyText classifies untyped input. Any token that is not a number
// yields "invalid".
func ClassifyText(a, b, c string) string {
	sides, err := ParseSides([]string{a, b, c})
	if err != nil {
		return Invalid
	}
	return Classify(sides[0], sides[1], sides[2])
}
