package cmd

import (
	"slices"
	"strings"

	"github.com/abhisek/triclass/internal/triangle"
)

// normalizeArgs keeps negative side lengths from being read as shorthand
// flags. When any numeric token starts with '-', all numeric tokens are
// moved, in order, behind a "--" terminator.
func normalizeArgs(args []string) []string {
	if slices.Contains(args, "--") || !slices.ContainsFunc(args, isNegativeNumber) {
		return args
	}

	rest := make([]string, 0, len(args)+1)
	var sides []string
	for _, a := range args {
		if isNumber(a) {
			sides = append(sides, a)
		} else {
			rest = append(rest, a)
		}
	}
	rest = append(rest, "--")
	return append(rest, sides...)
}

func isNumber(s string) bool {
	_, err := triangle.ParseSide(s)
	return err == nil
}

func isNegativeNumber(s string) bool {
	return strings.HasPrefix(s, "-") && isNumber(s)
}
