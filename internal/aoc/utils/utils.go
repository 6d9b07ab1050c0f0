package utils

import (
	"iter"
	"strconv"
	"strings"
)

// Lines yields every line of input without its "\n" or "\r\n" ending.
// Other whitespace is kept.
func Lines(input string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(input) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}

// ToUint parses a non-negative decimal number that fits in bitSize bits.
// A single leading '+' is allowed.
func ToUint(s string, bitSize int) (uint, error) {
	digits, _ := strings.CutPrefix(s, "+")
	n, err := strconv.ParseUint(digits, 10, bitSize)
	if err != nil {
		return 0, err
	}

	return uint(n), nil
}
