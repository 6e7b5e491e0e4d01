package util

import (
	"regexp"
	"strings"
)

// Removed in this order, every occurrence, before the number is extracted.
var numericNoise = []string{"$", ",", "%", "€", ":", "kg", "approx.", "N/A", "missing"}

var numberPattern = regexp.MustCompile(`-?\d+\.?\d*`)

func StripSymbols(input string) string {
	s := input
	for _, sym := range numericNoise {
		s = strings.ReplaceAll(s, sym, "")
	}
	return s
}

// ExtractNumber returns the first numeric literal in input.
func ExtractNumber(input string) (string, bool) {
	m := numberPattern.FindString(input)
	if m == "" {
		return "", false
	}
	return m, true
}

// NormalizeNumeric trims input, strips the known currency and unit symbols and
// returns the first numeric literal left over.
func NormalizeNumeric(input string) (string, bool) {
	return ExtractNumber(StripSymbols(strings.TrimSpace(input)))
}
