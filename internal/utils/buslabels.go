// Package utils holds small helpers shared across the engine: natural bus
// label ordering and stop name folding.
package utils

import (
	"strconv"
	"strings"
)

// CompareBusLabels orders bus labels the way riders read them: the numeric
// prefix compared numerically, then the letter suffix. So "2" sorts before
// "10", and "7" before "7а". A label without a numeric prefix sorts first.
// Anything after an underscore is ignored.
func CompareBusLabels(a, b string) int {
	numA, suffixA := splitBusLabel(a)
	numB, suffixB := splitBusLabel(b)
	if numA != numB {
		if numA < numB {
			return -1
		}
		return 1
	}
	return strings.Compare(suffixA, suffixB)
}

func splitBusLabel(label string) (int, string) {
	label, _, _ = strings.Cut(label, "_")
	i := 0
	for i < len(label) && label[i] >= '0' && label[i] <= '9' {
		i++
	}
	num, _ := strconv.Atoi(label[:i])
	return num, label[i:]
}
