package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName normalizes a stop name for comparison: Unicode case folding plus
// the ё→е collapse the speech layer applies to spoken names. Display names
// are never folded for output, only for matching.
func FoldName(name string) string {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.ReplaceAll(folded, "ё", "е")
}

// SameName reports whether two display names refer to the same spoken name.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}
