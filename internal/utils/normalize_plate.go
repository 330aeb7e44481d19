package utils

import "strings"

// NormalizePlate canonicalizes a vehicle plate for storage: surrounding and
// inner whitespace removed, letters uppercased. Korean plate characters pass
// through untouched.
func NormalizePlate(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}
