// Place for pure domain logic that doesn't depend on Gin/GORM.
package core

import "strings"

// NormalizeName trims surrounding whitespace from a display name and
// uppercases the first letter so stored names render consistently.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
