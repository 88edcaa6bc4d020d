package textutil

import (
	"strings"
	"unicode"
)

// SanitizeEventID converts an event identifier into a filesystem-safe token.
// Letters, digits, underscores, hyphens, and dots pass through unchanged;
// every other character becomes an underscore. The input is trimmed first.
func SanitizeEventID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
