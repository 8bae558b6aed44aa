package internal

import (
	"strings"
)

// Escape replaces the four markup metacharacters in s with their entities.
// If s contains none of them, s itself is returned without copying.
func Escape(s string) string {
	first := strings.IndexAny(s, EscapeChars)
	if first < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + escapeGrowth)
	sb.WriteString(s[:first])

	for i := first; i < len(s); i++ {
		c := s[i]
		switch c {
		case CharQuote:
			sb.WriteString(EntityQuote)
		case CharAmpersand:
			sb.WriteString(EntityAmpersand)
		case CharLess:
			sb.WriteString(EntityLess)
		case CharGreater:
			sb.WriteString(EntityGreater)
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}
