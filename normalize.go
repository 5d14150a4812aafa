package line

import "strings"

// Normalize trims the line and squeezes every run of spaces down to one.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "  ") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	lastWasSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if lastWasSpace {
				continue
			}
			lastWasSpace = true
		} else {
			lastWasSpace = false
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
