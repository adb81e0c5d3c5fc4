package logutil

// TruncateForLog keeps at most maxLen characters of s and marks the cut with
// "...". It never splits a multi-byte character.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
