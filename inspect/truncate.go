package inspect

// Ellipsize bounds s to maxChars Unicode code points, appending a single
// '…' when anything was cut. A string already within the bound is returned
// unchanged. Counting is by code point, never by byte.
func Ellipsize(s string, maxChars int) string {
	count := 0
	for i := range s {
		if count == maxChars {
			return s[:i] + "…"
		}
		count++
	}
	return s
}
