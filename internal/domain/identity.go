package domain

import (
	"regexp"
	"strings"
)

var placeIDSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeKey reduces a place name to its dedup identity: lower-case ASCII
// letters and digits only, with one leading "the" removed. Distinct places
// that collapse to the same key are treated as one.
func NormalizeKey(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return strings.TrimPrefix(b.String(), "the")
}

// PlaceID derives a stable slug from a place name and its city.
func PlaceID(name, city string) string {
	slug := placeIDSeparator.ReplaceAllString(strings.ToLower(name+"-"+city), "-")
	return strings.Trim(slug, "-")
}

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
