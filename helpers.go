package themekit

import (
	"net/url"
	"strings"
)

// decodeSlug percent-decodes a slug, falling back to the raw value when the
// encoding is malformed. Resolvers use it to offer a decoded variant ahead
// of the raw one when the two differ.
func decodeSlug(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// isSafeRelative reports whether name is a plain relative identifier:
// no traversal components, no absolute path, no drive prefix. Template
// overrides that fail this check are dropped from the candidate list.
func isSafeRelative(name string) bool {
	switch {
	case name == "":
		return false
	case strings.Contains(name, ".."):
		return false
	case strings.Contains(name, "./"):
		return false
	case strings.HasPrefix(name, "/"):
		return false
	case strings.Contains(name, ":"):
		return false
	}
	return true
}

// trimExtension strips leading dots from an extension suffix so "twig" and
// ".twig" configure the same value.
func trimExtension(ext string) string {
	return strings.TrimLeft(strings.TrimSpace(ext), ".")
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
