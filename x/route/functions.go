package route

import "strings"

// Normalizer transforms a raw request path into its canonical form.
// Callers may substitute their own; NormalizePath is the default.
type Normalizer func(path string) string

// NormalizePath strips a trailing slash (except for the root path)
// and collapses consecutive slashes. Pure and deterministic.
func NormalizePath(path string) string {
	p := strings.TrimSpace(path)
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

// MatchPattern reports whether a registered path pattern matches a
// request path. Patterns may contain brace-delimited placeholder
// segments ("{id}") which match any single segment; segment counts
// must agree. Patterns without placeholders compare literally, modulo
// trailing slashes.
func MatchPattern(pattern, path string) bool {
	if !strings.Contains(pattern, "{") || !strings.Contains(pattern, "}") {
		return strings.TrimRight(pattern, "/") == strings.TrimRight(path, "/")
	}

	patternSegments := splitSegments(pattern)
	pathSegments := splitSegments(path)
	if len(patternSegments) != len(pathSegments) {
		return false
	}

	for i, seg := range patternSegments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			continue
		}
		if seg != pathSegments[i] {
			return false
		}
	}

	return true
}

func splitSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
