package show

import "strings"

// Key produces the canonical comparison key for a display title: lowercased
// with every character outside [a-z0-9] removed. All cross-source identity
// comparisons (guide vs. catalog vs. scheduler) go through this. No locale
// awareness and no unicode folding, deliberately.
func Key(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SameName reports whether two titles normalize to the same non-empty key.
func SameName(a, b string) bool {
	key := Key(a)
	return key != "" && key == Key(b)
}

// MatchAny reports whether target normalizes to the same non-empty key as
// any of the candidates.
func MatchAny(target string, candidates ...string) bool {
	key := Key(target)
	if key == "" {
		return false
	}
	for _, c := range candidates {
		if Key(c) == key {
			return true
		}
	}
	return false
}
