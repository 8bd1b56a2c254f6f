package rio

import "slices"

// HasPrefix reports whether s begins with prefix, comparing elements for
// equality. Every slice has the empty prefix.
func HasPrefix[T comparable](s, prefix []T) bool {
	return len(s) >= len(prefix) && slices.Equal(s[:len(prefix)], prefix)
}

// HasSuffix reports whether s ends with suffix, comparing elements for
// equality. Every slice has the empty suffix.
func HasSuffix[T comparable](s, suffix []T) bool {
	return len(s) >= len(suffix) && slices.Equal(s[len(s)-len(suffix):], suffix)
}

// DropPrefix returns s without the leading prefix. If s does not begin with
// prefix, s is returned unchanged. The result aliases s, like
// strings.TrimPrefix.
//
// Dropping is single-shot: DropPrefix([]byte("aab"), []byte("a")) leaves
// "ab", not "b".
//
// Example:
//
//	rest := rio.DropPrefix(path, []string{"api", "v2"})
func DropPrefix[T comparable](s, prefix []T) []T {
	if !HasPrefix(s, prefix) {
		return s
	}

	return s[len(prefix):]
}

// DropSuffix returns s without the trailing suffix. If s does not end with
// suffix, s is returned unchanged. The result aliases s, like
// strings.TrimSuffix.
//
// Dropping is single-shot, as with DropPrefix.
//
// Example:
//
//	line := rio.DropSuffix(raw, []byte("\r"))
func DropSuffix[T comparable](s, suffix []T) []T {
	if !HasSuffix(s, suffix) {
		return s
	}

	return s[:len(s)-len(suffix)]
}
