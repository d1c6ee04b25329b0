package schemanorm

import "github.com/google/go-cmp/cmp"

// Equal reports whether two schema documents are structurally identical.
func Equal(want, got any) bool {
	return cmp.Equal(want, got)
}

// Diff returns a human-readable structural diff between two schema documents,
// empty when they are equal. Intended for test failure messages after both
// sides have been normalized.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}
