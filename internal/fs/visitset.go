package fs

import "path/filepath"

// VisitSet tracks directories already entered, keyed by resolved real
// path. It stops symlink cycles from recursing forever when follow-links
// is enabled.
type VisitSet struct {
	seen map[string]bool
}

// NewVisitSet creates an empty visit set.
func NewVisitSet() *VisitSet {
	return &VisitSet{seen: make(map[string]bool)}
}

// Enter marks path as visited and reports whether it had not been seen
// before. Paths that cannot be resolved are tracked verbatim.
func (v *VisitSet) Enter(path string) bool {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		real = path
	}
	if v.seen[real] {
		return false
	}
	v.seen[real] = true
	return true
}
