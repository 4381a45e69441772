package git

import (
	"path/filepath"
	"strings"
)

// FileGitInfo records the working-tree state of a single path.
// Index and Worktree hold the two porcelain status characters; Status is
// the derived display code. Keys into the status tables use forward
// slashes with trailing slashes stripped, relative to the repository
// root, the root itself being the empty string.
type FileGitInfo struct {
	Index    byte
	Worktree byte
	Status   byte
	Ignored  bool
	Author   string
	Date     string // YYYY-MM-DD
}

// Summary is the full result of resolving a repository's state: per-file
// status records, the per-directory rollup, and the branch list.
type Summary struct {
	Root     string
	Files    map[string]FileGitInfo
	Dirs     map[string]byte
	Branches []string
}

// statusPriority orders display codes for the directory rollup:
// Modified > Added > Deleted > Renamed > Copied > Untracked > unknown >
// Ignored.
func statusPriority(c byte) int {
	switch c {
	case 'M':
		return 5
	case 'A':
		return 4
	case 'D':
		return 3
	case 'R':
		return 2
	case 'C':
		return 1
	case 'U':
		return 0
	case 'I':
		return -2
	default:
		return -1
	}
}

// NormalizePath converts a path to the status-table key form: forward
// slashes, no trailing slash, "" for the root.
func NormalizePath(p string) string {
	p = filepath.ToSlash(p)
	for strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	if p == "." {
		return ""
	}
	return p
}
