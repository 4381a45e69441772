package fs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"xtree/internal/config"
)

// Walker enumerates, filters and sorts directory entries and computes the
// recursive size and line-count aggregates the renderer consumes. All
// filesystem errors are reported as warnings on the diagnostic writer and
// the offending entry contributes nothing.
type Walker struct {
	opts config.Options
	warn io.Writer
}

// Stats holds recursive project totals.
type Stats struct {
	Files int64
	Lines int64
}

// NewWalker creates a walker writing warnings to warn.
func NewWalker(opts config.Options, warn io.Writer) *Walker {
	return &Walker{opts: opts, warn: warn}
}

// Entries returns the filtered, sorted immediate children of dir.
// Dotfiles are excluded unless ShowHidden is set, names matching an
// ignore pattern (exact name or extension) are excluded, and symbolic
// links are excluded unless FollowSymlinks is set. Directories sort
// before files, lexicographic within each group.
func (w *Walker) Entries(dir string) []os.DirEntry {
	all, err := os.ReadDir(dir)
	if err != nil {
		w.warnf("cannot read directory %s: %v", dir, err)
		return nil
	}

	entries := make([]os.DirEntry, 0, len(all))
	for _, e := range all {
		name := e.Name()
		if !w.opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if w.shouldIgnore(name) {
			continue
		}
		if e.Type()&os.ModeSymlink != 0 && !w.opts.FollowSymlinks {
			continue
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di := w.IsDir(filepath.Join(dir, entries[i].Name()), entries[i])
		dj := w.IsDir(filepath.Join(dir, entries[j].Name()), entries[j])
		if di != dj {
			return di
		}
		return entries[i].Name() < entries[j].Name()
	})

	return entries
}

// IsDir reports whether the entry is a directory, resolving symbolic
// links when FollowSymlinks is set.
func (w *Walker) IsDir(path string, d os.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&os.ModeSymlink != 0 && w.opts.FollowSymlinks {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	}
	return false
}

// Stat returns file info for an entry, following the link for symlinked
// entries.
func (w *Walker) Stat(path string, d os.DirEntry) (os.FileInfo, error) {
	if d.Type()&os.ModeSymlink != 0 {
		return os.Stat(path)
	}
	return d.Info()
}

// DirSizes computes the aggregate byte size of every directory reachable
// under root, keyed by path as visited. Only the symlink policy applies;
// hidden and ignored entries still count toward totals.
func (w *Walker) DirSizes(root string) map[string]int64 {
	sizes := make(map[string]int64)
	visited := NewVisitSet()
	visited.Enter(root)
	w.dirSize(root, sizes, visited)
	return sizes
}

func (w *Walker) dirSize(dir string, sizes map[string]int64, visited *VisitSet) int64 {
	all, err := os.ReadDir(dir)
	if err != nil {
		w.warnf("cannot read directory %s: %v", dir, err)
		sizes[dir] = 0
		return 0
	}

	var total int64
	for _, e := range all {
		path := filepath.Join(dir, e.Name())
		if e.Type()&os.ModeSymlink != 0 && !w.opts.FollowSymlinks {
			continue
		}
		info, err := w.Stat(path, e)
		if err != nil {
			w.warnf("cannot access %s: %v", path, err)
			continue
		}
		switch {
		case info.IsDir():
			if w.opts.FollowSymlinks && !visited.Enter(path) {
				continue
			}
			total += w.dirSize(path, sizes, visited)
		case info.Mode().IsRegular():
			total += info.Size()
		}
	}

	sizes[dir] = total
	return total
}

// ProjectStats counts regular files and their lines under root,
// honoring the same hidden/ignore/symlink filters as Entries. A readable
// file contributes its newline count plus one.
func (w *Walker) ProjectStats(root string) Stats {
	visited := NewVisitSet()
	visited.Enter(root)
	return w.stats(root, visited)
}

func (w *Walker) stats(dir string, visited *VisitSet) Stats {
	var st Stats
	for _, e := range w.Entries(dir) {
		path := filepath.Join(dir, e.Name())
		info, err := w.Stat(path, e)
		if err != nil {
			w.warnf("cannot access %s: %v", path, err)
			continue
		}
		switch {
		case info.IsDir():
			if w.opts.FollowSymlinks && !visited.Enter(path) {
				continue
			}
			sub := w.stats(path, visited)
			st.Files += sub.Files
			st.Lines += sub.Lines
		case info.Mode().IsRegular():
			st.Files++
			lines, err := countLines(path)
			if err != nil {
				w.warnf("cannot read %s: %v", path, err)
				continue
			}
			st.Lines += lines
		}
	}
	return st
}

func countLines(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var n int64
	buf := make([]byte, 32*1024)
	for {
		c, err := f.Read(buf)
		n += int64(bytes.Count(buf[:c], []byte{'\n'}))
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	return n + 1, nil
}

// shouldIgnore matches a filename against the ignore patterns, either as
// an exact name or by extension. A leading dot alone does not make an
// extension, so ".gitignore" only matches the exact-name form.
func (w *Walker) shouldIgnore(name string) bool {
	var ext string
	if i := strings.LastIndex(name, "."); i > 0 {
		ext = name[i+1:]
	}
	for _, pat := range w.opts.IgnorePatterns {
		if name == pat {
			return true
		}
		if ext != "" && ext == pat {
			return true
		}
	}
	return false
}

func (w *Walker) warnf(format string, args ...any) {
	fmt.Fprintf(w.warn, "Warning: "+format+"\n", args...)
}
