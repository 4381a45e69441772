package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"xtree/internal/config"
	"xtree/internal/fs"
	"xtree/internal/git"
)

// Renderer prints a depth-first, pre-order rendering of the filtered tree
// with optional size, disk-usage and git annotations.
type Renderer struct {
	opts     config.Options
	walker   *fs.Walker
	dirSizes map[string]int64
	summary  *git.Summary // nil when git annotation is unavailable
	w        io.Writer
	warn     io.Writer
	visited  *fs.VisitSet
}

// NewRenderer creates a renderer. dirSizes and summary may be nil when
// the corresponding option is off.
func NewRenderer(opts config.Options, walker *fs.Walker, dirSizes map[string]int64, summary *git.Summary, w, warn io.Writer) *Renderer {
	return &Renderer{
		opts:     opts,
		walker:   walker,
		dirSizes: dirSizes,
		summary:  summary,
		w:        w,
		warn:     warn,
		visited:  fs.NewVisitSet(),
	}
}

// Render prints the root path followed by its subtree. The root line
// carries the repository rollup status when git annotation is available.
func (r *Renderer) Render(root string) {
	line := Blue(root, r.opts.UseColor)
	if r.summary != nil {
		if st, ok := r.summary.Dirs[r.statusKey(root)]; ok {
			line += " " + Gray("("+string(st)+")", r.opts.UseColor)
		}
	}
	fmt.Fprintln(r.w, line)
	if r.opts.FollowSymlinks {
		r.visited.Enter(root)
	}
	r.printTree(root, 0, "")
}

func (r *Renderer) printTree(dir string, depth int, prefix string) {
	if r.opts.MaxDepth != -1 && depth > r.opts.MaxDepth {
		return
	}

	entries := r.walker.Entries(dir)
	for i, e := range entries {
		isLast := i == len(entries)-1
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		path := filepath.Join(dir, e.Name())

		if r.walker.IsDir(path, e) {
			r.printDir(path, e.Name(), prefix+connector)

			childPrefix := prefix + "│   "
			if isLast {
				childPrefix = prefix + "    "
			}
			if r.opts.FollowSymlinks && !r.visited.Enter(path) {
				continue
			}
			r.printTree(path, depth+1, childPrefix)
		} else {
			r.printFile(path, e, prefix+connector)
		}
	}
}

func (r *Renderer) printDir(path, name, lead string) {
	useColor := r.opts.UseColor
	line := lead + Blue(name, useColor)

	if r.opts.DiskUsage {
		if size, ok := r.dirSizes[path]; ok {
			line += " " + Gray("("+HumanSize(size)+")", useColor)
		}
	}

	if r.summary != nil {
		if st, ok := r.summary.Dirs[r.statusKey(path)]; ok {
			line += " " + Gray("("+string(st)+")", useColor)
		}
	}

	fmt.Fprintln(r.w, line)
}

func (r *Renderer) printFile(path string, e os.DirEntry, lead string) {
	useColor := r.opts.UseColor

	var info git.FileGitInfo
	tracked := false
	if r.summary != nil {
		info, tracked = r.summary.Files[r.statusKey(path)]
	}

	name := e.Name()
	var line string
	switch {
	case !tracked:
		line = lead + Green(name, useColor)
	case info.Ignored:
		line = lead + Gray(name, useColor)
	case staged(info):
		line = lead + Yellow(name, useColor)
	case unstaged(info):
		line = lead + Red(name, useColor)
	default:
		line = lead + Green(name, useColor)
	}

	if r.opts.ShowSize {
		fi, err := r.walker.Stat(path, e)
		if err != nil {
			fmt.Fprintf(r.warn, "Warning: failed to get size of %s: %v\n", path, err)
		} else {
			line += " " + Gray("("+HumanSize(fi.Size())+")", useColor)
		}
	}

	if tracked {
		status := "(" + string(info.Status) + ")"
		switch {
		case info.Ignored:
			line += " " + Gray(status, useColor)
		case staged(info):
			line += " " + Yellow(status, useColor)
		case unstaged(info):
			line += " " + Red(status, useColor)
		default:
			line += " " + Gray(status, useColor)
		}

		if meta := commitMeta(info); meta != "" {
			line += " " + Gray("("+meta+")", useColor)
		}
	}

	fmt.Fprintln(r.w, line)
}

// statusKey maps an on-disk path to its status-table key relative to the
// repository root.
func (r *Renderer) statusKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(r.summary.Root, abs)
	if err != nil {
		return ""
	}
	return git.NormalizePath(rel)
}

// staged reports an index-level change.
func staged(info git.FileGitInfo) bool {
	return info.Index != ' ' && info.Index != '?'
}

// unstaged reports a worktree-level change.
func unstaged(info git.FileGitInfo) bool {
	return info.Worktree != ' ' && info.Worktree != '?'
}

// commitMeta renders "author, date", or just whichever is present.
func commitMeta(info git.FileGitInfo) string {
	switch {
	case info.Author != "" && info.Date != "":
		return info.Author + ", " + info.Date
	case info.Author != "":
		return info.Author
	default:
		return info.Date
	}
}
