package git

import (
	"context"
	"sort"
	"strings"
)

// logBatchSize is the number of paths attributed per git log query.
const logBatchSize = 50

// Resolve gathers the branch list, per-path working-tree status, ignored
// paths, last-commit author/date, and the per-directory status rollup.
// Individual queries that fail degrade to empty results; Resolve itself
// never fails once the repository has been detected.
func (r *Repository) Resolve(ctx context.Context) *Summary {
	sum := &Summary{
		Root:  r.Root,
		Files: make(map[string]FileGitInfo),
		Dirs:  make(map[string]byte),
	}

	sum.Branches = r.branches(ctx)
	r.parseStatus(ctx, sum.Files)
	r.markIgnored(ctx, sum.Files)
	r.enrichLastCommit(ctx, sum.Files)
	rollupDirs(sum.Files, sum.Dirs)

	return sum
}

// branches lists all branches, one per line, in the order git reports
// them. The current-branch marker is stripped; remote branches keep their
// remotes/ prefix.
func (r *Repository) branches(ctx context.Context) []string {
	out, err := r.cmd.Output(ctx, "branch", "--all", "--no-color")
	if err != nil {
		return nil
	}

	var branches []string
	for _, line := range strings.Split(out, "\n") {
		b := strings.TrimSpace(line)
		b = strings.TrimSpace(strings.TrimPrefix(b, "*"))
		if b != "" {
			branches = append(branches, b)
		}
	}
	return branches
}

// parseStatus fills files from porcelain status output. The display
// status is the worktree code when set, else the index code; untracked
// entries get code U. Rename lines record the target path. The last line
// for a given path wins.
func (r *Repository) parseStatus(ctx context.Context, files map[string]FileGitInfo) {
	out, err := r.cmd.Output(ctx, "status", "--porcelain")
	if err != nil {
		return
	}

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}

		var info FileGitInfo
		var path string
		switch {
		case strings.HasPrefix(line, "??"):
			info = FileGitInfo{Index: ' ', Worktree: '?', Status: 'U'}
			if len(line) > 3 {
				path = line[3:]
			}
		case len(line) >= 3:
			info.Index = line[0]
			info.Worktree = line[1]
			if info.Worktree != ' ' {
				info.Status = info.Worktree
			} else {
				info.Status = info.Index
			}
			path = line[3:]
			if i := strings.Index(path, " -> "); i >= 0 {
				path = path[i+4:]
			}
		default:
			continue
		}

		path = NormalizePath(strings.TrimSpace(path))
		if path == "" {
			continue
		}
		files[path] = info
	}
}

// markIgnored lists untracked paths matched by exclude rules and marks
// them ignored. Ignored status takes final precedence over whatever the
// porcelain status assigned.
func (r *Repository) markIgnored(ctx context.Context, files map[string]FileGitInfo) {
	out, err := r.cmd.Output(ctx, "ls-files", "--others", "-i", "--exclude-standard")
	if err != nil {
		return
	}

	for _, line := range strings.Split(out, "\n") {
		path := NormalizePath(strings.TrimSpace(line))
		if path == "" {
			continue
		}
		info, ok := files[path]
		if !ok {
			info = FileGitInfo{Index: ' ', Worktree: ' '}
		}
		info.Ignored = true
		info.Status = 'I'
		files[path] = info
	}
}

// enrichLastCommit fills author and date for every path in the status
// table. Paths are queried in batches of logBatchSize; a batch whose
// output is empty or spans several lines cannot be attributed to a single
// commit, so those paths are retried one by one. Paths with no commit
// keep empty author/date.
func (r *Repository) enrichLastCommit(ctx context.Context, files map[string]FileGitInfo) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for start := 0; start < len(paths); start += logBatchSize {
		end := min(start+logBatchSize, len(paths))
		batch := paths[start:end]

		out, err := r.lastCommit(ctx, batch)
		ambiguous := err != nil || out == "" ||
			strings.Contains(strings.TrimRight(out, "\n"), "\n")
		if ambiguous {
			for _, p := range batch {
				single, err := r.lastCommit(ctx, []string{p})
				if err != nil {
					continue
				}
				if author, date, ok := splitAuthorDate(single); ok {
					setAuthorDate(files, p, author, date)
				}
			}
			continue
		}

		if author, date, ok := splitAuthorDate(out); ok {
			for _, p := range batch {
				setAuthorDate(files, p, author, date)
			}
		}
	}
}

func (r *Repository) lastCommit(ctx context.Context, paths []string) (string, error) {
	args := append([]string{"log", "-1", "--format=%an|%ad", "--date=short", "--"}, paths...)
	return r.cmd.Output(ctx, args...)
}

// splitAuthorDate parses a single "author|date" line, truncating the date
// to a 10 character calendar date.
func splitAuthorDate(out string) (author, date string, ok bool) {
	out = strings.TrimRight(out, "\n")
	author, date, ok = strings.Cut(out, "|")
	if !ok {
		return "", "", false
	}
	date = strings.TrimSpace(date)
	if len(date) > 10 {
		date = date[:10]
	}
	return author, date, true
}

func setAuthorDate(files map[string]FileGitInfo, path, author, date string) {
	info, ok := files[path]
	if !ok {
		return
	}
	info.Author = author
	info.Date = date
	files[path] = info
}

// rollupDirs propagates each file's status to every ancestor directory up
// to and including the repository root (the empty key), keeping the
// highest-priority status per directory.
func rollupDirs(files map[string]FileGitInfo, dirs map[string]byte) {
	for path, info := range files {
		st := info.Status
		dir := path
		for {
			if i := strings.LastIndex(dir, "/"); i >= 0 {
				dir = dir[:i]
			} else {
				dir = ""
			}
			if cur, ok := dirs[dir]; !ok || statusPriority(st) > statusPriority(cur) {
				dirs[dir] = st
			}
			if dir == "" {
				break
			}
		}
	}
}
