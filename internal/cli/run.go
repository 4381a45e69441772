package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"xtree/internal/config"
	"xtree/internal/fs"
	"xtree/internal/git"
	"xtree/internal/output"
)

// Run executes one tree invocation against target, writing the rendering
// to stdout and warnings to stderr, and returns the process exit code.
func Run(ctx context.Context, opts config.Options, target string, stdout, stderr io.Writer) int {
	var summary *git.Summary
	if opts.GitStatus {
		repo, err := git.DetectRepository(target)
		switch {
		case errors.Is(err, git.ErrGitNotFound):
			fmt.Fprintln(stderr, "git not found in PATH. Ignoring --git.")
		case err != nil:
			fmt.Fprintln(stderr, "Not a git repository (or any parent). Ignoring --git.")
		default:
			summary = repo.Resolve(ctx)
			if len(summary.Branches) > 0 {
				fmt.Fprintf(stdout, "Branches: %s\n", strings.Join(summary.Branches, ", "))
			}
		}
	}

	walker := fs.NewWalker(opts, stderr)

	var dirSizes map[string]int64
	if opts.DiskUsage {
		dirSizes = walker.DirSizes(target)
	}

	renderer := output.NewRenderer(opts, walker, dirSizes, summary, stdout, stderr)
	renderer.Render(target)

	if opts.ShowStats {
		st := walker.ProjectStats(target)
		line := fmt.Sprintf("Files: %d, Lines: %d", st.Files, st.Lines)
		fmt.Fprintln(stdout, output.Gray(line, opts.UseColor))
	}

	return 0
}
