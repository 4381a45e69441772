package git

import (
	"context"
	"fmt"
	"os/exec"
)

// Commander runs a single git subcommand and captures its stdout. The
// resolver treats git as a read-only oracle behind this seam so the
// parsing logic can be exercised without spawning processes.
type Commander interface {
	Output(ctx context.Context, args ...string) (string, error)
}

type execCommander struct {
	dir string
}

func (e execCommander) Output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.dir

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s failed: %s", args[0], exitErr.Stderr)
		}
		return "", fmt.Errorf("git %s failed: %v", args[0], err)
	}
	return string(out), nil
}
