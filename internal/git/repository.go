package git

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

var (
	ErrNotRepository = errors.New("not a git repository")
	ErrGitNotFound   = errors.New("git command not found")
)

// Repository is a discovered working tree.
type Repository struct {
	Root   string
	GitDir string
	cmd    Commander
}

// DetectRepository walks upward from startPath until it finds a directory
// containing a .git metadata directory. It fails with ErrNotRepository
// when no ancestor up to the filesystem root qualifies; callers must then
// treat git annotation as entirely unavailable.
func DetectRepository(startPath string) (*Repository, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %v", err)
	}

	if _, err := exec.LookPath("git"); err != nil {
		return nil, ErrGitNotFound
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, ".git")
		if fi, err := os.Stat(gitDir); err == nil && fi.IsDir() {
			return &Repository{
				Root:   current,
				GitDir: gitDir,
				cmd:    execCommander{dir: current},
			}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return nil, ErrNotRepository
}
