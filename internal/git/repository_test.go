package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func setupTestRepository(t *testing.T) string {
	t.Helper()

	testDir := t.TempDir()

	cmd := exec.Command("git", "init")
	cmd.Dir = testDir
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init git repository: %v", err)
	}

	cmds := []*exec.Cmd{
		exec.Command("git", "config", "user.email", "test@example.com"),
		exec.Command("git", "config", "user.name", "Test User"),
	}
	for _, cmd := range cmds {
		cmd.Dir = testDir
		if err := cmd.Run(); err != nil {
			t.Fatalf("failed to configure git: %v", err)
		}
	}

	return testDir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectRepository(t *testing.T) {
	testDir := setupTestRepository(t)

	repo, err := DetectRepository(testDir)
	if err != nil {
		t.Fatalf("failed to detect repository: %v", err)
	}
	if repo.Root != testDir {
		t.Errorf("expected root %s, got %s", testDir, repo.Root)
	}
	if repo.GitDir != filepath.Join(testDir, ".git") {
		t.Errorf("expected git dir %s, got %s",
			filepath.Join(testDir, ".git"), repo.GitDir)
	}

	subDir := filepath.Join(testDir, "src", "main")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}
	repo2, err := DetectRepository(subDir)
	if err != nil {
		t.Fatalf("failed to detect repository from subdirectory: %v", err)
	}
	if repo2.Root != testDir {
		t.Errorf("expected root %s from subdirectory, got %s", testDir, repo2.Root)
	}

	tmpDir := t.TempDir()
	if _, err := DetectRepository(tmpDir); err != ErrNotRepository {
		t.Errorf("expected ErrNotRepository, got %v", err)
	}
}

func TestResolveRealRepository(t *testing.T) {
	testDir := setupTestRepository(t)

	writeFile(t, testDir, "README.md", "hello\n")
	writeFile(t, testDir, filepath.Join("src", "a.txt"), "content\n")
	runGit(t, testDir, "add", ".")
	runGit(t, testDir, "commit", "-m", "initial")

	writeFile(t, testDir, "README.md", "hello world\n")
	writeFile(t, testDir, "scratch.txt", "tmp\n")

	repo, err := DetectRepository(testDir)
	if err != nil {
		t.Fatalf("failed to detect repository: %v", err)
	}
	sum := repo.Resolve(context.Background())

	readme, ok := sum.Files["README.md"]
	if !ok {
		t.Fatal("missing status entry for README.md")
	}
	if readme.Status != 'M' {
		t.Errorf("expected README.md status M, got %c", readme.Status)
	}
	if readme.Author != "Test User" {
		t.Errorf("expected author Test User, got %q", readme.Author)
	}
	if len(readme.Date) != 10 {
		t.Errorf("expected 10-character date, got %q", readme.Date)
	}

	scratch, ok := sum.Files["scratch.txt"]
	if !ok {
		t.Fatal("missing status entry for scratch.txt")
	}
	if scratch.Status != 'U' {
		t.Errorf("expected scratch.txt status U, got %c", scratch.Status)
	}

	if got := sum.Dirs[""]; got != 'M' {
		t.Errorf("expected root rollup M, got %c", got)
	}

	if len(sum.Branches) == 0 {
		t.Error("expected at least one branch")
	}
}

func TestResolveRealIgnored(t *testing.T) {
	testDir := setupTestRepository(t)

	writeFile(t, testDir, ".gitignore", "*.log\n")
	writeFile(t, testDir, "build.log", "noise\n")
	runGit(t, testDir, "add", ".gitignore")
	runGit(t, testDir, "commit", "-m", "add gitignore")

	repo, err := DetectRepository(testDir)
	if err != nil {
		t.Fatalf("failed to detect repository: %v", err)
	}
	sum := repo.Resolve(context.Background())

	info, ok := sum.Files["build.log"]
	if !ok {
		t.Fatal("missing status entry for build.log")
	}
	if !info.Ignored || info.Status != 'I' {
		t.Errorf("expected build.log ignored with status I, got %+v", info)
	}
}
