package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	if _, err := git(dir, "init", "--quiet"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// CommitAll stages all files and creates a commit. Returns the short commit hash.
func CommitAll(dir, message, authorName, authorEmail string) (string, error) {
	if _, err := git(dir, "add", "-A"); err != nil {
		return "", fmt.Errorf("git add: %w", err)
	}
	return commit(dir, message, authorName, authorEmail)
}

// CommitPaths stages only the given paths (relative to dir) and commits
// them. Returns the short commit hash.
func CommitPaths(dir, message, authorName, authorEmail string, paths ...string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("git add: no paths given")
	}
	if _, err := git(dir, append([]string{"add", "--"}, paths...)...); err != nil {
		return "", fmt.Errorf("git add: %w", err)
	}
	return commit(dir, message, authorName, authorEmail)
}

func commit(dir, message, authorName, authorEmail string) (string, error) {
	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	if _, err := git(dir, "commit", "--quiet", "-m", message, "--author", author); err != nil {
		return "", fmt.Errorf("git commit: %w", err)
	}

	out, err := git(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return out, nil
}

// git runs a git subcommand in dir and returns its trimmed output. The
// committer identity is pinned so commits work without a global git config.
func git(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_COMMITTER_NAME=homeval",
		"GIT_COMMITTER_EMAIL=homeval@localhost",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}
