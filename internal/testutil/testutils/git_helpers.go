// Package helpers holds fixtures shared by package tests.
package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo is a throwaway repository whose commits get increasing timestamps.
type GitRepo struct {
	t        *testing.T
	Dir      string
	Repo     *git.Repository
	Worktree *git.Worktree
	when     time.Time
}

// SetupTestGitRepo initializes a git repository in dir, or in a fresh
// temporary directory when dir is empty.
func SetupTestGitRepo(t *testing.T, dir string) *GitRepo {
	t.Helper()
	if dir == "" {
		dir = filepath.Join(t.TempDir(), "test-repo")
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	return &GitRepo{
		t:        t,
		Dir:      dir,
		Repo:     repo,
		Worktree: w,
		when:     time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Commit writes files (slash paths relative to the repository) and commits
// the whole worktree. Each commit is one hour after the previous one.
func (r *GitRepo) Commit(msg string, files map[string]string) plumbing.Hash {
	r.t.Helper()
	for name, data := range files {
		WriteFile(r.t, r.Dir, name, data)
	}
	if _, err := r.Worktree.Add("."); err != nil {
		r.t.Fatalf("failed to add files: %v", err)
	}
	r.when = r.when.Add(time.Hour)
	hash, err := r.Worktree.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: r.when},
	})
	if err != nil {
		r.t.Fatalf("failed to commit: %v", err)
	}
	return hash
}

// WriteFile writes data to name under dir, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(p, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return p
}
