// Package history reads earlier versions of a site definition from git and
// compares their sidebars. The working copy is always authoritative; history
// is informational.
package history

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/echolabx/docsite/internal/config"
	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/site"
)

// Version is the site definition as committed in one commit.
type Version struct {
	Commit  string
	Author  string
	When    time.Time
	Subject string
	Site    *site.Config
	// Err is set when the committed file could not be decoded; Site is nil then.
	Err error
}

// Short returns the abbreviated commit hash.
func (v Version) Short() string {
	if len(v.Commit) > 7 {
		return v.Commit[:7]
	}
	return v.Commit
}

// Versions lists every committed version of file, newest first. A relative
// file is taken relative to repoDir; repoDir may be any directory inside the
// working tree.
func Versions(repoDir, file string) ([]Version, error) {
	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, derrors.GitError("failed to open repository").WithCause(err).
			WithContext("path", repoDir).Build()
	}
	rel, err := repoRelative(repo, repoDir, file)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{FileName: &rel})
	if err != nil {
		return nil, derrors.GitError("failed to read history").WithCause(err).
			WithContext("file", rel).Build()
	}
	defer iter.Close()

	var versions []Version
	for {
		c, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, derrors.GitError("failed to walk history").WithCause(err).
				WithContext("file", rel).Build()
		}
		v, ok, err := versionAt(c, rel)
		if err != nil {
			return nil, err
		}
		if ok {
			versions = append(versions, v)
		}
	}
	slog.Debug("Read site history", logfields.Path(rel), logfields.Count(len(versions)))
	return versions, nil
}

func versionAt(c *object.Commit, rel string) (Version, bool, error) {
	v := Version{
		Commit:  c.Hash.String(),
		Author:  c.Author.Name,
		When:    c.Author.When,
		Subject: strings.TrimSpace(strings.SplitN(c.Message, "\n", 2)[0]),
	}
	at := derrors.ErrorContext{"commit": v.Short(), "file": rel}
	f, err := c.File(rel)
	if errors.Is(err, object.ErrFileNotFound) {
		// The commit deleted the file.
		return v, false, nil
	}
	if err != nil {
		return v, false, derrors.GitError("failed to read file at commit").WithCause(err).
			WithContextMap(at).Build()
	}
	contents, err := f.Contents()
	if err != nil {
		return v, false, derrors.GitError("failed to read file at commit").WithCause(err).
			WithContextMap(at).Build()
	}
	v.Site, v.Err = config.DecodeSite([]byte(contents), config.FormatFor(rel))
	if v.Err != nil {
		slog.Debug("Committed site definition does not decode", logfields.Commit(v.Short()), logfields.Error(v.Err))
	}
	return v, true, nil
}

func repoRelative(repo *git.Repository, repoDir, file string) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return "", derrors.GitError("repository has no working tree").WithCause(err).Build()
	}
	root, err := canonical(wt.Filesystem.Root())
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(repoDir, file)
	}
	abs, err := canonical(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", derrors.ValidationError("file is outside the repository").
			WithContext("file", file).WithContext("repository", root).Build()
	}
	return filepath.ToSlash(rel), nil
}

// canonical makes p absolute and resolves symlinks in its directory, which
// may not exist for the file itself.
func canonical(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	dir, base := filepath.Split(abs)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return filepath.Join(resolved, base), nil
	}
	return abs, nil
}
