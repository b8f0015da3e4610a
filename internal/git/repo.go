package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

type Repo struct {
	path string
	r    *git.Repository
	h    plumbing.Hash
}

// Commit is the part of a commit the activity report cares about.
type Commit struct {
	Hash    string
	Summary string
	Author  string
	When    time.Time
}

// Open opens a git repository at path. If ref is empty, HEAD is used.
func Open(path string, ref string) (*Repo, error) {
	var err error
	g := Repo{}
	g.path = path
	g.r, err = git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if ref == "" {
		head, err := g.r.Head()
		if err != nil {
			return nil, fmt.Errorf("getting head of %s: %w", path, err)
		}
		g.h = head.Hash()
	} else {
		hash, err := g.r.ResolveRevision(plumbing.Revision(ref))
		if err != nil {
			return nil, fmt.Errorf("resolving rev %s for %s: %w", ref, path, err)
		}
		g.h = *hash
	}
	return &g, nil
}

// Name is the repository directory name without a ".git" suffix.
func (g *Repo) Name() string {
	return strings.TrimSuffix(filepath.Base(g.path), ".git")
}

// Commits walks history from the opened ref, newest first. A limit of zero
// or less returns everything.
func (g *Repo) Commits(limit int) ([]Commit, error) {
	ci, err := g.r.Log(&git.LogOptions{From: g.h, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("commits from ref: %w", err)
	}
	defer ci.Close()

	commits := []Commit{}
	err = ci.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String(),
			Summary: summary(c.Message),
			Author:  c.Author.Name,
			When:    c.Committer.When,
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking commits: %w", err)
	}
	return commits, nil
}

func summary(msg string) string {
	first, _, _ := strings.Cut(msg, "\n")
	return strings.TrimSuffix(first, "\r")
}
