package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"olexsmir.xyz/whenwords/internal/activity"
	"olexsmir.xyz/whenwords/internal/git"
)

const defaultActivityLimit = 50

var (
	errRepoNotFound  = errors.New("repository not found")
	errReposDisabled = errors.New("repo.dir is not configured")
)

// commits returns the history of the named repository, from cache when
// possible.
func (h *handlers) commits(name string, limit int) ([]git.Commit, error) {
	if h.c.Repo.Dir == "" {
		return nil, fmt.Errorf("%w: %w", errRepoNotFound, errReposDisabled)
	}

	key := name + "@" + strconv.Itoa(limit)
	if c, found := h.commitsCache.Get(key); found {
		return c, nil
	}

	path, err := git.ResolvePath(h.c.Repo.Dir, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errRepoNotFound, err)
	}

	repo, err := git.Open(path, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errRepoNotFound, err)
	}

	commits, err := repo.Commits(limit)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	h.commitsCache.Set(key, commits)
	return commits, nil
}

func (h *handlers) activityReport(r *http.Request) (activity.Report, error) {
	limit, err := queryInt(r, "limit", defaultActivityLimit)
	if err != nil {
		return activity.Report{}, err
	}

	commits, err := h.commits(r.PathValue("name"), limit)
	if err != nil {
		return activity.Report{}, err
	}

	return activity.Build(commits, h.now(), h.tzParam(r))
}

func (h *handlers) activityHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := h.activityReport(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeResult(w, rep)
}
