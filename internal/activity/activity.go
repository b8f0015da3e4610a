// Package activity turns a repository's commit history into a humanized
// report: when each commit happened relative to now, and the span it covers.
package activity

import (
	"time"

	"olexsmir.xyz/whenwords/humanize"
	"olexsmir.xyz/whenwords/internal/git"
)

type Entry struct {
	Hash    string    `json:"hash"`
	Summary string    `json:"summary"`
	Author  string    `json:"author"`
	When    time.Time `json:"when"`
	Ago     string    `json:"ago"`
	Day     string    `json:"day"`
}

type Report struct {
	Span    string  `json:"span"`
	Entries []Entry `json:"entries"`
}

// Build humanizes commits as seen at now in zone tz. Commits are expected
// newest first, as git.Repo.Commits returns them.
func Build(commits []git.Commit, now time.Time, tz string) (Report, error) {
	if err := humanize.ValidateTimezone(tz); err != nil {
		return Report{}, err
	}

	rep := Report{Entries: make([]Entry, 0, len(commits))}
	if len(commits) == 0 {
		return rep, nil
	}

	ref := humanize.Time(now)
	for _, c := range commits {
		when := humanize.Time(c.When)
		ago, err := humanize.TimeAgo(when, ref)
		if err != nil {
			return Report{}, err
		}
		day, err := humanize.HumanDate(when, ref, tz)
		if err != nil {
			return Report{}, err
		}
		rep.Entries = append(rep.Entries, Entry{
			Hash:    c.Hash,
			Summary: c.Summary,
			Author:  c.Author,
			When:    c.When,
			Ago:     ago,
			Day:     day,
		})
	}

	span, err := humanize.DateRange(
		humanize.Time(commits[len(commits)-1].When),
		humanize.Time(commits[0].When),
		tz,
	)
	if err != nil {
		return Report{}, err
	}
	rep.Span = span
	return rep, nil
}
