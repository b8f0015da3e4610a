package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/whenwords/internal/activity"
	"olexsmir.xyz/whenwords/internal/git"
)

func (c *Cli) logAction(ctx context.Context, cmd *cli.Command) error {
	name, err := arg(cmd, 0, "repo")
	if err != nil {
		return err
	}

	repo, err := c.openRepo(name)
	if err != nil {
		return err
	}

	commits, err := repo.Commits(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	rep, err := activity.Build(commits, c.now(), c.tz(cmd))
	if err != nil {
		return err
	}

	if len(rep.Entries) == 0 {
		fmt.Fprintln(c.out, "No commits")
		return nil
	}

	fmt.Fprintf(c.out, "%s: %s\n\n", repo.Name(), rep.Span)
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, e := range rep.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Hash[:min(7, len(e.Hash))], e.Day, e.Ago, e.Summary)
	}
	return tw.Flush()
}

// openRepo opens name as a path when it exists, otherwise relative to the
// configured repo.dir.
func (c *Cli) openRepo(name string) (*git.Repo, error) {
	path := name
	if _, err := os.Stat(name); err != nil && c.cfg.Repo.Dir != "" {
		path, err = git.ResolvePath(c.cfg.Repo.Dir, name)
		if err != nil {
			return nil, err
		}
	}

	repo, err := git.Open(path, "")
	if err != nil {
		return nil, fmt.Errorf("failed to open repo: %w", err)
	}

	return repo, nil
}
