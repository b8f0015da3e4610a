package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/whenwords/internal/repl"
)

func (c *Cli) replAction(ctx context.Context, cmd *cli.Command) error {
	return repl.Run(ctx, &repl.Session{
		Timezone: c.cfg.Defaults.Timezone,
		Compact:  c.cfg.Defaults.Compact,
		MaxUnits: c.cfg.Defaults.MaxUnits,
	}, c.now)
}
