package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/whenwords/internal/config"
)

type Cli struct {
	cfg     *config.Config
	version string
	out     io.Writer
	now     func() time.Time
}

func New(version string) *Cli {
	return &Cli{
		version: version,
		out:     os.Stdout,
		now:     time.Now,
	}
}

func (c *Cli) Run(ctx context.Context, args []string) error {
	cmd := &cli.Command{
		Name:                  "whenwords",
		Usage:                 "human-friendly time formatting and parsing",
		Version:               c.version,
		EnableShellCompletion: true,
		Writer:                c.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			loadedCfg, err := config.Load(cmd.String("config"))
			if errors.Is(err, config.ErrConfigNotFound) {
				slog.Debug("no config file, using defaults")
				loadedCfg, err = config.Default(), nil
			}
			if err != nil {
				return ctx, err
			}
			c.cfg = loadedCfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "ago",
				Usage:     "relative time of a timestamp, e.g. \"3 hours ago\"",
				ArgsUsage: "<timestamp>",
				Action:    c.agoAction,
				Flags:     []cli.Flag{refFlag()},
			},
			{
				Name:      "duration",
				Usage:     "format a number of seconds",
				ArgsUsage: "<seconds>",
				Action:    c.durationAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "compact",
						Usage: "abbreviated units, e.g. \"2h 30m\"",
					},
					&cli.IntFlag{
						Name:  "max-units",
						Usage: "maximum number of units to show",
					},
				},
			},
			{
				Name:      "parse",
				Usage:     "parse a duration like \"2h 30m\" into seconds",
				ArgsUsage: "<text>",
				Action:    c.parseAction,
			},
			{
				Name:      "date",
				Usage:     "contextual date label, e.g. \"Last Friday\"",
				ArgsUsage: "<timestamp>",
				Action:    c.dateAction,
				Flags:     []cli.Flag{refFlag(), tzFlag()},
			},
			{
				Name:      "range",
				Usage:     "format a date range, e.g. \"January 15–22, 2024\"",
				ArgsUsage: "<start> <end>",
				Action:    c.rangeAction,
				Flags:     []cli.Flag{tzFlag()},
			},
			{
				Name:      "log",
				Usage:     "humanized commit activity of a git repository",
				ArgsUsage: "<repo>",
				Action:    c.logAction,
				Flags: []cli.Flag{
					tzFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "number of commits to show",
						Value: 20,
					},
				},
			},
			{
				Name:   "repl",
				Usage:  "interactive session",
				Action: c.replAction,
			},
			{
				Name:   "serve",
				Usage:  "starts the server",
				Action: c.serveAction,
			},
		},
	}
	return cmd.Run(ctx, args)
}

func refFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "ref",
		Usage: "reference timestamp (default: now)",
	}
}

func tzFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "tz",
		Usage: "IANA timezone (default: from config, else UTC)",
	}
}
