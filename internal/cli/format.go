package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/whenwords/humanize"
)

var errNoArgument = errors.New("missing argument")

func (c *Cli) ref(cmd *cli.Command) humanize.Instant {
	if cmd.IsSet("ref") {
		return humanize.ParseInstant(cmd.String("ref"))
	}
	return humanize.Time(c.now())
}

func (c *Cli) tz(cmd *cli.Command) string {
	if cmd.IsSet("tz") {
		return cmd.String("tz")
	}
	return c.cfg.Defaults.Timezone
}

func arg(cmd *cli.Command, i int, name string) (string, error) {
	v := cmd.Args().Get(i)
	if v == "" {
		return "", fmt.Errorf("%w: %s", errNoArgument, name)
	}
	return v, nil
}

func (c *Cli) agoAction(ctx context.Context, cmd *cli.Command) error {
	ts, err := arg(cmd, 0, "timestamp")
	if err != nil {
		return err
	}

	res, err := humanize.TimeAgo(humanize.ParseInstant(ts), c.ref(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, res)
	return nil
}

func (c *Cli) durationAction(ctx context.Context, cmd *cli.Command) error {
	raw, err := arg(cmd, 0, "seconds")
	if err != nil {
		return err
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", humanize.ErrInvalidDuration, raw)
	}

	opts := humanize.DurationOptions{
		Compact:  c.cfg.Defaults.Compact,
		MaxUnits: c.cfg.Defaults.MaxUnits,
	}
	if cmd.IsSet("compact") {
		opts.Compact = cmd.Bool("compact")
	}
	if cmd.IsSet("max-units") {
		opts.MaxUnits = int(cmd.Int("max-units"))
	}

	res, err := humanize.Duration(seconds, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, res)
	return nil
}

func (c *Cli) parseAction(ctx context.Context, cmd *cli.Command) error {
	text := strings.Join(cmd.Args().Slice(), " ")
	secs, err := humanize.ParseDuration(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, secs)
	return nil
}

func (c *Cli) dateAction(ctx context.Context, cmd *cli.Command) error {
	ts, err := arg(cmd, 0, "timestamp")
	if err != nil {
		return err
	}

	res, err := humanize.HumanDate(humanize.ParseInstant(ts), c.ref(cmd), c.tz(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, res)
	return nil
}

func (c *Cli) rangeAction(ctx context.Context, cmd *cli.Command) error {
	start, err := arg(cmd, 0, "start")
	if err != nil {
		return err
	}
	end, err := arg(cmd, 1, "end")
	if err != nil {
		return err
	}

	res, err := humanize.DateRange(humanize.ParseInstant(start), humanize.ParseInstant(end), c.tz(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, res)
	return nil
}
