package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

// Run reads lines until EOF, "exit" or ctx is cancelled. Errors from
// individual lines are printed, not returned.
func Run(ctx context.Context, s *Session, now func() time.Time) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "whenwords> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	return loop(ctx, rl, rl.Stdout(), s, now)
}

type lineReader interface {
	Readline() (string, error)
}

func loop(ctx context.Context, in lineReader, out io.Writer, s *Session, now func() time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		res, err := s.Eval(strings.TrimSpace(line), now())
		switch {
		case errors.Is(err, errExit):
			return nil
		case err != nil:
			fmt.Fprintln(out, "error:", err)
		case res != "":
			fmt.Fprintln(out, res)
		}
	}
}
