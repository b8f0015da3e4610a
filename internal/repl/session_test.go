package repl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"olexsmir.xyz/whenwords/humanize"
)

var now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func TestSession_Eval(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"", ""},
		{"ago 1704067110 1704067200", "2 minutes ago"},
		{"ago 2024-01-15T09:00:00Z", "3 hours ago"},
		{"AGO 2024-01-15T12:00:10Z", "just now"},
		{"duration 93661", "1 day, 2 hours"},
		{"parse 1 day, 2 hours, and 30 minutes", "95400"},
		{"parse 2:30", "9000"},
		{"date 1704672000 1705276800", "January 8"},
		{"date 2024-01-12", "Last Friday"},
		{"range 1705881600 1705276800", "January 15–22, 2024"},
		{"tz", "UTC"},
		{"compact", "off"},
		{"units", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s := &Session{}
			got, err := s.Eval(tt.line, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_Settings(t *testing.T) {
	s := &Session{}

	got, err := s.Eval("compact on", now)
	require.NoError(t, err)
	assert.Equal(t, "on", got)

	got, err = s.Eval("units 1", now)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = s.Eval("duration 9000", now)
	require.NoError(t, err)
	assert.Equal(t, "3h", got)

	got, err = s.Eval("tz America/New_York", now)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", got)

	got, err = s.Eval("range 1721950200 1721955600", now)
	require.NoError(t, err)
	assert.Equal(t, "July 25, 2024", got)

	_, err = s.Eval("tz Nowhere/Land", now)
	assert.ErrorIs(t, err, humanize.ErrInvalidTimezone)
	assert.Equal(t, "America/New_York", s.Timezone)
}

func TestSession_Errors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"frobnicate", errUnknownCommand},
		{"exit", errExit},
		{"ago", errUsage},
		{"range 1", errUsage},
		{"compact maybe", errUsage},
		{"units 0", errUsage},
		{"duration -5", humanize.ErrInvalidDuration},
		{"duration soon", humanize.ErrInvalidDuration},
		{"parse 42", humanize.ErrUnparseableDuration},
		{"ago yesterday", humanize.ErrInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := (&Session{}).Eval(tt.line, now)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

type fakeReader struct {
	lines []string
	errs  []error
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line, err := f.lines[0], f.errs[0]
	f.lines, f.errs = f.lines[1:], f.errs[1:]
	return line, err
}

func TestLoop(t *testing.T) {
	in := &fakeReader{
		lines: []string{"parse 2h", "", "nope", "ignored", "duration 60", "exit", "parse 1h"},
		errs:  []error{nil, nil, nil, readline.ErrInterrupt, nil, nil, nil},
	}
	var out strings.Builder

	err := loop(context.Background(), in, &out, &Session{}, func() time.Time { return now })
	require.NoError(t, err)
	assert.Equal(t, "7200\nerror: unknown command: nope (try help)\n1 minute\n", out.String())
}

func TestLoop_EOF(t *testing.T) {
	var out strings.Builder
	err := loop(context.Background(), &fakeReader{}, &out, &Session{}, time.Now)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}
