package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/arpx/cli/style"
	"github.com/ardnew/arpx/job"
)

// Query lists the processes for which a boolean expression holds.
//
// The expression sees name, onsucceed, onfail, silent, monitors, task,
// index, and concurrent for each process.
type Query struct {
	Expression string `arg:"" help:"Boolean expression, e.g. 'silent && task > 0'." name:"expr"`
	Source     string `arg:"" default:"-" help:"Job file or '-' for stdin." name:"source"`
}

// Run executes the query command. It fails with [ErrNoMatch] when nothing
// matches.
func (q *Query) Run(ctx context.Context) error {
	j, _, err := load(ctx, q.Source)
	if err != nil {
		return err
	}

	matches, err := j.Query(ctx, q.Expression)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		return ErrNoMatch.With(slog.String("expr", q.Expression))
	}

	writeMatches(stdioFrom(ctx).out, matches)

	return nil
}

// Find lists the processes whose names fuzzy-match a pattern, best first.
type Find struct {
	Pattern string `arg:"" help:"Characters to match in order." name:"pattern"`
	Source  string `arg:"" default:"-" help:"Job file or '-' for stdin." name:"source"`
}

// Run executes the find command. It fails with [ErrNoMatch] when nothing
// matches.
func (f *Find) Run(ctx context.Context) error {
	j, _, err := load(ctx, f.Source)
	if err != nil {
		return err
	}

	matches := j.Find(f.Pattern)
	if len(matches) == 0 {
		return ErrNoMatch.With(slog.String("pattern", f.Pattern))
	}

	writeMatches(stdioFrom(ctx).out, matches)

	return nil
}

// writeMatches writes one "task.index process" line per match.
func writeMatches(w io.Writer, matches []job.Match) {
	for _, m := range matches {
		fmt.Fprintf(w, "%s %s\n",
			style.Hint.Render(fmt.Sprintf("%d.%d", m.Task, m.Index)),
			style.Process(m.Process),
		)
	}
}
