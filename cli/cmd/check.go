package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/arpx/cli/style"
)

// Check parses each source and reports its size or the first syntax error.
type Check struct {
	Quiet bool `help:"Report failures only." short:"q"`

	Sources []string `arg:"" default:"-" help:"Job files or '-' for stdin." name:"source"`
}

// Run executes the check command. Every source is checked even after a
// failure; the command fails if any source did.
func (c *Check) Run(ctx context.Context) error {
	io := stdioFrom(ctx)

	var failed []string

	for _, source := range c.Sources {
		j, path, err := load(ctx, source)
		if err != nil {
			failed = append(failed, path)

			fmt.Fprintln(io.err, style.Diagnostic(path, err))

			continue
		}

		if c.Quiet {
			continue
		}

		fmt.Fprintf(io.out, "%s: %s\n",
			style.Location.Render(path),
			style.Result.Render(fmt.Sprintf(
				"%d %s, %d %s",
				len(j.Tasks), plural(len(j.Tasks), "task"),
				j.Len(), plural(j.Len(), "process"),
			)),
		)
	}

	if len(failed) > 0 {
		return ErrCheckFailed.With(
			slog.Int("failed", len(failed)),
			slog.Int("checked", len(c.Sources)),
			slog.Any("sources", failed),
		)
	}

	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	if word[len(word)-1] == 's' {
		return word + "es"
	}

	return word + "s"
}
