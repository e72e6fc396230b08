package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/arpx/job"
	"github.com/ardnew/arpx/log"
)

type (
	searchPathKey struct{}
	stdioKey      struct{}
)

// stdio holds the streams a command reads and writes.
type stdio struct {
	in       io.Reader
	out, err io.Writer
}

// WithSearchPath returns a new context.Context containing the directories
// searched for job files that are not found as given.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, dirs)
}

func searchPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	return dirs
}

// WithStdio returns a new context.Context whose commands read source "-"
// from in and write results to out and diagnostics to errOut. A nil stream
// falls back to the corresponding os stream.
func WithStdio(
	ctx context.Context,
	in io.Reader,
	out, errOut io.Writer,
) context.Context {
	return context.WithValue(ctx, stdioKey{}, stdio{in: in, out: out, err: errOut})
}

func stdioFrom(ctx context.Context) stdio {
	s, _ := ctx.Value(stdioKey{}).(stdio)

	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	if s.err == nil {
		s.err = os.Stderr
	}

	return s
}

// load resolves and parses source. The returned name is the resolved path,
// or "-" for standard input.
func load(ctx context.Context, source string) (*job.Job, string, error) {
	path, err := resolve(source, searchPathFrom(ctx))
	if err != nil {
		return nil, source, err
	}

	logger := log.Default().With(slog.String("source", path))

	var r io.Reader

	if path == stdinSource {
		r = stdioFrom(ctx).in
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, path, ErrOpenSource.Wrap(err).
				With(slog.String("source", path))
		}
		defer file.Close()

		r = file
	}

	j, err := job.ParseReader(ctx, r, job.WithLogger(logger))
	if err != nil {
		return nil, path, err
	}

	logger.DebugContext(ctx, "job loaded",
		slog.Int("task_count", len(j.Tasks)),
		slog.Int("process_count", j.Len()),
	)

	return j, path, nil
}
