package job

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/arpx/log"
)

// options holds parse configuration.
type options struct {
	logger log.Logger
	cache  bool
}

// Option configures parsing behavior.
type Option func(*options)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCache enables or disables the parse cache. It is enabled by default.
func WithCache(enabled bool) Option {
	return func(o *options) {
		o.cache = enabled
	}
}

func makeOptions(opts ...Option) options {
	o := options{cache: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ParseString parses a complete job description.
//
// Success requires every character of source to be consumed. Otherwise the
// returned error is a [*SyntaxError] locating the first character the
// grammar could not accept.
//
// An empty or whitespace-only source is a syntax error at end of input.
func ParseString(
	ctx context.Context,
	source string,
	opts ...Option,
) (*Job, error) {
	o := makeOptions(opts...)

	o.logger.TraceContext(
		ctx,
		"parse start",
		slog.Int("source_length", len(source)),
		slog.Bool("cache", o.cache),
	)

	if o.cache {
		return parseCached(ctx, source, o)
	}

	return parse(ctx, source, o)
}

// ParseReader reads all of r and parses it as with [ParseString].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Job, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	makeOptions(opts...).logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return ParseString(ctx, string(data), opts...)
}

// parse is the uncached parse implementation.
func parse(ctx context.Context, source string, o options) (*Job, error) {
	rest, job, ok := jobRule.Parse(source)
	if ok && rest == "" {
		o.logger.TraceContext(
			ctx,
			"parse complete",
			slog.Int("task_count", len(job.Tasks)),
			slog.Int("process_count", job.Len()),
		)

		return &job, nil
	}

	stop := diagnose(rest)
	err := newSyntaxError(source, stop)

	o.logger.TraceContext(
		ctx,
		"parse failed",
		slog.Bool("partial", ok),
		slog.Int("unconsumed", len(rest)),
		slog.Any("error", err),
	)

	return nil, err
}
