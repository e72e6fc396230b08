package job

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// cache stores parse results keyed by source hash.
var cache sync.Map

// entry holds the result of parsing one source.
type entry struct {
	once   sync.Once
	source string
	job    *Job
	err    error
}

// parseCached parses source at most once per distinct content. Every caller
// receives its own copy of the job.
func parseCached(ctx context.Context, source string, o options) (*Job, error) {
	hash := xxh3.HashString(source)
	key := strconv.FormatUint(hash, 36)

	value, hit := cache.LoadOrStore(key, &entry{source: source})

	// Hash collisions fall back to an uncached parse.
	e, ok := value.(*entry)
	if !ok || e.source != source {
		return parse(ctx, source, o)
	}

	o.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	e.once.Do(func() {
		e.job, e.err = parse(ctx, source, o)
	})

	if e.err != nil {
		var se *SyntaxError
		if errors.As(e.err, &se) {
			dup := *se

			return nil, &dup
		}

		return nil, e.err
	}

	return e.job.Clone(), nil
}

// ClearCache removes all cached parse results.
func ClearCache() {
	cache.Clear()
}
