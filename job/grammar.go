package job

import (
	"log/slog"
	"unicode"

	c "github.com/ardnew/arpx/combinator"
)

var (
	nameRule = c.Map(
		c.ZeroOrMore(c.Char(isNameRune)),
		func(r []rune) string { return string(r) },
	)

	onSucceedRule = c.Right(token("?"), nameRule)
	onFailRule    = c.Right(token(":"), nameRule)

	monitorsRule = c.ZeroOrMore(c.WhitespaceWrap(c.Right(c.Literal("@"), nameRule)))

	// plain := name predicate? ';'
	plainRule = c.WhitespaceWrap(c.Map(
		c.Left(
			c.Pair(
				nameRule,
				c.Pair(c.Optional(onSucceedRule), c.Optional(onFailRule)),
			),
			c.Literal(";"),
		),
		newProcess,
	))

	// silent := '(' plain ')'
	silentRule = c.Map(
		c.Right(token("("), c.Left(plainRule, token(")"))),
		func(p Process) Process {
			p.Silent = true

			return p
		},
	)

	// single := (silent | plain) monitor*
	processRule = c.Map(
		c.Pair(c.Either(silentRule, plainRule), monitorsRule),
		func(t c.Tuple[Process, []string]) Process {
			t.Left.LogMonitors = t.Right

			return t.Left
		},
	)

	// concurrent := '[' single single+ ']'
	concurrentRule = c.Right(
		token("["),
		c.Left(c.TwoOrMore(processRule), token("]")),
	)

	concurrentTaskRule = c.Map(concurrentRule, newConcurrentTask)
	singleTaskRule     = c.Map(processRule, newSingleTask)

	taskRule = c.Either(concurrentTaskRule, singleTaskRule)

	jobRule = c.Map(
		c.OneOrMore(c.WhitespaceWrap(taskRule)),
		func(tasks []Task) Job { return Job{Tasks: tasks} },
	)
)

// NameParser matches the longest run of letters, digits, '-', and '_'.
// It succeeds on an empty match.
func NameParser() c.Parser[string] { return nameRule }

// ProcessParser matches a single process statement, optionally wrapped in
// parentheses, followed by its log monitors.
func ProcessParser() c.Parser[Process] { return processRule }

// ConcurrentParser matches a bracketed group of two or more processes.
func ConcurrentParser() c.Parser[[]Process] { return concurrentRule }

// TaskParser matches a concurrent group or a single process.
func TaskParser() c.Parser[Task] { return taskRule }

// JobParser matches one or more tasks. It does not require the whole input
// to be consumed; see [ParseString].
func JobParser() c.Parser[Job] { return jobRule }

func isNameRune(r rune) bool {
	return unicode.In(r, unicode.L, unicode.N, unicode.Other_Alphabetic) ||
		r == '-' || r == '_'
}

func token(s string) c.Parser[string] {
	return c.WhitespaceWrap(c.Literal(s))
}

func newProcess(t c.Tuple[string, c.Tuple[*string, *string]]) Process {
	return Process{
		Name:        t.Left,
		OnSucceed:   t.Right.Left,
		OnFail:      t.Right.Right,
		LogMonitors: []string{},
	}
}

func newSingleTask(p Process) Task {
	return Task{Processes: []Process{p}}
}

func newConcurrentTask(ps []Process) Task {
	if len(ps) < 2 {
		panic(ErrInvariant.With(
			slog.String("rule", "concurrent"),
			slog.Int("processes", len(ps)),
			slog.Int("minimum", 2),
		))
	}

	return Task{Processes: ps}
}

// diagnose returns the furthest position reached by any alternative of the
// task rule on remaining.
func diagnose(remaining string) string {
	stop := remaining

	for _, alt := range []c.Parser[Task]{concurrentTaskRule, singleTaskRule} {
		rest, _, ok := c.WhitespaceWrap(alt).Parse(remaining)
		if !ok && len(rest) < len(stop) {
			stop = rest
		}
	}

	return stop
}
