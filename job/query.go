package job

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the environment a query expression is evaluated against, once per
// process.
type Env struct {
	Name       string   `expr:"name"`
	OnSucceed  string   `expr:"onsucceed"`
	OnFail     string   `expr:"onfail"`
	Silent     bool     `expr:"silent"`
	Monitors   []string `expr:"monitors"`
	Task       int      `expr:"task"`
	Index      int      `expr:"index"`
	Concurrent bool     `expr:"concurrent"`
}

// Query is a compiled boolean expression over [Env].
type Query struct {
	source  string
	program *vm.Program
}

// NewQuery compiles a boolean expression such as
//
//	concurrent && "errors" in monitors
//
// Errors wrap [ErrQuery].
func NewQuery(expression string) (*Query, error) {
	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, ErrQuery.Wrap(err).
			With(slog.String("expression", expression))
	}

	return &Query{source: expression, program: program}, nil
}

// String returns the expression source.
func (q *Query) String() string { return q.source }

// Match reports whether the expression holds for m.
// concurrent tells whether m belongs to a concurrent task.
func (q *Query) Match(m Match, concurrent bool) (bool, error) {
	env := Env{
		Name:       m.Process.Name,
		OnSucceed:  deref(m.Process.OnSucceed),
		OnFail:     deref(m.Process.OnFail),
		Silent:     m.Process.Silent,
		Monitors:   m.Process.LogMonitors,
		Task:       m.Task,
		Index:      m.Index,
		Concurrent: concurrent,
	}

	out, err := expr.Run(q.program, env)
	if err != nil {
		return false, ErrQuery.Wrap(err).With(
			slog.String("expression", q.source),
			slog.String("process", m.Process.Name),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Query returns every process for which expression holds, in source order.
func (j *Job) Query(ctx context.Context, expression string) ([]Match, error) {
	q, err := NewQuery(expression)
	if err != nil {
		return nil, err
	}

	return j.Select(ctx, q)
}

// Select returns every process matched by q, in source order.
func (j *Job) Select(ctx context.Context, q *Query) ([]Match, error) {
	matches := make([]Match, 0)

	for m := range j.All() {
		if err := ctx.Err(); err != nil {
			return nil, ErrQuery.Wrap(err)
		}

		ok, err := q.Match(m, j.Tasks[m.Task].Concurrent())
		if err != nil {
			return nil, err
		}

		if ok {
			matches = append(matches, m)
		}
	}

	return matches, nil
}
