package job

import (
	"context"
	"errors"
	"testing"
)

// processNames returns the process name of each match.
func processNames(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Process.Name
	}

	return out
}

func TestJob_Query(t *testing.T) {
	job := scenarioJob()

	tests := []struct {
		expr string
		want []string
	}{
		{expr: "silent", want: []string{"loop1", "loop7"}},
		{expr: "concurrent", want: []string{"loop1", "loop2"}},
		{expr: `onfail == ""`, want: []string{"loop6", "loop7"}},
		{expr: "task == 1", want: []string{"loop3"}},
		{expr: "index > 0", want: []string{"loop2"}},
		{expr: `onsucceed == "loop3"`, want: []string{"loop2"}},
		{expr: `name startsWith "loop"`, want: []string{"loop1", "loop2", "loop3", "loop6", "loop7"}},
		{expr: `name == "missing"`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			matches, err := job.Query(context.Background(), tt.expr)
			if err != nil {
				t.Fatalf("Query error: %v", err)
			}

			got := processNames(matches)
			if len(got) != len(tt.want) {
				t.Fatalf("Query(%q) = %v, want %v", tt.expr, got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Query(%q) = %v, want %v", tt.expr, got, tt.want)

					break
				}
			}
		})
	}
}

func TestJob_Query_Monitors(t *testing.T) {
	job, err := ParseString(context.Background(), "a; @x @y\nb; @y\n[c; @x d;]")
	if err != nil {
		t.Fatal(err)
	}

	matches, err := job.Query(context.Background(), `"x" in monitors`)
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	if m := matches[1]; m.Task != 2 || m.Index != 0 || m.Process.Name != "c" {
		t.Errorf("second match = %+v, want task 2 index 0 process c", m)
	}
}

func TestJob_Query_Errors(t *testing.T) {
	job := scenarioJob()

	for _, expr := range []string{
		"name +",
		"name",
		"undefined_field == 1",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := job.Query(context.Background(), expr)
			if !errors.Is(err, ErrQuery) {
				t.Errorf("Query(%q) error = %v, want ErrQuery", expr, err)
			}
		})
	}
}

func TestJob_Query_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scenarioJob().Query(ctx, "silent")
	if !errors.Is(err, ErrQuery) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want ErrQuery wrapping context.Canceled", err)
	}
}
