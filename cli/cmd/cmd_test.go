package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/arpx/job"
)

const testJob = "[(build ? test : notify;) lint;] test ? deploy; (deploy;) @out\n"

// testContext returns a context whose commands read stdin and write to the
// returned buffers, searching dirs for job files.
func testContext(
	t *testing.T,
	stdin string,
	dirs ...string,
) (ctx context.Context, out, errOut *bytes.Buffer) {
	t.Helper()

	out, errOut = new(bytes.Buffer), new(bytes.Buffer)

	ctx = WithStdio(t.Context(), strings.NewReader(stdin), out, errOut)
	ctx = WithSearchPath(ctx, dirs)

	return ctx, out, errOut
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestResolve(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	direct := writeFile(t, t.TempDir(), "direct.txt", testJob)
	exact := writeFile(t, second, "build", testJob)
	ext := writeFile(t, first, "deploy.arpx", testJob)
	shadow := writeFile(t, first, "both.arpx", testJob)
	writeFile(t, second, "both.arpx", testJob)

	if err := os.Mkdir(filepath.Join(first, "dir.arpx"), 0o700); err != nil {
		t.Fatal(err)
	}

	dirs := []string{first, second}

	tests := []struct {
		name    string
		source  string
		want    string
		wantErr bool
	}{
		{"stdin", "-", "-", false},
		{"existing file", direct, direct, false},
		{"exact name in path", "build", exact, false},
		{"extension appended", "deploy", ext, false},
		{"extension given", "deploy.arpx", ext, false},
		{"first directory wins", "both", shadow, false},
		{"directories skipped", "dir", "", true},
		{"missing", "nothing", "", true},
		{"absolute not searched", filepath.Join(string(filepath.Separator), "deploy"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(tt.source, dirs)

			if tt.wantErr {
				if !errors.Is(err, ErrSourceNotFound) {
					t.Errorf("resolve(%q) error = %v, want ErrSourceNotFound", tt.source, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("resolve(%q): %v", tt.source, err)
			}

			if got != tt.want {
				t.Errorf("resolve(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ci.arpx", testJob)

	t.Run("stdin", func(t *testing.T) {
		ctx, _, _ := testContext(t, "a; b;")

		j, name, err := load(ctx, "-")
		if err != nil {
			t.Fatal(err)
		}

		if name != "-" || len(j.Tasks) != 2 {
			t.Errorf("load(-) = %d tasks from %q", len(j.Tasks), name)
		}
	})

	t.Run("search path", func(t *testing.T) {
		ctx, _, _ := testContext(t, "", dir)

		j, name, err := load(ctx, "ci")
		if err != nil {
			t.Fatal(err)
		}

		if name != filepath.Join(dir, "ci.arpx") || j.Len() != 4 {
			t.Errorf("load(ci) = %d processes from %q", j.Len(), name)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		ctx, _, _ := testContext(t, "loop1;\nloop2\n")

		_, _, err := load(ctx, "-")

		var syn *job.SyntaxError
		if !errors.As(err, &syn) {
			t.Fatalf("expected *job.SyntaxError, got %v", err)
		}

		if syn.Location.Line != 2 {
			t.Errorf("line = %d, want 2", syn.Location.Line)
		}
	})
}

func TestError(t *testing.T) {
	cause := errors.New("permission denied")
	err := ErrOpenSource.Wrap(cause)

	if !errors.Is(err, ErrOpenSource) {
		t.Error("wrapped error should match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}

	if errors.Is(err, ErrSourceNotFound) {
		t.Error("wrapped error matched another sentinel")
	}

	if got := err.Error(); got != "open job file: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	if got := NewError("").Wrap(cause).Error(); got != "permission denied" {
		t.Errorf("Error() without message = %q", got)
	}

	group := ErrCheckFailed.With().LogValue().Group()
	if len(group) != 1 || group[0].Value.String() != "check failed" {
		t.Errorf("LogValue() = %v", group)
	}
}
