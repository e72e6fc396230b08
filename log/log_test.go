package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}

	if !logger.pretty {
		t.Error("expected pretty enabled by default")
	}
}

func TestLogger_ZeroValue_IsNoop(t *testing.T) {
	var logger Logger

	logger.Trace("ignored")
	logger.Info("ignored", slog.Int("n", 1))
	logger.ErrorContext(t.Context(), "ignored")

	if logger.Level() != DefaultLevel {
		t.Errorf("zero logger level = %v, want %v", logger.Level(), DefaultLevel)
	}

	if got := logger.With(slog.String("k", "v")); got.Logger != nil {
		t.Error("With on zero logger should stay a no-op")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true},
		{"trace at debug", Logger.Trace, LevelDebug, false},
		{"debug at debug", Logger.Debug, LevelDebug, true},
		{"debug at info", Logger.Debug, LevelInfo, false},
		{"info at info", Logger.Info, LevelInfo, true},
		{"info at warn", Logger.Info, LevelWarn, false},
		{"warn at warn", Logger.Warn, LevelWarn, true},
		{"warn at error", Logger.Warn, LevelError, false},
		{"error at debug", Logger.Error, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, pretty := range []bool{false, true} {
				var buf bytes.Buffer

				logger := Make(&buf, WithLevel(tt.minLevel), WithPretty(pretty))
				tt.logFunc(logger, "test message")

				if logged := buf.Len() > 0; logged != tt.logged {
					t.Errorf("pretty=%v: logged=%v, want %v", pretty, logged, tt.logged)
				}
			}
		})
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithPretty(false),
	)
	logger.Trace("parse start", slog.Int("source_length", 42))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode JSON output: %v\n%s", err, buf.String())
	}

	if record["msg"] != "parse start" {
		t.Errorf("msg = %v, want %q", record["msg"], "parse start")
	}

	if record["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", record["level"])
	}

	if record["source_length"] != float64(42) {
		t.Errorf("source_length = %v, want 42", record["source_length"])
	}
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
	logger.Info("check complete", slog.String("source", "build.arpx"))

	out := buf.String()
	for _, want := range []string{"level=INFO", `msg="check complete"`, "source=build.arpx"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q: %s", want, out)
		}
	}
}

func TestLogger_TimeLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		check  func(string) bool
	}{
		{"rfc3339", "RFC3339", func(s string) bool { return strings.Contains(s, `"time":"`) }},
		{"none", "none", func(s string) bool { return !strings.Contains(s, `"time"`) }},
		{"empty", "", func(s string) bool { return !strings.Contains(s, `"time"`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := Make(&buf, WithTimeLayout(tt.layout), WithPretty(false))
			logger.Info("test")

			if !tt.check(buf.String()) {
				t.Errorf("unexpected output for layout %q: %s", tt.layout, buf.String())
			}
		})
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("where")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller should point at this file: %s", buf.String())
	}

	buf.Reset()

	Make(&buf, WithCaller(false), WithPretty(false)).Info("where")

	if strings.Contains(buf.String(), `"source"`) {
		t.Errorf("caller included when disabled: %s", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatText), WithPretty(pretty)).
			With(slog.String("component", "parser"))
		logger.Info("ready", slog.Group("job", slog.Int("tasks", 3)))

		out := buf.String()
		for _, want := range []string{"component", "parser", "job.tasks", "3"} {
			if !strings.Contains(out, want) {
				t.Errorf("pretty=%v: output missing %q: %s", pretty, want, out)
			}
		}
	}
}

func TestLogger_Wrap(t *testing.T) {
	var first, second bytes.Buffer

	base := Make(&first, WithLevel(LevelWarn), WithPretty(false))
	wrapped := base.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	wrapped.Debug("to second")
	base.Debug("dropped")

	if first.Len() != 0 {
		t.Errorf("base logger wrote below its level: %s", first.String())
	}

	if !strings.Contains(second.String(), "to second") {
		t.Errorf("wrapped logger did not write: %s", second.String())
	}

	if base.Level() != LevelWarn {
		t.Errorf("Wrap modified the original level: %v", base.Level())
	}
}

type secret string

func (secret) LogValue() slog.Value { return slog.StringValue("***") }

func TestPrettyHandler_Values(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithLevel(LevelTrace), WithTimeLayout("none"))
	logger.Trace("values",
		slog.Bool("ok", true),
		slog.Any("token", secret("hunter2")),
		slog.Any("error", errors.New("boom")),
		slog.String("spaced", "a b"),
	)

	out := buf.String()

	for _, want := range []string{"TRACE", "***", "boom", `"a b"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}

	if strings.Contains(out, "hunter2") {
		t.Errorf("LogValuer not resolved: %q", out)
	}

	buf.Reset()

	Make(&buf, WithFormat(FormatJSON)).Warn("multi", slog.Int("n", 1))

	if lines := strings.Count(buf.String(), "\n"); lines < 4 {
		t.Errorf("pretty JSON should span multiple lines, got %d: %q", lines, buf.String())
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", i))
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}
