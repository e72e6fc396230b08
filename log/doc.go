// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("check complete", slog.Int("tasks", 4))
//	logger.Error("parse failed", slog.Any("error", err))
//
// The zero [Logger] discards everything. Libraries accept a Logger through
// their options and log unconditionally.
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level logger used by [Info], [Error], and friends writes to
// [os.Stderr] and is reconfigured with [Config].
//
// # Adding Attributes
//
// Attributes can be added to the logger to be included in all subsequent
// log messages using the [Logger.With] method:
//
//	logger = logger.With(slog.String("source", path))
//	logger.Info("parse start") // includes source=path
//
// # Context-Aware Logging
//
// Each logging level has both a context-aware and context-unaware variant.
// Context-unaware variants use [DefaultContextProvider], which returns
// [context.TODO] by default.
//
// # Supported Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level
// are discarded. Levels are written by name in upper case.
//
// # Time Formatting
//
// Time formatting is configurable using [WithTimeLayout]. Named layouts
// such as "RFC3339" or "kitchen" are recognized; any other string is used
// as a custom layout. The layout "none" disables timestamps.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. With [WithPretty] enabled (default) both are colorized.
package log
