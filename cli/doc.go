// Package cli contains the command line interface for arpx.
//
// # Usage
//
//	arpx check [--quiet] [SOURCE ...]
//	arpx fmt [native | json | yaml | tree] [--indent=N] [SOURCE]
//	arpx query EXPR [SOURCE]
//	arpx find PATTERN [SOURCE]
//	arpx repl [SOURCE]
//
// A SOURCE of "-" (the default) reads standard input. Other sources are
// resolved as a path, then by name (with or without the ".arpx" extension)
// in each directory of the search path: the jobs directory under the
// configuration directory, followed by the directories listed in ARPX_PATH.
//
// # Configuration
//
// Flag defaults may be set in config.json or config.yaml in the
// configuration directory. See [resolveYAML] for the YAML key layout.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout (RFC3339, kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o arpx .
//
// Then --pprof-mode enables a profile and --pprof-dir sets its output
// directory.
package cli
