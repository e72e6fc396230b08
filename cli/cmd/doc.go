// Package cmd implements the arpx subcommands: check, fmt, query, find, and
// repl.
//
// Every command names its input with a source argument. "-" reads standard
// input. Any other source is a file path, or a name looked up in the search
// path installed with [WithSearchPath].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration directory.
	ConfigIdentifier = "config"
)
