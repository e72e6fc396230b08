//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the arpx module embedded at build time.
// It is printed by the CLI's --version flag.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "arpx"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Job description parser and inspector"
	// Extension is the file name suffix tried when resolving job files in
	// the search path.
	Extension = ".arpx"
	// PathEnv names the environment variable holding additional job file
	// directories, separated by [os.PathListSeparator].
	PathEnv = "ARPX_PATH"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
