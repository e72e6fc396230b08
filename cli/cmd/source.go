package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/arpx/pkg"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// resolve returns the path of the job file named by source.
//
// Source "-" is returned unchanged. A source naming an existing regular file
// is used as given. Otherwise each directory in dirs is searched, in order,
// for source and then source with [pkg.Extension] appended. Absolute
// sources are never searched.
func resolve(source string, dirs []string) (string, error) {
	if source == stdinSource {
		return source, nil
	}

	if isFile(source) {
		return source, nil
	}

	if !filepath.IsAbs(source) {
		names := []string{source}
		if !strings.HasSuffix(source, pkg.Extension) {
			names = append(names, source+pkg.Extension)
		}

		for _, dir := range dirs {
			for _, name := range names {
				if path := filepath.Join(dir, name); isFile(path) {
					return path, nil
				}
			}
		}
	}

	return "", ErrSourceNotFound.With(
		slog.String("source", source),
		slog.Any("search_path", dirs),
	)
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
