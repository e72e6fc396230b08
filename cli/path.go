package cli

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/ardnew/mung"

	"github.com/ardnew/arpx/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// baseJobs names the directory of job files under the configuration
// directory.
const baseJobs = "jobs"

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// configPath joins the configuration directory with elem.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// cachePath joins the cache directory with elem.
func cachePath(elem ...string) string {
	return filepath.Join(append([]string{pkg.CacheDir()}, elem...)...)
}

// searchPath returns the directories searched for job files: the jobs
// directory under the configuration directory, then each directory listed in
// [pkg.PathEnv]. Empty entries are dropped.
func searchPath() []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(pkg.PathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(configPath(baseJobs)),
	).String()

	return slices.DeleteFunc(
		filepath.SplitList(list),
		func(dir string) bool { return dir == "" },
	)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configPath(baseJobs), cachePath()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
