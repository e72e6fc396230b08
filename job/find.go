package job

import (
	"github.com/sahilm/fuzzy"
)

// Find returns the processes whose names fuzzy-match pattern, best match
// first. An empty pattern matches nothing.
func (j *Job) Find(pattern string) []Match {
	if pattern == "" {
		return nil
	}

	all := make([]Match, 0, j.Len())
	for m := range j.All() {
		all = append(all, m)
	}

	found := fuzzy.FindFrom(pattern, matchSource(all))

	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = all[f.Index]
	}

	return matches
}

// matchSource adapts a slice of matches to [fuzzy.Source].
type matchSource []Match

func (s matchSource) String(i int) string { return s[i].Process.Name }

func (s matchSource) Len() int { return len(s) }
