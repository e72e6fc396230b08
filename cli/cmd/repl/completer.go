package repl

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/expr-lang/expr/builtin"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/arpx/cli/style"
	"github.com/ardnew/arpx/job"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "tree", "find", "clear", "quit"}

// queryFields are the variables visible to query expressions.
var queryFields = []string{
	"name", "onsucceed", "onfail", "silent", "monitors",
	"task", "index", "concurrent",
}

// builtinNames are the expr-lang builtin functions, sorted.
var builtinNames = slices.Sorted(maps.Keys(builtin.Index))

// isWordBoundary reports whether r delimits a completion word: whitespace,
// quotes, and expr-lang operator or punctuation characters. Hyphens are
// excluded because process names may contain them.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t', '"', '\'', '`',
		'(', ')', '[', ']', '{', '}',
		'+', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';':
		return true
	}

	return false
}

// wordBounds returns the word around cursor and its byte boundaries within
// input. The word is empty when the cursor sits between two boundaries.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// queryCandidates returns the completions offered in query mode: the query
// fields, the distinct process names and successors of j, and the builtins.
func queryCandidates(j *job.Job) []string {
	seen := make(map[string]struct{})
	out := slices.Clone(queryFields)

	add := func(name string) {
		if name == "" {
			return
		}

		if _, ok := seen[name]; ok {
			return
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, f := range queryFields {
		seen[f] = struct{}{}
	}

	if j != nil {
		for m := range j.All() {
			add(m.Process.Name)

			if m.Process.OnSucceed != nil {
				add(*m.Process.OnSucceed)
			}

			if m.Process.OnFail != nil {
				add(*m.Process.OnFail)
			}

			for _, mon := range m.Process.LogMonitors {
				add(mon)
			}
		}
	}

	for _, name := range builtinNames {
		add(name)
	}

	return out
}

// complete returns the candidates fuzzy-matching word, best first. An
// empty word matches nothing.
func complete(word string, candidates []string) fuzzy.Matches {
	if word == "" || len(candidates) == 0 {
		return nil
	}

	return fuzzy.Find(word, candidates)
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within width. The selected candidate (when tabbing) uses the selected
// style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := style.Hint.Render("...")
	reserve := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		w := lipgloss.Width(rendered)
		if i > 0 {
			w += len(sep)
		}

		// Leave room for the ellipsis unless this is the last candidate.
		need := used + w
		if i < len(matches)-1 {
			need += len(sep) + reserve
		}

		if i > 0 && need > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += w
	}

	return b.String()
}

// renderCandidate renders one candidate with its matched characters
// highlighted. Builtin functions get a "()" suffix.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base := suggestionStyle
	highlight := lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)

	if selected {
		base = selectedStyle
		highlight = selectedStyle.Bold(true)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if _, ok := builtin.Index[match.Str]; ok {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}
