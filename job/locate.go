package job

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrorMarker precedes the failing character in a [Location] context.
const ErrorMarker = " !ERROR-> "

// contextRunes is the number of runes shown on each side of the failing
// character.
const contextRunes = 20

// Location is a position in a source together with the text surrounding it.
type Location struct {
	// Line is 1-based.
	Line int `json:"line" yaml:"line"`
	// Column is the 0-based rune offset within Line.
	Column int `json:"column" yaml:"column"`
	// Context is the text around the position, with [ErrorMarker] inserted
	// immediately before the character at the position.
	Context string `json:"context" yaml:"context"`
}

// String returns the position as "line:column".
func (l Location) String() string {
	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Locate returns the location at which remaining begins in source.
//
// remaining is expected to be a suffix of source, as returned by a failed
// parser. Bounds are clamped, so Locate never fails.
func Locate(source, remaining string) Location {
	offset := clampOffset(source, remaining)
	before, after := source[:offset], source[offset:]

	loc := Location{Line: 1}
	for _, r := range before {
		if r == '\n' {
			loc.Line++
			loc.Column = 0
		} else {
			loc.Column++
		}
	}

	var b strings.Builder

	b.WriteString(lastRunes(before, contextRunes))
	b.WriteString(ErrorMarker)
	b.WriteString(firstRunes(after, contextRunes+1))

	loc.Context = b.String()

	return loc
}

func clampOffset(source, remaining string) int {
	return min(max(len(source)-len(remaining), 0), len(source))
}

// firstRunes returns the prefix of s holding at most n runes.
func firstRunes(s string, n int) string {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	return s[:i]
}

// lastRunes returns the suffix of s holding at most n runes.
func lastRunes(s string, n int) string {
	i := len(s)
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}

	return s[i:]
}
