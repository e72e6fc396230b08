package combinator

import (
	"fmt"
	"testing"
	"unicode"
)

func TestWhitespaceWrap(t *testing.T) {
	check(t, WhitespaceWrap(Literal("foo")), []parserCase[string]{
		{name: "bare", input: "foo", want: pass("", "foo")},
		{name: "spaces", input: "    foo     ", want: pass("", "foo")},
		{name: "newlines", input: "\n                foo\n            ", want: pass("", "foo")},
		{name: "trailing word", input: "    foo        bar", want: pass("bar", "foo")},
		{name: "mismatch after space", input: "   bar   ", want: fail[string]("bar   ")},
	})
}

func TestWhitespaceChar(t *testing.T) {
	check(t, WhitespaceChar, []parserCase[rune]{
		{name: "space", input: " ", want: pass("", ' ')},
		{name: "tab", input: "\tx", want: pass("x", '\t')},
		{name: "letter", input: "f", want: fail[rune]("f")},
		{name: "empty", input: "", want: fail[rune]("")},
	})
}

func TestSpace0(t *testing.T) {
	count := Map(Space0, func(r []rune) int { return len(r) })

	check(t, count, []parserCase[int]{
		{name: "some", input: " \t\nx", want: pass("x", 3)},
		{name: "none", input: "x", want: pass("x", 0)},
	})
}

func Example() {
	name := Map(
		OneOrMore(Char(unicode.IsLetter)),
		func(r []rune) string { return string(r) },
	)
	greeting := Left(WhitespaceWrap(name), Literal("!"))

	rest, value, ok := greeting.Parse("  hello !tail")
	fmt.Printf("%q %q %v\n", rest, value, ok)

	rest, _, ok = greeting.Parse("  hello ?")
	fmt.Printf("%q %v\n", rest, ok)
	// Output:
	// "tail" "hello" true
	// "?" false
}
