package combinator

import (
	"strings"
	"unicode/utf8"
)

// Parser consumes a prefix of input.
//
// On success, rest is the unconsumed suffix and value is the parsed result.
// On failure, ok is false, value is the zero value, and rest is the input at
// the point where parsing stopped.
type Parser[T any] func(input string) (rest string, value T, ok bool)

// Parse applies p to input.
func (p Parser[T]) Parse(input string) (rest string, value T, ok bool) {
	return p(input)
}

// Pred returns a parser that succeeds only if p succeeds and pred holds on
// its value. See [Pred].
func (p Parser[T]) Pred(pred func(T) bool) Parser[T] {
	return Pred(p, pred)
}

// Tuple holds the results of two sequenced parsers.
type Tuple[A, B any] struct {
	Left  A
	Right B
}

// Literal matches expected exactly.
// The value is the matched text.
func Literal(expected string) Parser[string] {
	return func(input string) (string, string, bool) {
		if !strings.HasPrefix(input, expected) {
			return input, "", false
		}

		return input[len(expected):], expected, true
	}
}

// AnyChar consumes a single code point.
// It fails only on empty input.
var AnyChar Parser[rune] = func(input string) (string, rune, bool) {
	if input == "" {
		return input, 0, false
	}

	r, size := utf8.DecodeRuneInString(input)

	return input[size:], r, true
}

// Char consumes a single code point for which pred holds.
func Char(pred func(rune) bool) Parser[rune] {
	return AnyChar.Pred(pred)
}

// Map transforms the value of a successful parse.
// Failures pass through unchanged.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return func(input string) (string, B, bool) {
		rest, a, ok := p(input)
		if !ok {
			var zero B

			return rest, zero, false
		}

		return rest, fn(a), true
	}
}

// AndThen runs p, passes its value to next to obtain a second parser, and
// runs that parser on the remaining input. It allows the grammar to depend on
// previously parsed data.
func AndThen[A, B any](p Parser[A], next func(A) Parser[B]) Parser[B] {
	return func(input string) (string, B, bool) {
		rest, a, ok := p(input)
		if !ok {
			var zero B

			return rest, zero, false
		}

		return next(a)(rest)
	}
}

// Pred returns a parser that succeeds only if p succeeds and pred holds on
// its value. On failure the original input is reported; nothing is consumed.
func Pred[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return func(input string) (string, T, bool) {
		rest, value, ok := p(input)
		if ok && pred(value) {
			return rest, value, true
		}

		var zero T

		return input, zero, false
	}
}
