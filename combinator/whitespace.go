package combinator

import "unicode"

// WhitespaceChar consumes one Unicode whitespace code point.
var WhitespaceChar = Char(unicode.IsSpace)

// Space0 consumes any amount of whitespace, including none.
var Space0 = ZeroOrMore(WhitespaceChar)

// WhitespaceWrap runs p with surrounding whitespace consumed on both sides.
func WhitespaceWrap[T any](p Parser[T]) Parser[T] {
	return Right(Space0, Left(p, Space0))
}
