// Package combinator provides generic, input-agnostic parsing primitives that
// compose into recursive-descent grammars.
//
// A [Parser] is a function from an input string to the unconsumed remainder,
// a value, and a success flag. Grammars are built by composing parsers with
// sequencing ([Pair], [Left], [Right]), choice ([Either]), repetition ([N]),
// and value transforms ([Map], [AndThen], [Pred]); grammar code never indexes
// into the input directly.
//
// # Failure Position
//
// A failed parser reports where it stopped. Primitives ([Literal], [Char])
// and [Pred] report the input they were given; [Optional] never fails.
// [Either] runs its second parser on the original input and, when both fail,
// reports wherever the second one stopped, which may be past that input.
// [Pair] and its projections report the position of whichever side failed. [N] does not rewind: when fewer than the minimum
// number of repetitions succeed, it reports the input at the first
// unsuccessful attempt, after the repetitions that did succeed.
//
// # Example
//
//	word := combinator.Map(
//		combinator.OneOrMore(combinator.Char(unicode.IsLetter)),
//		func(r []rune) string { return string(r) },
//	)
//	greeting := combinator.Left(word, combinator.Literal("!"))
//
//	rest, value, ok := greeting.Parse("hello!")
//	// rest == "", value == "hello", ok == true
//
// Failures are values, never panics.
package combinator
