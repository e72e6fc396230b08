package combinator

// Pair runs p1 then p2 on the remainder of p1.
// If either fails, the failure position of that parser is reported.
func Pair[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple[A, B]] {
	return func(input string) (string, Tuple[A, B], bool) {
		var t Tuple[A, B]

		rest, a, ok := p1(input)
		if !ok {
			return rest, t, false
		}

		rest, b, ok := p2(rest)
		if !ok {
			return rest, t, false
		}

		t.Left, t.Right = a, b

		return rest, t, true
	}
}

// Left sequences p1 and p2, keeping the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) A { return t.Left })
}

// Right sequences p1 and p2, keeping the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) B { return t.Right })
}

// Either tries p1 and, if it fails, runs p2 on the original input.
// The first parser to succeed wins; there is no longest-match comparison.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return func(input string) (string, T, bool) {
		if rest, value, ok := p1(input); ok {
			return rest, value, true
		}

		return p2(input)
	}
}

// Optional always succeeds. The value is a pointer to the result of p, or nil
// if p failed, in which case no input is consumed.
func Optional[T any](p Parser[T]) Parser[*T] {
	return func(input string) (string, *T, bool) {
		rest, value, ok := p(input)
		if !ok {
			return input, nil, true
		}

		return rest, &value, true
	}
}
