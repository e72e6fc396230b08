package combinator

// Unbounded is the Max of a [Range] with no upper limit.
const Unbounded = -1

// Range bounds the number of applications of a repeated parser.
//
// Min is the number of successful applications required. Max is the most
// applications attempted; a negative Max is [Unbounded].
type Range struct {
	Min, Max int
}

// From returns the range of n or more applications.
func From(n int) Range { return Range{Min: n, Max: Unbounded} }

// Span returns the range lo..hi, which attempts at most hi applications.
func Span(lo, hi int) Range { return Range{Min: lo, Max: hi} }

// SpanInclusive returns the range lo..=hi, which attempts at most hi+1
// applications.
func SpanInclusive(lo, hi int) Range { return Range{Min: lo, Max: hi + 1} }

func (r Range) bounded() bool { return r.Max >= 0 }

// N applies p repeatedly, greedily, at most r.Max times.
//
// It succeeds if at least r.Min applications succeed, with the input
// positioned after the last successful application. Otherwise it fails and
// reports the input at the first unsuccessful attempt; the repetitions that
// did succeed stay consumed.
//
// An unbounded repetition stops once r.Min is met and p succeeds without
// consuming input.
func N[T any](p Parser[T], r Range) Parser[[]T] {
	return func(input string) (string, []T, bool) {
		values := make([]T, 0)

		for count := 0; !r.bounded() || count < r.Max; count++ {
			rest, value, ok := p(input)
			if !ok {
				if count < r.Min {
					return input, nil, false
				}

				break
			}

			values = append(values, value)

			if rest == input && !r.bounded() && len(values) >= r.Min {
				break
			}

			input = rest
		}

		return input, values, true
	}
}

// ZeroOrMore is N(p, From(0)).
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] { return N(p, From(0)) }

// OneOrMore is N(p, From(1)).
func OneOrMore[T any](p Parser[T]) Parser[[]T] { return N(p, From(1)) }

// TwoOrMore is N(p, From(2)).
func TwoOrMore[T any](p Parser[T]) Parser[[]T] { return N(p, From(2)) }
