package parsekit

// SepBy repeatedly applies element, requiring separator between occurrences.
// It fails with element's own error unless element succeeds at least once; no
// separator is attempted before the first element. After that, each
// (separator, element) pair is attempted as one unit: if either half fails,
// the whole unit is rewound and SepBy succeeds with the elements collected so
// far, leaving the remainder at the end of the last consumed element. A
// trailing separator is therefore never consumed.
func SepBy[E, S any](element Parser[E], separator Parser[S]) Parser[[]E] {
	return Func[[]E](func(input string) ([]E, string, error) {
		first, rest, err := element.Parse(input)
		if err != nil {
			return nil, input, err
		}
		elements := []E{first}
		for {
			_, afterSep, err := separator.Parse(rest)
			if err != nil {
				return elements, rest, nil
			}
			value, afterElem, err := element.Parse(afterSep)
			if err != nil {
				return elements, rest, nil
			}
			elements = append(elements, value)
			rest = afterElem
		}
	})
}

// Fold applies parser zero or more times, reducing the outputs into an
// accumulator that starts as initial. It never fails: the first failed
// application ends the loop, its error is discarded, and the accumulator as
// held so far is returned with the remainder of the last success. combine
// must not mutate the accumulator it receives; it returns the replacement.
func Fold[T, A any](parser Parser[T], initial A, combine func(A, T) A) Parser[A] {
	return Func[A](func(input string) (A, string, error) {
		acc := initial
		rest := input
		for {
			value, next, err := parser.Parse(rest)
			if err != nil {
				return acc, rest, nil
			}
			acc = combine(acc, value)
			rest = next
		}
	})
}

// FoldMut is Fold with an in-place combine, for accumulators that are
// expensive to rebuild on every step. seed produces a fresh accumulator for
// each Parse call: in-place updates usually mean the accumulator holds
// slices or maps, and sharing one stored value across calls would leak state
// between them.
func FoldMut[T, A any](parser Parser[T], seed func() A, combine func(*A, T)) Parser[A] {
	return Func[A](func(input string) (A, string, error) {
		acc := seed()
		rest := input
		for {
			value, next, err := parser.Parse(rest)
			if err != nil {
				return acc, rest, nil
			}
			combine(&acc, value)
			rest = next
		}
	})
}

// Repeat applies parser until it fails, returning the last successful output
// and the remainder immediately after it. Zero successes fail with exactly
// the error a single application produces.
func Repeat[T any](parser Parser[T]) Parser[T] {
	return Func[T](func(input string) (T, string, error) {
		last, rest, err := parser.Parse(input)
		if err != nil {
			var zero T
			return zero, input, err
		}
		for {
			value, next, err := parser.Parse(rest)
			if err != nil {
				return last, rest, nil
			}
			last = value
			rest = next
		}
	})
}

// ManyN applies parser exactly n times, returning the n outputs in order and
// the remainder after the n-th application. If any application fails, ManyN
// fails with that error unchanged and no partial sequence is returned.
// n <= 0 succeeds with an empty sequence and the input untouched.
func ManyN[T any](parser Parser[T], n int) Parser[[]T] {
	return ManyNReleasing(parser, n, nil)
}

// ManyNReleasing is ManyN for outputs that own resources. When the k-th
// application fails, the k-1 outputs already produced are handed to release
// in reverse order of production, exactly once each, before the error is
// returned; no partial sequence escapes. On success nothing is released and
// the caller owns all n outputs. A nil release is ignored.
func ManyNReleasing[T any](parser Parser[T], n int, release func(T)) Parser[[]T] {
	if n < 0 {
		n = 0
	}
	return Func[[]T](func(input string) ([]T, string, error) {
		produced := make([]T, 0, n)
		rest := input
		for len(produced) < n {
			value, next, err := parser.Parse(rest)
			if err != nil {
				if release != nil {
					for i := len(produced) - 1; i >= 0; i-- {
						release(produced[i])
					}
				}
				return nil, input, err
			}
			produced = append(produced, value)
			rest = next
		}
		return produced, rest, nil
	})
}
