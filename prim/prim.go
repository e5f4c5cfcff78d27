// Package prim provides primitive text matchers satisfying the parsekit
// capability, plus the small glue (alternation, mapping, delimiting) needed
// to compose them into grammars.
//
// All matchers backtrack: a failed match consumes nothing and returns the
// input unchanged.
package prim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kpumuk/parsekit"
)

// Literal matches s exactly at the start of the input and yields it.
func Literal(s string) parsekit.Parser[string] {
	return parsekit.Func[string](func(input string) (string, string, error) {
		if !strings.HasPrefix(input, s) {
			return "", input, fmt.Errorf("expected %q", s)
		}
		return s, input[len(s):], nil
	})
}

// AnyLiteral matches the first of alts that prefixes the input. Earlier
// alternatives shadow later ones, so longer literals should come first.
func AnyLiteral(alts ...string) parsekit.Parser[string] {
	return parsekit.Func[string](func(input string) (string, string, error) {
		for _, s := range alts {
			if strings.HasPrefix(input, s) {
				return s, input[len(s):], nil
			}
		}
		return "", input, fmt.Errorf("expected one of %q", alts)
	})
}

// TakeWhile1 matches the longest nonempty run of bytes satisfying pred.
// what names the expected byte class in the failure message.
func TakeWhile1(pred func(byte) bool, what string) parsekit.Parser[string] {
	return parsekit.Func[string](func(input string) (string, string, error) {
		i := 0
		for i < len(input) && pred(input[i]) {
			i++
		}
		if i == 0 {
			return "", input, fmt.Errorf("expected %s", what)
		}
		return input[:i], input[i:], nil
	})
}

// Int matches a decimal integer with an optional leading minus sign.
func Int() parsekit.Parser[int] {
	return parsekit.Func[int](func(input string) (int, string, error) {
		i := 0
		if i < len(input) && input[i] == '-' {
			i++
		}
		digits := i
		for i < len(input) && isDigit(input[i]) {
			i++
		}
		if i == digits {
			return 0, input, errors.New("expected integer")
		}
		n, err := strconv.Atoi(input[:i])
		if err != nil {
			return 0, input, fmt.Errorf("integer %q out of range", input[:i])
		}
		return n, input[i:], nil
	})
}

// Alt applies each option in turn on the same input, returning the first
// success. When every option fails, the last option's error is returned.
func Alt[T any](options ...parsekit.Parser[T]) parsekit.Parser[T] {
	return parsekit.Func[T](func(input string) (T, string, error) {
		var err error = errors.New("no alternatives")
		for _, p := range options {
			value, rest, perr := p.Parse(input)
			if perr == nil {
				return value, rest, nil
			}
			err = perr
		}
		var zero T
		return zero, input, err
	})
}

// Map transforms a parser's output with fn, leaving consumption and failure
// behavior untouched.
func Map[T, U any](parser parsekit.Parser[T], fn func(T) U) parsekit.Parser[U] {
	return parsekit.Func[U](func(input string) (U, string, error) {
		value, rest, err := parser.Parse(input)
		if err != nil {
			var zero U
			return zero, input, err
		}
		return fn(value), rest, nil
	})
}

// Delimited matches left, inner, and right in sequence, yielding inner's
// output. Failure at any point rewinds to the original input.
func Delimited[L, T, R any](left parsekit.Parser[L], inner parsekit.Parser[T], right parsekit.Parser[R]) parsekit.Parser[T] {
	return parsekit.Func[T](func(input string) (T, string, error) {
		var zero T
		_, rest, err := left.Parse(input)
		if err != nil {
			return zero, input, err
		}
		value, rest, err := inner.Parse(rest)
		if err != nil {
			return zero, input, err
		}
		_, rest, err = right.Parse(rest)
		if err != nil {
			return zero, input, err
		}
		return value, rest, nil
	})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
