// Package parsekit provides a minimal parser capability and repetition
// combinators layered on top of it.
//
// A Parser consumes a prefix of its input and returns a typed value plus the
// unconsumed remainder, or an error. Every combinator in this package is
// itself a Parser, so combinators nest freely and interoperate with any
// outside implementation of the capability. Errors are opaque here: the
// combinators propagate or discard them, and never create, inspect, or wrap
// one.
package parsekit

// Parser maps an input to a typed value and the unconsumed remainder, or an
// error. Implementations must be pure: applying the same parser to the same
// input twice yields the same result, and a failed application must not have
// consumed input from the caller's perspective. By convention a failed Parse
// returns the zero value and the original input as rest.
type Parser[T any] interface {
	Parse(input string) (value T, rest string, err error)
}

// Func adapts a plain function to the Parser interface.
type Func[T any] func(input string) (T, string, error)

// Parse applies the function to input.
func (f Func[T]) Parse(input string) (T, string, error) { return f(input) }
