package parsekit

import (
	"errors"
	"testing"
)

func TestFuncForwards(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	p := Func[int](func(input string) (int, string, error) {
		if input == "" {
			return 0, input, errBoom
		}
		return len(input), "", nil
	})

	if got, rest, err := p.Parse("abc"); got != 3 || rest != "" || err != nil {
		t.Fatalf("Parse(%q) = (%d, %q, %v), want (3, \"\", nil)", "abc", got, rest, err)
	}
	if _, rest, err := p.Parse(""); err != errBoom || rest != "" {
		t.Fatalf("Parse(\"\") = (_, %q, %v), want the function's own error", rest, err)
	}
}
