package parsekit_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kpumuk/parsekit"
	"github.com/kpumuk/parsekit/internal/testutil"
	"github.com/kpumuk/parsekit/prim"
)

func FuzzSepByIntComma(f *testing.F) {
	for _, s := range testutil.FuzzSeeds() {
		f.Add(s)
	}

	ints := parsekit.SepBy(prim.Int(), prim.Literal(","))

	f.Fuzz(func(t *testing.T, input string) {
		got, rest, err := ints.Parse(input)
		got2, rest2, err2 := ints.Parse(input)
		if !reflect.DeepEqual(got, got2) || rest != rest2 || (err == nil) != (err2 == nil) {
			t.Fatalf("not deterministic on %q: (%v, %q, %v) vs (%v, %q, %v)", input, got, rest, err, got2, rest2, err2)
		}

		if err != nil {
			if rest != input {
				t.Fatalf("failed parse moved the remainder: %q -> %q", input, rest)
			}
			return
		}
		if len(got) == 0 {
			t.Fatalf("success with zero elements on %q", input)
		}
		if !strings.HasSuffix(input, rest) {
			t.Fatalf("remainder %q is not a suffix of input %q", rest, input)
		}
	})
}

func FuzzFoldNeverFails(f *testing.F) {
	for _, s := range testutil.FuzzSeeds() {
		f.Add(s)
	}

	// Counts single digits; every match consumes exactly one byte, so the
	// count must equal the consumed length.
	count := parsekit.Fold(
		prim.AnyLiteral("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		0,
		func(acc int, _ string) int { return acc + 1 },
	)

	f.Fuzz(func(t *testing.T, input string) {
		got, rest, err := count.Parse(input)
		if err != nil {
			t.Fatalf("Fold failed on %q: %v", input, err)
		}
		if !strings.HasSuffix(input, rest) {
			t.Fatalf("remainder %q is not a suffix of input %q", rest, input)
		}
		if consumed := len(input) - len(rest); got != consumed {
			t.Fatalf("count = %d, consumed %d bytes of %q", got, consumed, input)
		}
	})
}

func FuzzManyN(f *testing.F) {
	for i, s := range testutil.FuzzSeeds() {
		f.Add(s, uint8(i))
	}

	f.Fuzz(func(t *testing.T, input string, n uint8) {
		k := int(n % 8)
		p := parsekit.ManyN(prim.AnyLiteral("a", "b", "0", "1", ","), k)

		got, rest, err := p.Parse(input)
		if err != nil {
			if got != nil {
				t.Fatalf("partial sequence escaped on %q: %v", input, got)
			}
			if rest != input {
				t.Fatalf("failed parse moved the remainder: %q -> %q", input, rest)
			}
			return
		}
		if len(got) != k {
			t.Fatalf("sequence length = %d, want exactly %d", len(got), k)
		}
		if !strings.HasSuffix(input, rest) {
			t.Fatalf("remainder %q is not a suffix of input %q", rest, input)
		}
	})
}
