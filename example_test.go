package parsekit_test

import (
	"fmt"

	"github.com/kpumuk/parsekit"
	"github.com/kpumuk/parsekit/prim"
)

func ExampleSepBy() {
	ints := parsekit.SepBy(prim.Int(), prim.Literal(","))
	values, rest, err := ints.Parse("1,2,3;tail")
	fmt.Println(values, rest, err)
	// Output: [1 2 3] ;tail <nil>
}

func ExampleFold() {
	count := parsekit.Fold(prim.AnyLiteral("a", "b"), 0, func(n int, _ string) int { return n + 1 })
	n, rest, _ := count.Parse("abba!")
	fmt.Println(n, rest)
	// Output: 4 !
}

func ExampleRepeat() {
	// Keep-latest repetition: the last assignment wins.
	assign := prim.Delimited(prim.Literal("x="), prim.Int(), prim.Literal(";"))
	latest, rest, _ := parsekit.Repeat(assign).Parse("x=1;x=2;x=9;done")
	fmt.Println(latest, rest)
	// Output: 9 done
}

func ExampleManyN() {
	pairs, rest, _ := parsekit.ManyN(prim.AnyLiteral("ab", "cd"), 2).Parse("abcdab")
	fmt.Println(pairs, rest)
	// Output: [ab cd] ab
}
