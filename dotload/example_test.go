package dotload_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/dotload"
)

// ExampleRead loads a chain and a quoted pair into an empty graph.
func ExampleRead() {
	src := `graph friends {
    "ann" -- "bo";
    bo -- cy -- dee
}`
	g := core.NewGraph[string, int]()
	res, err := dotload.Read[int](context.Background(), strings.NewReader(src), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Nodes())
	fmt.Printf("lines=%d edges=%d ignored=%d\n", res.Lines, res.Edges, res.Ignored)

	// Output:
	// [ann bo cy dee]
	// lines=4 edges=3 ignored=2
}

// ExampleParseLine shows how a single line is classified.
func ExampleParseLine() {
	for _, line := range []string{
		`"user0" -- "user1";`,
		"// user2 -- user3",
		"user4 -- ;",
	} {
		labels, kind := dotload.ParseLine(line)
		fmt.Println(kind == dotload.LineEdge, labels)
	}

	// Output:
	// true [user0 user1]
	// false []
	// false []
}
