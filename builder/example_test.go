package builder_test

import (
	"fmt"

	"github.com/katalvlaran/watset/builder"
)

// ExampleCliques builds two triangles joined by a weak bridge.
func ExampleCliques() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Cliques(2, 3, 0.5))
	if err != nil {
		fmt.Println(err)
		return
	}
	w, _ := g.Weight("A", "D")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Bridge:", w)

	// Output:
	// Vertices: [A B C D E F]
	// Edges: 7
	// Bridge: 0.5
}
