package core_test

import (
	"fmt"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
)

// ExampleGraph_Join_multipleEdge demonstrates scenario E1: adding a duplicate
// edge to a simple graph fails with ErrMultipleEdge, and a self-loop fails
// with ErrLoopEdge.
func ExampleGraph_Join_multipleEdge() {
	g := core.NewGraph(3)
	if _, err := g.Join(0, 1, "", core.NoColor, 0); err != nil {
		fmt.Println("unexpected:", err)
	}
	_, err := g.Join(0, 1, "", core.NoColor, 0)
	fmt.Println(err)

	_, err = g.Join(2, 2, "", core.NoColor, 0)
	fmt.Println(err)

	// Output:
	// core: multiple edge not allowed
	// core: loop edge not allowed
}

// ExampleContract_sameVertex demonstrates scenario E2: contracting a vertex
// with itself fails with ErrSameVertexContract.
func ExampleContract_sameVertex() {
	g := core.NewGraph(3)
	_, err := core.Contract(g, 1, 1)
	fmt.Println(err)

	// Output:
	// core: same vertex contracted twice
}
