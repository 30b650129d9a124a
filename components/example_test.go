// SPDX-License-Identifier: MIT

package components_test

import (
	"fmt"

	"github.com/katalvlaran/simgraph/components"
	"github.com/katalvlaran/simgraph/similarity"
)

// ExampleFind groups a small relation with both methods.
func ExampleFind() {
	adj := similarity.NewAdjacency(5)
	_ = adj.AddEdge(0, 3)
	_ = adj.AddEdge(3, 4)

	for _, m := range []string{components.MethodUnionFind, components.MethodBFS} {
		p, _ := components.Find(adj, components.WithMethod(m))
		fmt.Println(m, p.Components(), "isolated:", p.Isolated())
	}
	// Output:
	// union-find [[0 3 4] [1] [2]] isolated: [1 2]
	// bfs [[0 3 4] [1] [2]] isolated: [1 2]
}
