package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/boruvka/core"
)

// printAdjacency writes one line per vertex, "v: e1 e2 ...", edges in
// ascending weight order.
func printAdjacency(w io.Writer, g *core.Graph) error {
	for v := 0; v < g.VertexCount(); v++ {
		nbrs, err := g.Neighbours(v)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%d:", v); err != nil {
			return err
		}
		for _, e := range nbrs {
			if _, err = fmt.Fprintf(w, " %v", e); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// printReport writes the full demo report: the input graph, the tree and its weight.
func printReport(w io.Writer, g, tree *core.Graph, total int64) error {
	if _, err := fmt.Fprintln(w, "Graph:"); err != nil {
		return err
	}
	if err := printAdjacency(w, g); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nBoruvka MST:\n"); err != nil {
		return err
	}
	if err := printAdjacency(w, tree); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nThe total min weight of the MST is: %d\n", total)

	return err
}
