package dimacs

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vkolor/chromab/core"
)

// Write emits g in DIMACS format: a "p edge n m" header followed by one
// "e u v" line per edge, using 1-based indices assigned in g.Vertices()
// order (the inverse of Parse's vertex-ID convention when g's vertex IDs
// are themselves "1".."n"; for graphs built with other ID schemes, Write
// still produces a valid, renumbered DIMACS instance).
//
// Complexity: O(V + E log E) for the deterministic edge ordering.
func Write(w io.Writer, g *core.Graph) error {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i + 1
	}

	type edge struct{ u, v int }
	var edges []edge
	for _, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dimacs: Write: %w", err)
		}
		u := index[id]
		for _, nbrID := range nbrs {
			v := index[nbrID]
			if u < v {
				edges = append(edges, edge{u, v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})

	if _, err := fmt.Fprintf(w, "p edge %d %d\n", len(ids), len(edges)); err != nil {
		return fmt.Errorf("dimacs: Write: %w", err)
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "e %s %s\n", strconv.Itoa(e.u), strconv.Itoa(e.v)); err != nil {
			return fmt.Errorf("dimacs: Write: %w", err)
		}
	}

	return nil
}
