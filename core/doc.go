// Package core defines Graph and Vertex, the mutable, thread-safe,
// undirected simple-graph representation callers build up before handing it
// to csr.Build (and, downstream, to coloring.Solve).
//
// Unlike a general-purpose graph library, a chromatic-number solver only
// ever operates on simple undirected graphs: no self-loops, no parallel
// edges, no per-edge direction. Graph enforces exactly that shape rather
// than exposing the directed/weighted/multigraph configuration knobs a
// coloring caller would never use.
//
// Graph uses two independent sync.RWMutex locks (muVert for the vertex
// catalog, muEdge for edges and adjacency) so reads on one side never block
// reads on the other.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrDuplicateVertex - AddVertex called twice with the same ID.
//	ErrUnknownVertex   - AddEdge/Neighbors referenced a vertex that was never added.
//	ErrSelfLoop        - AddEdge(v, v): chromatic number is undefined with self-loops.
//	ErrDuplicateEdge   - the same unordered pair was already added.
package core
