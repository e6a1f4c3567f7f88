// Package csr freezes a *core.Graph into the compressed-sparse-row
// adjacency layout the coloring search engine operates on.
//
// CSR construction is deliberately separated from the mutable core.Graph:
// once a caller has finished building (or parsing, or generating) a graph,
// Build snapshots it once into flat, immutable slices so that every lookup
// in the hot B&B loop is a bounds-checked slice index plus a binary search,
// never a map lookup or a lock.
//
// Invariant: for every vertex v, Adj[Start[v] : Start[v]+Deg[v]] is sorted
// ascending and contains no duplicates and no self-loop.
package csr
