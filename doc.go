// Package chromab is an exact solver for the graph vertex-coloring
// problem: given an undirected simple graph, find the chromatic number
// chi(G) and a witness coloring achieving it.
//
// Subpackages:
//
//	bitset/   — fixed-width 63-color bitset primitive
//	core/     — mutable, thread-safe undirected simple graph builder
//	csr/      — immutable compressed-sparse-row adjacency snapshot
//	coloring/ — the branch-and-bound solver (DSATUR/Sewell, Furini reduced-graph bound)
//	dimacs/   — DIMACS graph-coloring benchmark format reader/writer
//	bench/    — deterministic and randomized benchmark graph generators
//	cmd/chromab/ — CLI: solve, generate, bench
package chromab
