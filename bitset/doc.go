// Package bitset implements a fixed-capacity set of colors backed by a
// single uint64.
//
// Every vertex coloring search in this module needs the same primitive:
// "which colors are forbidden on this vertex". A single machine word is
// enough for any benchmark instance this solver targets (DIMACS graphs
// rarely need more than a few dozen colors, and the branch-and-bound
// search itself refuses to proceed past 63 — see coloring.ErrColorCapacity),
// so Set trades generality for O(1) branch-free membership, popcount and
// lowest-bit operations via math/bits intrinsics.
//
// Complexity: every method below is O(1).
package bitset
