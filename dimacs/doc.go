// Package dimacs parses the DIMACS graph-coloring benchmark text format
// ("p edge n m" header, "e u v" edge lines, "c ..." comments) into a
// core.Graph, so standard benchmark instances (queen5_5, myciel*, le450_*,
// and similar) can be fed directly into coloring.Solve via csr.Build.
package dimacs
