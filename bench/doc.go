// Package bench generates core.Graph instances for common graph-coloring
// benchmark families (complete, cycle, path, star, wheel, bipartite,
// Petersen) plus randomized generators (Erdos-Renyi G(n,p), random
// d-regular), so coloring.Solve can be exercised against known or
// statistically characterizable chromatic numbers without hand-authoring
// DIMACS fixtures.
//
// Every generator accepts the same functional Option set: a deterministic
// ID scheme and a seeded random source, so two calls with identical
// arguments and options always produce an identical graph.
package bench
