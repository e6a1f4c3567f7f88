package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/vkolor/chromab/bench"
	"github.com/vkolor/chromab/coloring"
	"github.com/vkolor/chromab/core"
	"github.com/vkolor/chromab/csr"
)

// benchInstance names one fixed-family generator to include in the sweep.
type benchInstance struct {
	name string
	make func() (*core.Graph, error)
}

func benchCommand() cli.Command {
	return cli.Command{
		Name:   "bench",
		Usage:  "solve a fixed sweep of benchmark instances with both strategies and compare",
		Action: runBench,
	}
}

func runBench(c *cli.Context) error {
	instances := []benchInstance{
		{"complete-8", func() (*core.Graph, error) { return bench.Complete(8) }},
		{"cycle-9", func() (*core.Graph, error) { return bench.Cycle(9) }},
		{"bipartite-5-5", func() (*core.Graph, error) { return bench.Bipartite(5, 5) }},
		{"petersen", func() (*core.Graph, error) { return bench.Petersen() }},
		{"wheel-10", func() (*core.Graph, error) { return bench.Wheel(10) }},
		{"gnp-30-0.3", func() (*core.Graph, error) { return bench.GNP(30, 0.3, bench.WithSeed(1)) }},
		{"regular-20-4", func() (*core.Graph, error) { return bench.RandomRegular(20, 4, bench.WithSeed(1)) }},
	}

	var errs error
	for _, inst := range instances {
		if err := runOneBenchInstance(inst); err != nil {
			errs = multierror.Append(errs, xerrors.Errorf("%s: %w", inst.name, err))
		}
	}

	return errs
}

func runOneBenchInstance(inst benchInstance) error {
	g, err := inst.make()
	if err != nil {
		return err
	}
	cg, err := csr.Build(g)
	if err != nil {
		return err
	}

	sewell, err := coloring.Solve(cg, coloring.Options{Strategy: coloring.StrategySewell})
	if err != nil {
		return err
	}
	furini, err := coloring.Solve(cg, coloring.Options{Strategy: coloring.StrategyFurini})
	if err != nil {
		return err
	}

	logger.WithFields(map[string]interface{}{
		"instance":             inst.name,
		"vertices":             cg.N,
		"k":                    sewell.K,
		"sewell_nodes_visited": sewell.NodesVisited,
		"furini_nodes_visited": furini.NodesVisited,
		"sewell_branches_cut":  sewell.BranchesCut,
		"furini_branches_cut":  furini.BranchesCut,
	}).Info("bench instance complete")

	fmt.Printf("%-16s V=%-4d K=%-3d sewell_nodes=%-8d furini_nodes=%-8d\n",
		inst.name, cg.N, sewell.K, sewell.NodesVisited, furini.NodesVisited)

	return nil
}
