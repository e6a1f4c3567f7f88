package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/vkolor/chromab/coloring"
	"github.com/vkolor/chromab/csr"
	"github.com/vkolor/chromab/dimacs"
)

var (
	nodesVisitedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chromab_nodes_visited_total",
		Help: "Total branch-and-bound nodes visited across all solve invocations.",
	})
	branchesCutMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chromab_branches_cut_total",
		Help: "Total branches pruned across all solve invocations.",
	})
	bestKMetric = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chromab_best_k",
		Help: "Number of colors in the best coloring found by the most recent solve.",
	})
)

func solveCommand() cli.Command {
	return cli.Command{
		Name:      "solve",
		Usage:     "compute the chromatic number of a DIMACS graph instance",
		ArgsUsage: "<dimacs-file>",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "strategy",
				Value: "sewell",
				Usage: "branch-and-bound strategy: sewell or furini",
			},
			cli.DurationFlag{
				Name:  "time-limit",
				Usage: "wall-clock search budget; 0 means unlimited",
			},
			cli.IntFlag{
				Name:  "metrics-port",
				Value: 0,
				Usage: "if non-zero, serve Prometheus metrics on this port while solving",
			},
		},
		Action: runSolve,
	}
}

func runSolve(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return xerrors.New("solve: a DIMACS file path is required")
	}

	strategy, err := parseStrategy(c.String("strategy"))
	if err != nil {
		return err
	}

	if port := c.Int("metrics-port"); port != 0 {
		stopMetrics := serveMetrics(port)
		defer stopMetrics()
	}

	f, err := os.Open(path)
	if err != nil {
		return xerrors.Errorf("solve: opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	g, stats, err := dimacs.Parse(f)
	if err != nil {
		return xerrors.Errorf("solve: parsing %s: %w", path, err)
	}
	logger.WithField("stats", fmt.Sprintf("%+v", stats)).Info("parsed instance")

	cg, err := csr.Build(g)
	if err != nil {
		return xerrors.Errorf("solve: building CSR graph: %w", err)
	}

	res, err := coloring.Solve(cg, coloring.Options{
		Strategy:  strategy,
		TimeLimit: c.Duration("time-limit"),
		Progress: func(nodesVisited int64, ub, lb int, elapsed time.Duration, branchesCut int64) {
			logger.WithFields(map[string]interface{}{
				"nodes_visited": nodesVisited,
				"ub":            ub,
				"lb":            lb,
				"elapsed":       elapsed.String(),
				"branches_cut":  branchesCut,
			}).Info("progress")
		},
	})
	if err != nil {
		return xerrors.Errorf("solve: %w", err)
	}

	nodesVisitedMetric.Add(float64(res.NodesVisited))
	branchesCutMetric.Add(float64(res.BranchesCut))
	bestKMetric.Set(float64(res.K))

	logger.WithFields(map[string]interface{}{
		"k":             res.K,
		"optimal":       res.Optimal,
		"timed_out":     res.TimedOut,
		"nodes_visited": res.NodesVisited,
		"branches_cut":  res.BranchesCut,
		"elapsed":       res.Elapsed.String(),
	}).Info("solve complete")

	return nil
}

func parseStrategy(name string) (coloring.Strategy, error) {
	switch name {
	case "sewell":
		return coloring.StrategySewell, nil
	case "furini":
		return coloring.StrategyFurini, nil
	default:
		return 0, xerrors.Errorf("solve: unknown strategy %q (want sewell or furini)", name)
	}
}

// serveMetrics starts a background HTTP server exposing /metrics and
// returns a function that shuts it down.
func serveMetrics(port int) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	go func() {
		logger.WithField("port", port).Info("serving prometheus metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithField("err", err).Warn("metrics server exited")
		}
	}()

	return func() { _ = srv.Close() }
}
