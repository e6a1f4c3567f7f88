// Command chromab is the command-line front end for the coloring solver:
// solve a graph read from a DIMACS file, generate benchmark instances, or
// run a quick internal benchmark sweep.
package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	appName = "chromab"
	appSha  = "populated-at-link-time"
	logger  *logrus.Entry
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	logger = rootLogger.WithFields(logrus.Fields{
		"app":    appName,
		"sha":    appSha,
		"host":   host,
		"run_id": uuid.New().String(),
	})

	if err := makeApp().Run(os.Args); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		_ = os.Stderr.Sync()
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "exact graph-coloring solver"
	app.Commands = []cli.Command{
		solveCommand(),
		generateCommand(),
		benchCommand(),
	}

	return app
}
