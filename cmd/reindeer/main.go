// Command reindeer reads a maze and prints the lowest score a reindeer can
// reach the end tile with, and how many tiles lie on at least one route
// with that score.
//
// Usage:
//
//	reindeer [-i FILE|-] [-w N] [--log-level L] [--render] [--verify] [--env-file F]...
//
// Settings come from REINDEER_* environment variables and optional .env
// files (see package config); flags override both.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/katalvlaran/reindeer/config"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/katalvlaran/reindeer/search"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// ErrVerifyMismatch reports a walker result that disagrees with Dijkstra.
var ErrVerifyMismatch = errors.New("reindeer: walker search disagrees with dijkstra")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run is main without the process globals. Errors are logged before they
// are returned.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	log := logrus.New()
	log.SetOutput(stderr)
	entry := log.WithField("run_id", uuid.New().String())
	defer func() {
		if err != nil {
			entry.WithError(err).Error("run failed")
		}
	}()

	fs := pflag.NewFlagSet("reindeer", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		input    = fs.StringP("input", "i", config.DefaultInput, "maze file, - for stdin")
		workers  = fs.IntP("workers", "w", config.DefaultWorkers, "goroutines stepping walkers each round")
		level    = fs.String("log-level", config.DefaultLogLevel.String(), "log level (panic..trace)")
		render   = fs.Bool("render", false, "print the maze with optimal tiles marked O")
		verify   = fs.Bool("verify", false, "cross-check the answer with Dijkstra")
		envFiles = fs.StringSlice("env-file", nil, ".env files to load (default ./.env if present)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*envFiles...)
	if err != nil {
		return err
	}
	if fs.Changed("input") {
		cfg.InputPath = *input
	}
	if fs.Changed("workers") {
		cfg.Workers = *workers
	}
	if fs.Changed("log-level") {
		if cfg.LogLevel, err = logrus.ParseLevel(*level); err != nil {
			return fmt.Errorf("%w: --log-level: %v", config.ErrInvalidValue, err)
		}
	}
	if fs.Changed("render") {
		cfg.Render = *render
	}
	if fs.Changed("verify") {
		cfg.Verify = *verify
	}
	log.SetLevel(cfg.LogLevel)
	entry = entry.WithField("input", cfg.InputPath)

	g, err := readGrid(cfg.InputPath, stdin)
	if err != nil {
		return err
	}
	entry.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
		"start":  g.Start().String(),
		"goal":   g.Goal().String(),
	}).Debug("maze loaded")

	res, err := search.Solve(ctx, g, search.WithWorkers(cfg.Workers), search.WithLogger(entry))
	if err != nil {
		return err
	}

	if cfg.Verify {
		if err := verifyResult(g, res); err != nil {
			return err
		}
		entry.Info("result verified against dijkstra")
	}

	fmt.Fprintf(stdout, "Part 1: %d\nPart 2: %d\n", res.MinimumCost, res.OptimalCount())
	if cfg.Render {
		fmt.Fprintln(stdout, g.Render(res.OptimalCells))
	}

	return nil
}

func readGrid(path string, stdin io.Reader) (*grid.Grid, error) {
	if path == "-" {
		return grid.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reindeer: open maze: %w", err)
	}
	defer f.Close()

	return grid.Parse(f)
}

// verifyResult recomputes both answers with the state-space Dijkstra.
func verifyResult(g *grid.Grid, res *search.Result) error {
	best, cells, err := dijkstra.OptimalCells(g)
	if err != nil {
		return fmt.Errorf("reindeer: verify: %w", err)
	}
	if best != res.MinimumCost {
		return fmt.Errorf("%w: minimum cost %d, dijkstra %d", ErrVerifyMismatch, res.MinimumCost, best)
	}
	if cells.Size() != res.OptimalCount() {
		return fmt.Errorf("%w: optimal cells %d, dijkstra %d", ErrVerifyMismatch, res.OptimalCount(), cells.Size())
	}
	var missing error
	cells.Each(func(c grid.Cell) {
		if missing == nil && !res.OptimalCells.Has(c) {
			missing = fmt.Errorf("%w: cell %s not marked", ErrVerifyMismatch, c)
		}
	})

	return missing
}
