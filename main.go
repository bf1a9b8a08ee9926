package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Xaric23/TheGameOfLife/utils"
)

// errInterrupted signals a Ctrl+C shutdown request from the signal watcher.
var errInterrupted = errors.New("interrupted")

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to the JSON configuration file")
		pattern     = flag.String("pattern", "", "preset pattern to start with (overrides config)")
		rate        = flag.Float64("rate", -1, "mutation rate in [0.0, 1.0] (overrides config)")
		seed        = flag.Int64("seed", 0, "randomness seed, 0 seeds from the current time (overrides config)")
		interactive = flag.Bool("interactive", false, "prompt for a pattern or custom cells at startup")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Infof("using default configuration: %v", err)
	}
	config = applyFlagOverrides(config, *pattern, *rate, *seed, *interactive)

	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err = run(config); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
}

// applyFlagOverrides layers the command-line flags over the loaded config.
func applyFlagOverrides(config utils.Config, pattern string, rate float64, seed int64, interactive bool) utils.Config {
	if pattern != "" {
		config.Pattern = pattern
	}
	if rate >= 0 {
		config.MutationRate = rate
	}
	if seed != 0 {
		config.Seed = seed
	}
	if interactive {
		config.Interactive = true
	}
	return config
}

// run drives the simulation loop and the signal watcher until one of them
// ends the run.
func run(config utils.Config) error {
	g, err := initializeGame(config)
	if err != nil {
		return errors.Wrap(err, "[run] failed to initialize")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error {
		select {
		case <-sigChan:
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		return g.loop(ctx)
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, errInterrupted), errors.Is(err, context.Canceled):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case errors.Is(err, errFinished):
	case err != nil:
		return err
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.stats.TotalGenerations, g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d births, %d deaths\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation,
		g.stats.TotalBirths, g.stats.TotalDeaths)
	return nil
}
