package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/game"
	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	config, err := utils.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Survey > 0 {
		if err = runSurvey(ctx, config); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err = runGame(ctx, config); err != nil {
		log.Fatal(err)
	}
}

// runGame animates a single board on stdout, reading commands from stdin when interactive
func runGame(ctx context.Context, config utils.Config) error {
	runner, err := game.NewRunner(config, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("Features: Memory Pool: %v, Pattern: %s, Seed: %d\n", config.UseMemoryPool, config.Pattern, config.Seed)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		runner.Grid().Width(), runner.Grid().Height(), runner.Grid().CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()

	var cmds chan game.Command
	if config.Interactive {
		cmds = make(chan game.Command)

		// Left running on exit: a blocked stdin read cannot be interrupted
		go func() {
			if err := game.ReadCommands(ctx, os.Stdin, cmds, os.Stderr); err != nil {
				fmt.Fprintln(os.Stderr, "Error reading commands:", err)
			}
		}()
	}

	return runner.Run(ctx, cmds)
}

// runSurvey runs config.Survey seeds headless, starting at config.Seed, and prints a summary table
func runSurvey(ctx context.Context, config utils.Config) error {
	seeds := make([]int64, config.Survey)
	for i := range seeds {
		seeds[i] = config.Seed + int64(i)
	}

	results, err := game.Survey(ctx, config, seeds)
	if err != nil {
		return err
	}
	return game.WriteSurvey(os.Stdout, results)
}
