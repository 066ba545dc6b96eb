package game

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// refreshInterval forces a fresh board every so many generations when auto restart is on
const refreshInterval = 200

// Runner owns one grid and drives it frame by frame: render, report, restart or inject, advance.
// All grid access happens on the goroutine calling Run.
type Runner struct {
	config   utils.Config
	out      io.Writer
	renderer *model.TerminalRenderer
	pool     *model.SetPool
	rng      *rand.Rand
	stats    *utils.Stats

	grid    *model.Grid
	history model.History

	generation     int
	lastRestartGen int
	stagnantCount  int
	lastFrameTime  time.Time
	paused         bool
}

// NewRunner validates the configuration and seeds the initial board
func NewRunner(config utils.Config, out io.Writer) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		config:        config,
		out:           out,
		renderer:      &model.TerminalRenderer{Out: out},
		rng:           model.NewRand(config.Seed),
		stats:         utils.NewStats(),
		lastFrameTime: time.Now(),
	}
	if config.UseMemoryPool {
		r.pool = model.NewSetPool()
	}
	if err := r.reseed(); err != nil {
		return nil, err
	}
	return r, nil
}

// Grid exposes the board; it must only be touched from the goroutine running Run
func (r *Runner) Grid() *model.Grid {
	return r.grid
}

// Generation returns the number of generations advanced since the runner started
func (r *Runner) Generation() int {
	return r.generation
}

// Paused reports whether the runner is waiting for commands instead of advancing
func (r *Runner) Paused() bool {
	return r.paused
}

// reseed replaces the board with a freshly seeded one. Patterns that only partly fit are kept.
func (r *Runner) reseed() error {
	grid := model.New(r.config.Width, r.config.Height)
	grid.UsePool(r.pool)

	if err := seedGrid(grid, r.config, r.rng); err != nil {
		if !errors.Is(err, model.ErrOutOfBounds) {
			return err
		}
		fmt.Fprintf(r.out, "Pattern %q only partly fits: %v\n", r.config.Pattern, err)
	}

	r.grid = grid
	r.history.Reset()
	r.stagnantCount = 0
	return nil
}

// Run animates the board until ctx is done, a quit command arrives or the generation limit is hit.
// A closed cmds channel only stops command handling.
func (r *Runner) Run(ctx context.Context, cmds <-chan Command) error {
	defer r.printSummary()

	for {
		var next <-chan time.Time
		if !r.paused {
			done, err := r.frame()
			if err != nil || done {
				return err
			}
			next = time.After(r.config.FrameRate)
		}

		// Wait before next frame, serving commands meanwhile
		for waiting := true; waiting; {
			select {
			case <-ctx.Done():
				fmt.Fprintln(r.out, "\n🛑 Shutting down gracefully...")
				return nil
			case <-next:
				waiting = false
			case cmd, ok := <-cmds:
				if !ok {
					cmds = nil
					continue
				}
				stop, err := r.apply(cmd)
				if stop || err != nil {
					return err
				}
				switch {
				case r.paused:
					next = nil
				case next == nil:
					waiting = false
				}
			}
		}
	}
}

// apply executes one command and reports whether the run should stop
func (r *Runner) apply(cmd Command) (bool, error) {
	switch cmd.Kind {
	case CommandPause:
		r.paused = !r.paused
		fmt.Fprintf(r.out, "Paused: %v\n", r.paused)
	case CommandStep:
		if r.paused {
			return r.frame()
		}
	case CommandToggle:
		if err := r.grid.ToggleCell(cmd.Cell); err != nil {
			fmt.Fprintf(r.out, "Cannot toggle: %v\n", err)
			return false, nil
		}
		r.history.Reset()
		if r.paused {
			return false, r.redraw()
		}
	case CommandClear:
		r.grid.Clear()
		r.history.Reset()
		if r.paused {
			return false, r.redraw()
		}
	case CommandReseed:
		if err := r.reseed(); err != nil {
			return false, err
		}
		r.lastRestartGen = r.generation
		if r.paused {
			return false, r.redraw()
		}
	case CommandQuit:
		return true, nil
	}
	return false, nil
}

// redraw shows the current board without advancing it
func (r *Runner) redraw() error {
	if err := r.renderer.Clear(); err != nil {
		return errors.Wrap(err, "[redraw] failed to clear screen")
	}
	return errors.Wrap(r.renderer.Display(r.grid), "[redraw] failed to render grid")
}

// frame renders the current generation, handles restarts and advances the board by one generation.
// It reports done once the generation limit is reached.
func (r *Runner) frame() (bool, error) {
	frameStart := time.Now()
	if err := r.renderer.Clear(); err != nil {
		return false, errors.Wrap(err, "[frame] failed to clear screen")
	}

	// Update game state
	livingCells, density, status, isStagnant := r.updateGameState()
	r.lastFrameTime = frameStart

	// Update stagnation counter
	if isStagnant {
		r.stagnantCount++
	} else {
		r.stagnantCount = 0
	}

	r.displayGameStatus(livingCells, density, status)
	if err := r.renderer.Display(r.grid); err != nil {
		return false, errors.Wrap(err, "[frame] failed to render grid")
	}

	if r.config.MaxGenerations > 0 && r.generation >= r.config.MaxGenerations {
		fmt.Fprintf(r.out, "\n🏁 Reached maximum generations limit (%d)\n", r.config.MaxGenerations)
		return true, nil
	}

	shouldRestart, restartReason := checkRestartConditions(livingCells, r.stagnantCount, r.generation, r.config)
	if shouldRestart && r.config.AutoRestart {
		fmt.Fprintf(r.out, "🔄 Restarting due to %s...\n", restartReason)
		r.stats.RecordRestart(restartReason)
		if err := r.reseed(); err != nil {
			return false, err
		}
		r.lastRestartGen = r.generation
		fmt.Fprintf(r.out, "✨ New patterns loaded! Living cells: %d\n", r.grid.CountLivingCells())
	} else if r.stagnantCount >= 2 && r.stagnantCount < r.config.StagnationThreshold {
		// Inject some life to try to break the stagnation
		r.grid.InjectRandomLife(r.rng, r.config.InjectionCount)
	}

	r.grid.Transition()
	r.generation++
	return false, nil
}

// updateGameState records the current board in stats and history and returns status information
func (r *Runner) updateGameState() (int, float64, string, bool) {
	livingCells := r.grid.CountLivingCells()
	density := float64(livingCells) / (float64(r.grid.Width()) * float64(r.grid.Height())) * 100

	r.stats.Update(r.generation, livingCells, time.Since(r.lastFrameTime))

	fingerprint := r.grid.Fingerprint()
	isStagnant := r.history.IsStagnant(fingerprint)
	r.history.Record(fingerprint)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", r.stagnantCount+1)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func (r *Runner) displayGameStatus(livingCells int, density float64, status string) {
	fmt.Fprintf(r.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		r.generation, livingCells, density, status)
	fmt.Fprintf(r.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		r.stats.GenerationsPerSecond, r.stats.AveragePopulation, r.stats.PeakPopulation, r.stats.Runtime().Seconds())

	// Show time since last restart
	if r.generation > r.lastRestartGen {
		fmt.Fprintf(r.out, "Generations since restart: %d\n", r.generation-r.lastRestartGen)
	}
	fmt.Fprintln(r.out)
}

func (r *Runner) printSummary() {
	fmt.Fprintf(r.out, "Final stats: %d generations in %.1f seconds\n",
		r.generation, r.stats.Runtime().Seconds())
	fmt.Fprintf(r.out, "Average: %.1f gen/sec, %.1f avg population\n",
		r.stats.GenerationsPerSecond, r.stats.AveragePopulation)
	for _, reason := range r.stats.RestartReasons() {
		fmt.Fprintf(r.out, "Restarts (%s): %d\n", reason, r.stats.Restarts(reason))
	}
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%refreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}
