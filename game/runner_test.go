package game

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

func testConfig(pattern string) utils.Config {
	config := utils.DefaultConfig()
	config.Width = 5
	config.Height = 5
	config.Pattern = pattern
	config.FrameRate = time.Hour
	config.AutoRestart = false
	config.MaxGenerations = 0
	return config
}

// commands returns a closed, pre-filled command channel
func commands(cmds ...Command) <-chan Command {
	ch := make(chan Command, len(cmds))
	for _, cmd := range cmds {
		ch <- cmd
	}
	close(ch)
	return ch
}

var blockCells = []model.Cell{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}

func expectBlock(t *testing.T, g *model.Grid) {
	t.Helper()
	if g.CountLivingCells() != len(blockCells) {
		t.Fatalf("living cells = %v, expected the block", g.LivingCells())
	}
	for _, c := range blockCells {
		if !g.IsAlive(c) {
			t.Fatalf("block cell %v is dead", c)
		}
	}
}

func TestRunnerStopsAtMaxGenerations(t *testing.T) {
	config := testConfig("block")
	config.FrameRate = 0
	config.MaxGenerations = 3

	var out bytes.Buffer
	r, err := NewRunner(config, &out)
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	if r.Generation() != 3 {
		t.Fatalf("Generation() = %d, expected 3", r.Generation())
	}
	expectBlock(t, r.Grid())
	if !strings.Contains(out.String(), "Reached maximum generations limit (3)") {
		t.Fatalf("missing limit message in %q", out.String())
	}
	if !strings.Contains(out.String(), "Final stats: 3 generations") {
		t.Fatal("missing summary")
	}
}

func TestRunnerDefaultBlinker(t *testing.T) {
	config := testConfig("default")
	config.FrameRate = 0
	config.MaxGenerations = 1

	r, err := NewRunner(config, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	g := r.Grid()
	for _, c := range []model.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
		if !g.IsAlive(c) {
			t.Fatalf("blinker did not rotate, living cells %v", g.LivingCells())
		}
	}
	if g.CountLivingCells() != 3 {
		t.Fatalf("living cells = %v", g.LivingCells())
	}
}

func TestRunnerQuitWhilePaused(t *testing.T) {
	r, err := NewRunner(testConfig("block"), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	err = r.Run(context.Background(), commands(Command{Kind: CommandPause}, Command{Kind: CommandQuit}))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Paused() || r.Generation() != 1 {
		t.Fatalf("paused=%v generation=%d, expected paused after one generation", r.Paused(), r.Generation())
	}
}

func TestRunnerPausedCommands(t *testing.T) {
	var out bytes.Buffer
	r, err := NewRunner(testConfig("block"), &out)
	if err != nil {
		t.Fatal(err)
	}

	err = r.Run(context.Background(), commands(
		Command{Kind: CommandPause},
		Command{Kind: CommandToggle, Cell: model.Cell{X: 0, Y: 0}},
		Command{Kind: CommandToggle, Cell: model.Cell{X: 9, Y: 9}},
		Command{Kind: CommandStep},
		Command{Kind: CommandQuit},
	))
	if err != nil {
		t.Fatal(err)
	}

	if r.Generation() != 2 {
		t.Fatalf("Generation() = %d, expected 2", r.Generation())
	}
	// The toggled lone cell dies on the stepped generation, the block stays
	expectBlock(t, r.Grid())
	if !strings.Contains(out.String(), "Cannot toggle") {
		t.Fatal("out of bounds toggle not reported")
	}
}

func TestRunnerClearAndReseed(t *testing.T) {
	r, err := NewRunner(testConfig("block"), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	err = r.Run(context.Background(), commands(
		Command{Kind: CommandPause},
		Command{Kind: CommandClear},
		Command{Kind: CommandQuit},
	))
	if err != nil {
		t.Fatal(err)
	}
	if r.Grid().CountLivingCells() != 0 {
		t.Fatalf("clear left %v", r.Grid().LivingCells())
	}

	if _, err = r.apply(Command{Kind: CommandReseed}); err != nil {
		t.Fatal(err)
	}
	expectBlock(t, r.Grid())
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r, err := NewRunner(testConfig("block"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Run(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if r.Generation() != 1 {
		t.Fatalf("Generation() = %d, expected 1", r.Generation())
	}
	if !strings.Contains(out.String(), "Shutting down") {
		t.Fatal("missing shutdown message")
	}
}

func TestRunnerRestartsOnExtinction(t *testing.T) {
	config := testConfig(utils.PatternRandom)
	config.RandomDensity = 0
	config.AutoRestart = true
	config.FrameRate = 0
	config.MaxGenerations = 2

	var out bytes.Buffer
	r, err := NewRunner(config, &out)
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "Restarting due to extinction") != 2 {
		t.Fatalf("expected two extinction restarts in %q", out.String())
	}
	if !strings.Contains(out.String(), "Restarts (extinction): 2") {
		t.Fatal("restarts missing from summary")
	}
}

func TestNewRunner(t *testing.T) {
	config := testConfig("spaceship")
	if _, err := NewRunner(config, &bytes.Buffer{}); errors.Cause(err) != utils.ErrInvalidConfig {
		t.Fatalf("err = %v, expected ErrInvalidConfig", err)
	}

	// A ten cell line from the centre of a 3x3 board only partly fits
	config = testConfig("line")
	config.Width, config.Height = 3, 3

	var out bytes.Buffer
	r, err := NewRunner(config, &out)
	if err != nil {
		t.Fatal(err)
	}
	if r.Grid().CountLivingCells() != 2 {
		t.Fatalf("living cells = %v, expected (1,1) and (1,2)", r.Grid().LivingCells())
	}
	if !strings.Contains(out.String(), "only partly fits") {
		t.Fatal("partial pattern not reported")
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.StagnationThreshold = 3

	tests := []struct {
		name                  string
		living, stagnant, gen int
		threshold             int
		wantRestart           bool
		wantReason            string
	}{
		{name: "extinct", living: 0, gen: 5, threshold: 3, wantRestart: true, wantReason: "extinction"},
		{name: "stagnant", living: 4, stagnant: 3, gen: 5, threshold: 3, wantRestart: true, wantReason: "stagnation detected"},
		{name: "stagnation disabled", living: 4, stagnant: 3, gen: 5, threshold: 0},
		{name: "periodic", living: 4, gen: refreshInterval * 2, threshold: 3, wantRestart: true, wantReason: "periodic refresh"},
		{name: "first generation", living: 4, gen: 0, threshold: 3},
		{name: "active", living: 4, stagnant: 2, gen: 7, threshold: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.StagnationThreshold = tt.threshold
			restart, reason := checkRestartConditions(tt.living, tt.stagnant, tt.gen, config)
			if restart != tt.wantRestart || reason != tt.wantReason {
				t.Fatalf("checkRestartConditions = (%v, %q), expected (%v, %q)", restart, reason, tt.wantRestart, tt.wantReason)
			}
		})
	}
}
