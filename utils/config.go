package utils

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// PatternRandom seeds the board at RandomDensity instead of placing a named pattern
const PatternRandom = "random"

// ErrInvalidConfig is the cause of every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               uint          `json:"width"`
	Height              uint          `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Interactive         bool          `json:"interactive"`
	Pattern             string        `json:"pattern"`
	Seed                int64         `json:"seed"`
	Survey              int           `json:"survey"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Interactive:         false,
		Pattern:             PatternRandom,
		Seed:                42,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the game loop cannot run
func (c Config) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density %v outside [0, 1]", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	case c.StagnationThreshold < 0 || c.MaxGenerations < 0 || c.InjectionCount < 0 || c.Survey < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] counts must not be negative")
	}

	if c.Pattern != PatternRandom && !slices.Contains(model.PatternNames(), c.Pattern) {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.UintVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.UintVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "restart on extinction or stagnation")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant frames before a restart")
	fs.BoolVar(&c.UseMemoryPool, "use-memory-pool", c.UseMemoryPool, "recycle live sets between generations")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "fraction of cells alive in a random start")
	fs.IntVar(&c.InjectionCount, "injection-count", c.InjectionCount, "random cells injected into a stagnant board")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "read commands from stdin")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: random or one of the named patterns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random starts and injections")
	fs.IntVar(&c.Survey, "survey", c.Survey, "run this many seeds headless and print a summary")
}
