// Package config holds every tunable of the game in one struct.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/fx"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	BoardWidth  int
	BoardHeight int
	CellSize    int

	InitialLength int

	InitialStepDelay time.Duration
	MinStepDelay     time.Duration
	SpeedUpStep      time.Duration
	SpeedUpEvery     int

	FoodReward      int
	MaxFoodAttempts int

	// SplineSamples is the number of curve points per body segment.
	SplineSamples int

	RenderDelay       time.Duration
	ParticleCapacity  int
	ParticleTemplates fx.Templates

	TextureDir string
	Sound      bool
	Seed       int64
}

func Default() Config {
	return Config{
		BoardWidth:        20,
		BoardHeight:       20,
		CellSize:          30,
		InitialLength:     3,
		InitialStepDelay:  230 * time.Millisecond,
		MinStepDelay:      50 * time.Millisecond,
		SpeedUpStep:       20 * time.Millisecond,
		SpeedUpEvery:      5,
		FoodReward:        10,
		MaxFoodAttempts:   1000,
		SplineSamples:     5,
		RenderDelay:       16 * time.Millisecond,
		ParticleCapacity:  fx.DefaultCapacity,
		ParticleTemplates: fx.DefaultTemplates(),
		Sound:             true,
	}
}

func (c Config) Validate() error {
	var errs []error

	if c.BoardWidth < 5 || c.BoardWidth > 200 {
		errs = append(errs, fmt.Errorf("board width %d not in [5, 200]", c.BoardWidth))
	}
	if c.BoardHeight < 5 || c.BoardHeight > 200 {
		errs = append(errs, fmt.Errorf("board height %d not in [5, 200]", c.BoardHeight))
	}
	if c.CellSize < 2 || c.CellSize > 128 {
		errs = append(errs, fmt.Errorf("cell size %d not in [2, 128]", c.CellSize))
	}
	if c.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initial length %d must be positive", c.InitialLength))
	} else if c.InitialLength > c.BoardWidth/2-1 {
		errs = append(errs, fmt.Errorf("initial length %d does not fit a %d wide board", c.InitialLength, c.BoardWidth))
	}
	if c.MinStepDelay <= 0 {
		errs = append(errs, fmt.Errorf("min step delay %v must be positive", c.MinStepDelay))
	}
	if c.InitialStepDelay < c.MinStepDelay {
		errs = append(errs, fmt.Errorf("initial step delay %v below minimum %v", c.InitialStepDelay, c.MinStepDelay))
	}
	if c.SpeedUpStep < 0 {
		errs = append(errs, fmt.Errorf("speed-up step %v is negative", c.SpeedUpStep))
	}
	if c.SpeedUpEvery < 1 {
		errs = append(errs, fmt.Errorf("speed-up cadence %d must be positive", c.SpeedUpEvery))
	}
	if c.MaxFoodAttempts < 1 {
		errs = append(errs, fmt.Errorf("max food attempts %d must be positive", c.MaxFoodAttempts))
	}
	if c.SplineSamples < 1 {
		errs = append(errs, fmt.Errorf("spline samples %d must be positive", c.SplineSamples))
	}
	if c.ParticleCapacity < 1 {
		errs = append(errs, fmt.Errorf("particle capacity %d must be positive", c.ParticleCapacity))
	} else if n := c.ParticleTemplates.MaxCount(); n > c.ParticleCapacity {
		errs = append(errs, fmt.Errorf("particle capacity %d smaller than a %d particle burst", c.ParticleCapacity, n))
	}
	for effect, tmpl := range c.ParticleTemplates {
		if tmpl.Count < 0 {
			errs = append(errs, fmt.Errorf("%v burst count %d is negative", effect, tmpl.Count))
		}
	}
	if c.RenderDelay <= 0 {
		errs = append(errs, fmt.Errorf("render delay %v must be positive", c.RenderDelay))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Copy returns c with its own template map.
func (c Config) Copy() Config {
	c.ParticleTemplates = c.ParticleTemplates.Copy()
	return c
}

// RegisterFlags binds the user-facing fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.BoardWidth, "width", c.BoardWidth, "board width in cells, walls included")
	fs.IntVar(&c.BoardHeight, "height", c.BoardHeight, "board height in cells, walls included")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.InitialLength, "length", c.InitialLength, "initial snake length")
	fs.DurationVar(&c.InitialStepDelay, "step", c.InitialStepDelay, "initial time between logic steps")
	fs.DurationVar(&c.MinStepDelay, "min-step", c.MinStepDelay, "fastest time between logic steps")
	fs.DurationVar(&c.SpeedUpStep, "speedup", c.SpeedUpStep, "step delay removed on each speed-up")
	fs.IntVar(&c.SpeedUpEvery, "speedup-every", c.SpeedUpEvery, "foods eaten between speed-ups")
	fs.IntVar(&c.SplineSamples, "samples", c.SplineSamples, "spline samples per body segment")
	fs.StringVar(&c.TextureDir, "textures", c.TextureDir, "directory with sprite PNGs (generated when empty)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound effects")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
}
