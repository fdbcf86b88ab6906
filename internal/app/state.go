package app

import (
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/domain"
	"github.com/stanislavbuket/SnakeGame/internal/spline"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCrashed
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCrashed:
		return "crashed"
	case OutcomeBoardFull:
		return "board full"
	}
	return "none"
}

type Stats struct {
	Score     int
	FoodEaten int
	Length    int
	Moves     uint64
	StepDelay time.Duration
	Outcome   Outcome
}

// MovesPerSecond is the current logic rate.
func (s Stats) MovesPerSecond() float64 {
	if s.StepDelay <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.StepDelay)
}

// Frame is a render-side copy of the game; nothing in it aliases live state.
type Frame struct {
	Field    domain.Field
	Food     domain.Coord
	Snake    spline.Frame
	Stats    Stats
	Running  bool
	Paused   bool
	GameOver bool
}

type TickResult struct {
	Elapsed time.Duration
	Steps   int
}

type gameState struct {
	running  bool
	paused   bool
	gameOver bool
	outcome  Outcome

	score     int
	foodEaten int
}

func (s *gameState) reset() {
	*s = gameState{running: true}
}
