// Package sound turns game events into short synthesized cues. Front ends
// pick a backend: ebiten audio for the window, beep for the terminal.
package sound

import (
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/app"
)

type Cue int

const (
	CueEat Cue = iota
	CueGrow
	CueSpeedUp
	CueDeath
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGrow:
		return "grow"
	case CueSpeedUp:
		return "speed-up"
	case CueDeath:
		return "death"
	}
	return "unknown"
}

// Tone is a sine with exponential decay.
type Tone struct {
	Freq     float64
	Duration time.Duration
	// Decay is the envelope rate per second.
	Decay  float64
	Volume float64
}

func DefaultTones() map[Cue]Tone {
	return map[Cue]Tone{
		CueEat:     {Freq: 880, Duration: 100 * time.Millisecond, Decay: 3, Volume: 0.12},
		CueGrow:    {Freq: 660, Duration: 80 * time.Millisecond, Decay: 6, Volume: 0.08},
		CueSpeedUp: {Freq: 1100, Duration: 150 * time.Millisecond, Decay: 3, Volume: 0.12},
		CueDeath:   {Freq: 220, Duration: 400 * time.Millisecond, Decay: 3, Volume: 0.15},
	}
}

// CueFor maps a game event to its sound, if it has one.
func CueFor(ev app.Event) (Cue, bool) {
	switch ev.Type {
	case app.EventFoodEaten:
		return CueEat, true
	case app.EventGrew:
		return CueGrow, true
	case app.EventSpeedUp:
		return CueSpeedUp, true
	case app.EventGameOver, app.EventBoardFull:
		return CueDeath, true
	}
	return 0, false
}
