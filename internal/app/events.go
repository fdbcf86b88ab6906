package app

import (
	"github.com/stanislavbuket/SnakeGame/internal/domain"
)

type Event struct {
	Type    EventType
	Payload interface{}
}

type EventType int

const (
	EventRestarted EventType = iota
	EventFoodEaten
	EventGrew
	EventSpeedUp
	EventGameOver
	EventBoardFull
	EventPaused
	EventResumed
)

func (t EventType) String() string {
	switch t {
	case EventRestarted:
		return "restarted"
	case EventFoodEaten:
		return "food-eaten"
	case EventGrew:
		return "grew"
	case EventSpeedUp:
		return "speed-up"
	case EventGameOver:
		return "game-over"
	case EventBoardFull:
		return "board-full"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	}
	return "unknown"
}

type FoodEatenPayload struct {
	Cell  domain.Coord
	Score int
}

type GrewPayload struct {
	Tail   domain.Coord
	Length int
}

type SpeedUpPayload struct {
	StepDelayMs int64
}

type GameOverPayload struct {
	Head  domain.Coord
	Score int
	Wall  bool
}
