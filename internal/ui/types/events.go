package types

import (
	"github.com/stanislavbuket/SnakeGame/internal/config"
	"github.com/stanislavbuket/SnakeGame/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventExitGame
	UIEventSteer
	UIEventTogglePause
	UIEventRestart
	UIEventQuit
	UIEventShowConfig
	UIEventShowMenu
)

type StartGameData struct {
	Config config.Config
}

type SteerData struct {
	Direction domain.Direction
}
