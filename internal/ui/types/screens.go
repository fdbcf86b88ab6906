package types

import (
	"github.com/stanislavbuket/SnakeGame/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

type ScreenType int

const (
	ScreenMenu ScreenType = iota
	ScreenConfig
	ScreenGame
)

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
	// Config is the setup the next game starts with.
	Config() config.Config
}
