package input

import (
	"github.com/stanislavbuket/SnakeGame/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Intent int

const (
	IntentNone Intent = iota
	IntentSteer
	IntentTogglePause
	IntentRestart
	IntentExit
)

var directionKeys = []struct {
	keys []ebiten.Key
	dir  domain.Direction
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, domain.DirectionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, domain.DirectionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, domain.DirectionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, domain.DirectionRight},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns at most one edge-triggered intent per frame. Direction keys
// win over the rest so a turn is never lost to a simultaneous pause.
func (kh *KeyboardHandler) Update() (Intent, domain.Direction) {
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if inpututil.IsKeyJustPressed(k) {
				return IntentSteer, dk.dir
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyP):
		return IntentTogglePause, 0
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return IntentRestart, 0
	case IsEscapePressed():
		return IntentExit, 0
	}

	return IntentNone, 0
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}
