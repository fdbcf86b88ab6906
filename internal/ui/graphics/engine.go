package graphics

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/config"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/components"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/textures"
	"github.com/stanislavbuket/SnakeGame/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	margin = 20

	minWidth  = 640
	minHeight = 480
)

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen
	screenMu      sync.RWMutex

	game     *app.Game
	textures *textures.Set

	cfg   config.Config
	cfgMu sync.RWMutex

	eventCh chan types.UIEvent
	stopped atomic.Bool
}

func NewEngine(game *app.Game, tex *textures.Set) *Engine {
	types.InitFonts()

	e := &Engine{
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		game:          game,
		textures:      tex,
		cfg:           game.Config(),
		eventCh:       make(chan types.UIEvent, 100),
	}
	e.width, e.height = windowSize(e.cfg)

	return e
}

// windowSize fits the board plus the HUD panel.
func windowSize(cfg config.Config) (int, int) {
	w := cfg.BoardWidth*cfg.CellSize + components.PanelWidth + 3*margin
	h := cfg.BoardHeight*cfg.CellSize + 2*margin
	return max(w, minWidth), max(h, minHeight)
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	config types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenConfig] = config
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

// Stop closes the window on the next frame.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

func (e *Engine) Update() error {
	if e.stopped.Load() {
		return ebiten.Termination
	}
	e.width, e.height = ebiten.WindowSize()

	screen := e.screen()
	if screen == nil {
		return nil
	}
	event := screen.Update()

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screen()
	if currentScreen == nil {
		return
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Game() *app.Game {
	return e.game
}

func (e *Engine) Textures() *textures.Set {
	return e.textures
}

// Config is the setup the next game starts with.
func (e *Engine) Config() config.Config {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	return e.cfg.Copy()
}

func (e *Engine) SetConfig(cfg config.Config) {
	e.cfgMu.Lock()
	e.cfg = cfg.Copy()
	e.cfgMu.Unlock()
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	e.screenMu.Lock()
	if e.currentScreen == screen {
		e.screenMu.Unlock()
		return
	}
	prev := e.screenMap[e.currentScreen]
	e.currentScreen = screen
	next := e.screenMap[screen]
	e.screenMu.Unlock()

	if prev != nil {
		prev.OnExit()
	}
	if next != nil {
		next.OnEnter()
	}
}

// SetMessage may be called from any goroutine.
func (e *Engine) SetMessage(msg string) {
	if s, ok := e.screen().(MessageSetter); ok {
		s.SetMessage(msg)
	}
}

func (e *Engine) screen() types.Screen {
	e.screenMu.RLock()
	defer e.screenMu.RUnlock()
	return e.screenMap[e.currentScreen]
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventShowConfig:
		e.SetScreen(types.ScreenConfig)

	case types.UIEventExitGame:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventStartGame:
		data := event.Payload.(types.StartGameData)
		e.SetConfig(data.Config)
		ebiten.SetWindowSize(windowSize(data.Config))
		e.forward(event)
		e.SetScreen(types.ScreenGame)

	default:
		e.forward(event)
	}
}

func (e *Engine) forward(event types.UIEvent) {
	select {
	case e.eventCh <- event:
	default:
		log.Println("Engine: event channel full, dropping event")
	}
}

type MessageSetter interface {
	SetMessage(msg string)
}
