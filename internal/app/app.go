package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/stanislavbuket/SnakeGame/internal/config"
	"github.com/stanislavbuket/SnakeGame/internal/domain"

	"golang.org/x/sync/errgroup"
)

// ErrQuit is returned from Run after an InputQuit intent.
var ErrQuit = errors.New("quit requested")

// App owns a Game and serializes front-end intents onto it. Game events are
// fanned out to registered listeners (sound, status messages).
type App struct {
	game *Game

	inputCh chan InputEvent

	listeners []Listener
	mu        sync.RWMutex
}

type Listener func(Event)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputSteer InputEventType = iota
	InputTogglePause
	InputRestart
	InputReconfigure
	InputQuit
)

func (t InputEventType) String() string {
	switch t {
	case InputSteer:
		return "steer"
	case InputTogglePause:
		return "toggle-pause"
	case InputRestart:
		return "restart"
	case InputReconfigure:
		return "reconfigure"
	case InputQuit:
		return "quit"
	}
	return fmt.Sprintf("input(%d)", int(t))
}

func NewApp(game *Game) *App {
	return &App{
		game:    game,
		inputCh: make(chan InputEvent, 100),
	}
}

func (a *App) Game() *Game {
	return a.game
}

// Send queues an intent without blocking; it reports false when the queue
// is full.
func (a *App) Send(ev InputEvent) bool {
	select {
	case a.inputCh <- ev:
		return true
	default:
		log.Printf("App: input queue full, dropping %v", ev.Type)
		return false
	}
}

func (a *App) Subscribe(l Listener) {
	a.mu.Lock()
	a.listeners = append(a.listeners, l)
	a.mu.Unlock()
}

// Run processes intents and dispatches game events until ctx is done or a
// quit intent arrives.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.eventLoop(ctx)
	})
	g.Go(func() error {
		return a.inputLoop(ctx)
	})

	return g.Wait()
}

func (a *App) eventLoop(ctx context.Context) error {
	events := a.game.Events()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-events:
			a.dispatch(event)
		}
	}
}

func (a *App) dispatch(event Event) {
	a.mu.RLock()
	listeners := a.listeners
	a.mu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}

func (a *App) inputLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case input := <-a.inputCh:
			if err := a.handleInput(input); err != nil {
				return err
			}
		}
	}
}

func (a *App) handleInput(input InputEvent) error {
	switch input.Type {
	case InputSteer:
		dir, ok := input.Payload.(domain.Direction)
		if !ok {
			log.Printf("App: bad steer payload %T", input.Payload)
			return nil
		}
		a.game.Steer(dir)

	case InputTogglePause:
		a.game.TogglePause()

	case InputRestart:
		if !a.game.GameOver() {
			return nil
		}
		if err := a.game.Restart(); err != nil {
			log.Printf("App: failed to restart: %v", err)
		}

	case InputReconfigure:
		cfg, ok := input.Payload.(config.Config)
		if !ok {
			log.Printf("App: bad reconfigure payload %T", input.Payload)
			return nil
		}
		if err := a.game.Reconfigure(cfg); err != nil {
			log.Printf("App: failed to reconfigure: %v", err)
		}

	case InputQuit:
		return ErrQuit
	}

	return nil
}
