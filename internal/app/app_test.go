package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/config"
	"github.com/stanislavbuket/SnakeGame/internal/domain"
)

func waitFor(t *testing.T, events <-chan Event, want EventType) Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("Timed out waiting for %v", want)
		}
	}
}

func runApp(t *testing.T, a *App) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()
	return cancel, done
}

func TestAppDispatchesEvents(t *testing.T) {
	g, _ := newTestGame(t, nil)
	a := NewApp(g)

	got := make(chan Event, 16)
	a.Subscribe(func(ev Event) { got <- ev })

	cancel, done := runApp(t, a)
	defer cancel()

	waitFor(t, got, EventRestarted)

	a.Send(InputEvent{Type: InputTogglePause})
	waitFor(t, got, EventPaused)
	if !g.Paused() {
		t.Error("Expected paused game")
	}

	a.Send(InputEvent{Type: InputTogglePause})
	waitFor(t, got, EventResumed)

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}

func TestAppSteerAndReconfigure(t *testing.T) {
	g, _ := newTestGame(t, nil)
	a := NewApp(g)

	got := make(chan Event, 16)
	a.Subscribe(func(ev Event) { got <- ev })

	cancel, _ := runApp(t, a)
	defer cancel()
	waitFor(t, got, EventRestarted)

	a.Send(InputEvent{Type: InputSteer, Payload: domain.DirectionUp})

	cfg := config.Default()
	cfg.BoardWidth = 24
	a.Send(InputEvent{Type: InputReconfigure, Payload: cfg})
	waitFor(t, got, EventRestarted)

	f := g.Frame()
	if f.Field.Width != 24 {
		t.Errorf("Expected width 24, got %d", f.Field.Width)
	}
	if f.Snake.Heading != domain.DirectionRight {
		t.Errorf("Expected fresh heading right after restart, got %v", f.Snake.Heading)
	}
}

func TestAppRestartsOnlyAfterGameOver(t *testing.T) {
	g, clock := newTestGame(t, nil)
	moveFoodAway(g)
	a := NewApp(g)

	got := make(chan Event, 64)
	a.Subscribe(func(ev Event) { got <- ev })

	cancel, _ := runApp(t, a)
	defer cancel()
	waitFor(t, got, EventRestarted)

	step(t, g, clock)
	a.Send(InputEvent{Type: InputRestart})
	a.Send(InputEvent{Type: InputTogglePause})
	waitFor(t, got, EventPaused)
	if head := g.Frame().Snake.Curr[0]; head != (domain.Coord{X: 11, Y: 10}) {
		t.Errorf("Expected a running game to ignore restart, head at %v", head)
	}

	a.Send(InputEvent{Type: InputTogglePause})
	waitFor(t, got, EventResumed)
	for i := 0; i < 20 && !g.GameOver(); i++ {
		step(t, g, clock)
	}
	a.Send(InputEvent{Type: InputRestart})
	waitFor(t, got, EventRestarted)
	if g.GameOver() || g.Stats().Moves != 0 {
		t.Errorf("Expected a fresh game after restart, got %+v", g.Stats())
	}
}

func TestAppQuit(t *testing.T) {
	g, _ := newTestGame(t, nil)
	a := NewApp(g)

	cancel, done := runApp(t, a)
	defer cancel()

	a.Send(InputEvent{Type: InputQuit})

	select {
	case err := <-done:
		if !errors.Is(err, ErrQuit) {
			t.Errorf("Expected ErrQuit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}
