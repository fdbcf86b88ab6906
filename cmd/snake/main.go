package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/config"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/screens"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/sfx"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/textures"
	"github.com/stanislavbuket/SnakeGame/internal/ui/types"

	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	tex, err := textures.Load(cfg.TextureDir, cfg.CellSize)
	if err != nil {
		log.Fatalf("Failed to load textures: %v", err)
	}

	application := app.NewApp(game)

	engine := graphics.NewEngine(game, tex)
	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewConfigScreen(engine),
		screens.NewGameScreen(engine),
	)

	if cfg.Sound {
		player := sfx.NewPlayer()
		application.Subscribe(player.OnEvent)
	}
	application.Subscribe(func(ev app.Event) {
		handleAppEvent(ev, engine)
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return application.Run(ctx)
	})
	g.Go(func() error {
		return handleUIEvents(ctx, application, engine)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		engine.Stop()
		return nil
	})

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, app.ErrQuit) {
		log.Printf("Shutdown: %v", err)
		os.Exit(1)
	}
}

func handleAppEvent(ev app.Event, engine *graphics.Engine) {
	switch ev.Type {
	case app.EventRestarted:
		engine.SetMessage("")

	case app.EventSpeedUp:
		if p, ok := ev.Payload.(app.SpeedUpPayload); ok {
			engine.SetMessage(fmt.Sprintf("Speed up! %d ms", p.StepDelayMs))
		}

	case app.EventGameOver:
		if p, ok := ev.Payload.(app.GameOverPayload); ok {
			log.Printf("Main: game over with score %d", p.Score)
		}
	}
}

func handleUIEvents(ctx context.Context, application *app.App, engine *graphics.Engine) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-engine.Events():
			switch event.Type {
			case types.UIEventStartGame:
				data := event.Payload.(types.StartGameData)
				application.Send(app.InputEvent{Type: app.InputReconfigure, Payload: data.Config})

			case types.UIEventSteer:
				data := event.Payload.(types.SteerData)
				application.Send(app.InputEvent{Type: app.InputSteer, Payload: data.Direction})

			case types.UIEventTogglePause:
				application.Send(app.InputEvent{Type: app.InputTogglePause})

			case types.UIEventRestart:
				application.Send(app.InputEvent{Type: app.InputRestart})

			case types.UIEventQuit:
				return app.ErrQuit
			}
		}
	}
}
