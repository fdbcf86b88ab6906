package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/config"
	"github.com/stanislavbuket/SnakeGame/internal/ui/sound/beeper"
	"github.com/stanislavbuket/SnakeGame/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "snake-term.log", "log file (the terminal is taken by the game)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	if err := game.Restart(); err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	application := app.NewApp(game)

	if cfg.Sound {
		b := beeper.New()
		if err := b.Initialize(); err != nil {
			log.Printf("Main: sound disabled: %v", err)
		} else {
			defer b.Close()
			application.Subscribe(b.OnEvent)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	term := terminal.New(screen, application)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return application.Run(ctx)
	})
	g.Go(func() error {
		return term.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, app.ErrQuit) {
		log.Printf("Main: %v", err)
	}

	stats := game.Stats()
	log.Printf("Main: exiting, score %d, food %d", stats.Score, stats.FoodEaten)
}
