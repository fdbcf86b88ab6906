// Package terminal is a tcell front end for the same game core. Each board
// cell takes two columns and one row.
package terminal

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/domain"
	"github.com/stanislavbuket/SnakeGame/internal/fx"
	"github.com/stanislavbuket/SnakeGame/internal/spline"

	"github.com/gdamore/tcell/v2"
)

var (
	styleWall      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 125, 100)).Background(tcell.NewRGBColor(90, 75, 60))
	styleTile      = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 40, 45))
	styleFood      = styleTile.Foreground(tcell.NewRGBColor(255, 80, 80))
	styleHead      = styleTile.Foreground(tcell.NewRGBColor(70, 170, 70))
	styleBody      = styleTile.Foreground(tcell.NewRGBColor(100, 200, 100))
	styleTail      = styleTile.Foreground(tcell.NewRGBColor(140, 215, 120))
	styleText      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 220))
	styleTextDim   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 150, 150))
	styleHighlight = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 100)).Bold(true)
	styleError     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 100, 100)).Bold(true)
)

const (
	cellCols = 2
	hudRows  = 3
)

type Terminal struct {
	screen tcell.Screen
	app    *app.App
	game   *app.Game

	curve    *spline.Renderer
	cellSize float64
	frameDur time.Duration

	message string
}

func New(screen tcell.Screen, a *app.App) *Terminal {
	cfg := a.Game().Config()

	return &Terminal{
		screen:   screen,
		app:      a,
		game:     a.Game(),
		curve:    spline.NewRenderer(float64(cfg.CellSize), cfg.SplineSamples),
		cellSize: float64(cfg.CellSize),
		frameDur: cfg.RenderDelay,
	}
}

// Run ticks and draws the game until ctx is done or the player quits.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.frameDur)
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventCh:
			if !t.HandleEvent(ev) {
				t.app.Send(app.InputEvent{Type: app.InputQuit})
				return nil
			}

		case <-ticker.C:
			if _, err := t.game.Tick(); err != nil {
				log.Printf("Terminal: %v", err)
				t.message = "Board full!"
			}
			t.Draw()
		}
	}
}

// HandleEvent forwards key intents to the app. It returns false on quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if in, ok := intentForKey(ev); ok {
			if in.Type == app.InputRestart && t.app.Game().GameOver() {
				t.message = ""
			}
			t.app.Send(in)
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func intentForKey(ev *tcell.EventKey) (app.InputEvent, bool) {
	steer := func(d domain.Direction) (app.InputEvent, bool) {
		return app.InputEvent{Type: app.InputSteer, Payload: d}, true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return steer(domain.DirectionUp)
	case tcell.KeyDown:
		return steer(domain.DirectionDown)
	case tcell.KeyLeft:
		return steer(domain.DirectionLeft)
	case tcell.KeyRight:
		return steer(domain.DirectionRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return steer(domain.DirectionUp)
		case 's', 'S':
			return steer(domain.DirectionDown)
		case 'a', 'A':
			return steer(domain.DirectionLeft)
		case 'd', 'D':
			return steer(domain.DirectionRight)
		case ' ', 'p', 'P':
			return app.InputEvent{Type: app.InputTogglePause}, true
		case 'r', 'R':
			return app.InputEvent{Type: app.InputRestart}, true
		}
	}
	return app.InputEvent{}, false
}

func (t *Terminal) Draw() {
	frame := t.game.Frame()

	t.screen.Clear()
	t.drawBoard(frame.Field, frame.Food)
	t.drawSnake(frame.Snake)
	t.drawParticles(t.game.Particles())
	t.drawHUD(frame)
	t.screen.Show()
}

func (t *Terminal) drawBoard(field domain.Field, food domain.Coord) {
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			c := domain.Coord{X: x, Y: y}
			if field.IsWall(c) {
				t.putCell(c, '▓', styleWall)
			} else {
				t.putCell(c, ' ', styleTile)
			}
		}
	}
	t.putCell(food, '●', styleFood)
}

func (t *Terminal) putCell(c domain.Coord, r rune, style tcell.Style) {
	for i := 0; i < cellCols; i++ {
		t.screen.SetContent(c.X*cellCols+i, c.Y, r, nil, style)
	}
}

// gridCell maps a pixel-space point to the board cell containing it.
func (t *Terminal) gridCell(p spline.Point) domain.Coord {
	return domain.Coord{
		X: int(math.Floor(p.X / t.cellSize)),
		Y: int(math.Floor(p.Y / t.cellSize)),
	}
}

func (t *Terminal) drawSnake(f spline.Frame) {
	segments := t.curve.Curve(f)
	if len(segments) == 0 {
		return
	}

	for _, seg := range segments {
		if seg.Part == spline.PartBody {
			t.putCell(t.gridCell(seg.Point), '█', styleBody)
		}
	}
	if tail := segments[len(segments)-1]; tail.Part == spline.PartTail {
		t.putCell(t.gridCell(tail.Point), '▒', styleTail)
	}
	t.putCell(t.gridCell(segments[0].Point), '█', styleHead)
}

func (t *Terminal) drawParticles(system *fx.System) {
	system.Draw(func(b fx.Batch) {
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(b.Color.R), int32(b.Color.G), int32(b.Color.B)))
		for _, p := range b.Particles {
			col := int(math.Floor(p.X / t.cellSize * cellCols))
			row := int(math.Floor(p.Y / t.cellSize))
			r := '·'
			if p.Size >= 11 {
				r = '*'
			}
			_, _, bg, _ := t.screen.GetContent(col, row)
			_, cellBg, _ := bg.Decompose()
			t.screen.SetContent(col, row, r, nil, style.Background(cellBg))
		}
	})
}

func (t *Terminal) drawHUD(frame app.Frame) {
	row := frame.Field.Height + 1
	stats := frame.Stats

	line := fmt.Sprintf("Score: %d  Food: %d  Length: %d  Speed: %.1f moves/s",
		stats.Score, stats.FoodEaten, stats.Length, stats.MovesPerSecond())
	t.drawText(0, row, line, styleText)

	switch {
	case frame.GameOver:
		title := "GAME OVER"
		if stats.Outcome == app.OutcomeBoardFull {
			title = "BOARD FULL"
		}
		t.drawText(0, row+1, fmt.Sprintf("%s  final score %d  (R restart, Q quit)", title, stats.Score), styleError)
	case frame.Paused:
		t.drawText(0, row+1, "PAUSED  (SPACE resume)", styleHighlight)
	default:
		t.drawText(0, row+1, "WASD/arrows move  SPACE pause  R restart  Q quit", styleTextDim)
	}

	if t.message != "" {
		t.drawText(0, row+hudRows-1, t.message, styleError)
	}
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
