package screens

import (
	"fmt"
	"log"
	"sync"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/components"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/input"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/textures"
	"github.com/stanislavbuket/SnakeGame/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type GameContext interface {
	types.ScreenContext
	Game() *app.Game
	Textures() *textures.Set
}

type GameScreen struct {
	ctx GameContext

	board     *components.BoardRenderer
	snake     *components.SnakeRenderer
	particles *components.ParticleRenderer
	hud       *components.HUD
	keyboard  *input.KeyboardHandler

	btnRestart *components.Button
	btnExit    *components.Button

	message  string
	errorMsg string
	msgMu    sync.Mutex
}

func NewGameScreen(ctx GameContext) *GameScreen {
	cfg := ctx.Config()
	tex := ctx.Textures()

	return &GameScreen{
		ctx:        ctx,
		board:      components.NewBoardRenderer(cfg.CellSize, tex),
		snake:      components.NewSnakeRenderer(cfg.CellSize, cfg.SplineSamples, tex),
		particles:  components.NewParticleRenderer(),
		hud:        components.NewHUD(0, 0, components.PanelWidth-20, 160),
		keyboard:   input.NewKeyboardHandler(),
		btnRestart: components.NewButton(0, 0, 140, 40, "Restart"),
		btnExit:    components.NewButton(0, 0, 140, 40, "Exit"),
	}
}

// Update runs the game clock once per frame, then maps keys to intents.
func (s *GameScreen) Update() types.UIEvent {
	game := s.ctx.Game()

	if _, err := game.Tick(); err != nil {
		log.Printf("GameScreen: %v", err)
		s.SetError("Board full!")
	}

	if game.GameOver() {
		w, h := s.ctx.Size()
		s.btnRestart.SetPosition(w/2-150, h/2+30)
		s.btnExit.SetPosition(w/2+10, h/2+30)

		if s.btnRestart.Update() {
			return types.UIEvent{Type: types.UIEventRestart}
		}
		if s.btnExit.Update() {
			return types.UIEvent{Type: types.UIEventExitGame}
		}
	}

	intent, dir := s.keyboard.Update()
	switch intent {
	case input.IntentSteer:
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	case input.IntentTogglePause:
		return types.UIEvent{Type: types.UIEventTogglePause}
	case input.IntentRestart:
		if game.GameOver() {
			return types.UIEvent{Type: types.UIEventRestart}
		}
	case input.IntentExit:
		return types.UIEvent{Type: types.UIEventExitGame}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	game := s.ctx.Game()
	frame := game.Frame()

	s.board.CalculateLayout(w, h, components.PanelWidth, frame.Field)
	s.board.DrawField(screen, frame.Field)
	s.board.DrawFood(screen, frame.Food)
	s.snake.Draw(screen, frame.Snake, s.board.OffsetX, s.board.OffsetY)

	s.hud.X = w - components.PanelWidth
	s.hud.Y = 20
	s.hud.Draw(screen, frame.Stats)

	switch {
	case frame.GameOver:
		s.drawGameOver(screen, w, h, frame.Stats)
	case frame.Paused:
		s.drawPaused(screen, w, h)
	}

	s.drawFooter(screen, w, h)

	s.particles.Draw(screen, game.Particles(), s.board.OffsetX, s.board.OffsetY)
}

func (s *GameScreen) drawOverlay(screen *ebiten.Image, w, h int) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), types.ColorOverlay, false)
}

func (s *GameScreen) drawPaused(screen *ebiten.Image, w, h int) {
	s.drawOverlay(screen, w, h)

	fonts := types.GetFonts()
	msg := "PAUSED"
	bounds := text.BoundString(fonts.Normal, msg)
	text.Draw(screen, msg, fonts.Normal, (w-bounds.Dx())/2, h/2, types.ColorTextHighlight)

	hint := "Press SPACE to resume"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h/2+25, types.ColorTextDim)
}

func (s *GameScreen) drawGameOver(screen *ebiten.Image, w, h int, stats app.Stats) {
	s.drawOverlay(screen, w, h)

	fonts := types.GetFonts()
	title := "GAME OVER"
	if stats.Outcome == app.OutcomeBoardFull {
		title = "BOARD FULL"
	}
	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, h/2-40, types.ColorError)

	score := fmt.Sprintf("Final score: %d", stats.Score)
	bounds = text.BoundString(fonts.Normal, score)
	text.Draw(screen, score, fonts.Normal, (w-bounds.Dx())/2, h/2-10, types.ColorText)

	s.btnRestart.Draw(screen)
	s.btnExit.Draw(screen)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  SPACE pause  |  R restart  |  ESC menu"
	text.Draw(screen, hint, fonts.Small, 20, h-8, types.ColorTextDim)

	s.msgMu.Lock()
	errorMsg, message := s.errorMsg, s.message
	s.msgMu.Unlock()

	if errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, errorMsg)
		text.Draw(screen, errorMsg, fonts.Normal, w-bounds.Dx()-20, h-8, types.ColorError)
	} else if message != "" {
		bounds := text.BoundString(fonts.Normal, message)
		text.Draw(screen, message, fonts.Normal, w-bounds.Dx()-20, h-8, types.ColorSuccess)
	}
}

func (s *GameScreen) OnEnter() {
	s.msgMu.Lock()
	s.errorMsg = ""
	s.message = ""
	s.msgMu.Unlock()
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.msgMu.Lock()
	s.errorMsg = err
	s.msgMu.Unlock()
}

func (s *GameScreen) SetMessage(msg string) {
	s.msgMu.Lock()
	s.message = msg
	s.errorMsg = ""
	s.msgMu.Unlock()
}
