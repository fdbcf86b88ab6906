package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/components"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/input"
	"github.com/stanislavbuket/SnakeGame/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type ConfigScreen struct {
	ctx types.ScreenContext

	inputWidth  *components.TextInput
	inputHeight *components.TextInput
	inputLength *components.TextInput
	inputDelay  *components.TextInput

	btnStart *components.Button
	btnBack  *components.Button

	errorMsg string
}

func NewConfigScreen(ctx types.ScreenContext) *ConfigScreen {
	s := &ConfigScreen{
		ctx:      ctx,
		btnStart: components.NewButton(0, 0, 140, 45, "Start"),
		btnBack:  components.NewButton(0, 0, 140, 45, "Back"),
	}
	s.reset()

	return s
}

// reset fills the inputs from the current setup.
func (s *ConfigScreen) reset() {
	cfg := s.ctx.Config()

	s.inputWidth = components.NewNumberInput(0, 0, 140, 35, "Width:", cfg.BoardWidth)
	s.inputHeight = components.NewNumberInput(0, 0, 140, 35, "Height:", cfg.BoardHeight)
	s.inputLength = components.NewNumberInput(0, 0, 140, 35, "Start length:", cfg.InitialLength)
	s.inputDelay = components.NewNumberInput(0, 0, 140, 35, "Step ms:", int(cfg.InitialStepDelay.Milliseconds()))
}

func (s *ConfigScreen) inputs() []*components.TextInput {
	return []*components.TextInput{
		s.inputWidth, s.inputHeight,
		s.inputLength, s.inputDelay,
	}
}

func (s *ConfigScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 120

	s.inputWidth.SetPosition(centerX-150, startY)
	s.inputHeight.SetPosition(centerX+10, startY)
	s.inputLength.SetPosition(centerX-150, startY+70)
	s.inputDelay.SetPosition(centerX+10, startY+70)
	s.btnBack.SetPosition(centerX-150, startY+140)
	s.btnStart.SetPosition(centerX+10, startY+140)

	for _, inp := range s.inputs() {
		inp.Update()
	}

	if input.IsTabPressed() {
		s.cycleFocus()
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnStart.Update() || input.IsEnterPressed() {
		return s.startGame()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *ConfigScreen) cycleFocus() {
	inputs := s.inputs()

	currentIdx := -1
	for i, inp := range inputs {
		if inp.Focused {
			currentIdx = i
			inp.Focused = false
			break
		}
	}

	nextIdx := (currentIdx + 1) % len(inputs)
	inputs[nextIdx].Focused = true
}

func (s *ConfigScreen) startGame() types.UIEvent {
	cfg := s.ctx.Config()

	fields := []struct {
		in  *components.TextInput
		dst *int
	}{
		{s.inputWidth, &cfg.BoardWidth},
		{s.inputHeight, &cfg.BoardHeight},
		{s.inputLength, &cfg.InitialLength},
	}
	for _, f := range fields {
		v, err := f.in.Int()
		if err != nil {
			s.errorMsg = fmt.Sprintf("%s not a number", strings.TrimSuffix(f.in.Label, ":"))
			return types.UIEvent{Type: types.UIEventNone}
		}
		*f.dst = v
	}

	delay, err := s.inputDelay.Int()
	if err != nil {
		s.errorMsg = "Step ms not a number"
		return types.UIEvent{Type: types.UIEventNone}
	}
	cfg.InitialStepDelay = time.Duration(delay) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		// Joined errors carry one problem per line; show the first.
		s.errorMsg = strings.SplitN(err.Error(), "\n", 2)[0]
		return types.UIEvent{Type: types.UIEventNone}
	}

	return types.UIEvent{
		Type:    types.UIEventStartGame,
		Payload: types.StartGameData{Config: cfg},
	}
}

func (s *ConfigScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	startY := 120

	title := "SETTINGS"
	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, 60, types.ColorTextHighlight)

	for _, inp := range s.inputs() {
		inp.Draw(screen)
	}

	s.btnBack.Draw(screen)
	s.btnStart.Draw(screen)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, startY+220, types.ColorError)
	}

	hint := "Press TAB to switch fields, ENTER to start"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *ConfigScreen) OnEnter() {
	s.errorMsg = ""
	s.reset()
	s.inputWidth.Focused = true
}

func (s *ConfigScreen) OnExit() {}
