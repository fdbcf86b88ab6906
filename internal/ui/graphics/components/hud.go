package components

import (
	"fmt"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelWidth is the screen width reserved right of the board.
const PanelWidth = 220

// HUD is the side panel with score, food count and speed.
type HUD struct {
	X, Y          int
	Width, Height int
}

func NewHUD(x, y, width, height int) *HUD {
	return &HUD{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, stats app.Stats) {
	vector.DrawFilledRect(screen,
		float32(h.X), float32(h.Y),
		float32(h.Width), float32(h.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(h.X), float32(h.Y),
		float32(h.Width), float32(h.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()

	text.Draw(screen, "SNAKE", fonts.Normal, h.X+10, h.Y+20, types.ColorTextHighlight)

	lines := []string{
		fmt.Sprintf("Score:  %d", stats.Score),
		fmt.Sprintf("Food:   %d", stats.FoodEaten),
		fmt.Sprintf("Length: %d", stats.Length),
		fmt.Sprintf("Moves:  %d", stats.Moves),
		fmt.Sprintf("Speed:  %.1f moves/s", stats.MovesPerSecond()),
	}

	y := h.Y + 50
	for _, line := range lines {
		if y > h.Y+h.Height-10 {
			break
		}
		text.Draw(screen, line, fonts.Normal, h.X+10, y, types.ColorText)
		y += fonts.LineHeight + 9
	}
}
