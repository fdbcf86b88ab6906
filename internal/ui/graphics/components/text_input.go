package components

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/stanislavbuket/SnakeGame/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextInput is a single-line field. Numeric inputs accept digits only.
type TextInput struct {
	X, Y          int
	Width, Height int
	Label         string
	Text          string
	Placeholder   string
	MaxLength     int
	Numeric       bool
	Focused       bool
	cursorBlink   int
}

func NewNumberInput(x, y, width, height int, label string, value int) *TextInput {
	return &TextInput{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Label:       label,
		Text:        strconv.Itoa(value),
		Placeholder: strconv.Itoa(value),
		MaxLength:   6,
		Numeric:     true,
	}
}

func (ti *TextInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ti.Focused = mx >= ti.X && mx < ti.X+ti.Width && my >= ti.Y && my < ti.Y+ti.Height
	}

	if !ti.Focused {
		return
	}

	ti.cursorBlink++

	var runes []rune
	runes = ebiten.AppendInputChars(runes)
	for _, r := range runes {
		if ti.Numeric && !unicode.IsDigit(r) {
			continue
		}
		if len([]rune(ti.Text)) < ti.MaxLength {
			ti.Text += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if ebiten.IsKeyPressed(ebiten.KeyControl) {
			ti.Text = ""
		} else if r := []rune(ti.Text); len(r) > 0 {
			ti.Text = string(r[:len(r)-1])
		}
	}
}

// Int parses the field, falling back to the placeholder when empty.
func (ti *TextInput) Int() (int, error) {
	s := strings.TrimSpace(ti.Text)
	if s == "" {
		s = ti.Placeholder
	}
	return strconv.Atoi(s)
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	fonts := types.GetFonts()

	if ti.Label != "" {
		text.Draw(screen, ti.Label, fonts.Normal, ti.X, ti.Y-8, types.ColorText)
	}

	vector.DrawFilledRect(screen,
		float32(ti.X), float32(ti.Y),
		float32(ti.Width), float32(ti.Height),
		types.ColorInputBg, false)

	borderColor := types.ColorInputBorder
	if ti.Focused {
		borderColor = types.ColorInputFocused
	}
	vector.StrokeRect(screen,
		float32(ti.X), float32(ti.Y),
		float32(ti.Width), float32(ti.Height),
		2, borderColor, false)

	displayText := ti.Text
	textColor := types.ColorText

	if displayText == "" && !ti.Focused {
		displayText = ti.Placeholder
		textColor = types.ColorTextDim
	}

	textX := ti.X + 8
	textY := ti.Y + ti.Height/2 + 4
	text.Draw(screen, displayText, fonts.Normal, textX, textY, textColor)

	if ti.Focused && (ti.cursorBlink/30)%2 == 0 {
		bounds := text.BoundString(fonts.Normal, ti.Text)
		cursorX := float32(textX + bounds.Dx() + 2)
		cursorY := float32(ti.Y + 5)
		vector.StrokeLine(screen, cursorX, cursorY, cursorX, float32(ti.Y+ti.Height-5), 2, types.ColorText, false)
	}
}

func (ti *TextInput) SetPosition(x, y int) {
	ti.X = x
	ti.Y = y
}
