package components

import (
	"github.com/stanislavbuket/SnakeGame/internal/domain"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/textures"

	"github.com/hajimehoshi/ebiten/v2"
)

type cellKind uint8

const (
	cellTile cellKind = iota
	cellWall
)

// BoardRenderer draws the walled board from a cell grid built once per
// field size, plus the food sprite.
type BoardRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int

	textures *textures.Set

	field domain.Field
	grid  [][]cellKind
	cache *ebiten.Image
}

func NewBoardRenderer(cellSize int, tex *textures.Set) *BoardRenderer {
	return &BoardRenderer{
		CellSize: cellSize,
		textures: tex,
	}
}

// CalculateLayout centres the board in the area left of the HUD panel.
func (br *BoardRenderer) CalculateLayout(screenWidth, screenHeight, panelWidth int, field domain.Field) {
	availableWidth := screenWidth - panelWidth

	br.OffsetX = (availableWidth - field.Width*br.CellSize) / 2
	br.OffsetY = (screenHeight - field.Height*br.CellSize) / 2
	if br.OffsetX < 0 {
		br.OffsetX = 0
	}
	if br.OffsetY < 0 {
		br.OffsetY = 0
	}
}

func (br *BoardRenderer) DrawField(screen *ebiten.Image, field domain.Field) {
	if br.cache == nil || br.field != field {
		br.rebuild(field)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(br.OffsetX), float64(br.OffsetY))
	screen.DrawImage(br.cache, op)
}

func (br *BoardRenderer) rebuild(field domain.Field) {
	br.field = field
	br.grid = make([][]cellKind, field.Height)
	for y := range br.grid {
		br.grid[y] = make([]cellKind, field.Width)
		for x := range br.grid[y] {
			if field.IsWall(domain.Coord{X: x, Y: y}) {
				br.grid[y][x] = cellWall
			}
		}
	}

	if br.cache != nil {
		br.cache.Deallocate()
	}
	br.cache = ebiten.NewImage(field.Width*br.CellSize, field.Height*br.CellSize)

	for y, row := range br.grid {
		for x, kind := range row {
			img := br.textures.Tile
			if kind == cellWall {
				img = br.textures.Wall
			}
			br.cache.DrawImage(img, br.cellOptions(img, x*br.CellSize, y*br.CellSize))
		}
	}
}

func (br *BoardRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	x := br.OffsetX + food.X*br.CellSize
	y := br.OffsetY + food.Y*br.CellSize
	screen.DrawImage(br.textures.Food, br.cellOptions(br.textures.Food, x, y))
}

// cellOptions scales img to one cell with its top-left corner at x, y.
func (br *BoardRenderer) cellOptions(img *ebiten.Image, x, y int) *ebiten.DrawImageOptions {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(br.CellSize)/float64(b.Dx()), float64(br.CellSize)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	return op
}
