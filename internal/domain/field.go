package domain

// Field is a rectangular board whose outermost ring of cells is wall.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

// IsWall reports whether c lies on the border or outside the board.
func (f *Field) IsWall(c Coord) bool {
	return c.X <= 0 || c.X >= f.Width-1 || c.Y <= 0 || c.Y >= f.Height-1
}

func (f *Field) IsInterior(c Coord) bool {
	return !f.IsWall(c)
}

func (f *Field) InteriorCells() int {
	if f.Width < 3 || f.Height < 3 {
		return 0
	}
	return (f.Width - 2) * (f.Height - 2)
}

func (f *Field) Center() Coord {
	return Coord{X: f.Width / 2, Y: f.Height / 2}
}
