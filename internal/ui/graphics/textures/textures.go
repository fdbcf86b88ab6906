// Package textures holds the board and snake sprites. Snake sprites face +x;
// renderers rotate them to the segment heading.
package textures

import (
	"fmt"
	_ "image/png"
	"log"
	"path/filepath"

	"github.com/stanislavbuket/SnakeGame/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	FileTile = "tile.png"
	FileWall = "wall.png"
	FileFood = "food.png"
	FileHead = "snake_head.png"
	FileBody = "snake_body.png"
	FileTail = "snake_tail.png"
)

type Set struct {
	Tile *ebiten.Image
	Wall *ebiten.Image
	Food *ebiten.Image
	Head *ebiten.Image
	Body *ebiten.Image
	Tail *ebiten.Image
}

// Load reads every sprite from dir. With an empty dir the sprites are
// generated for the given cell size instead.
func Load(dir string, cellSize int) (*Set, error) {
	if dir == "" {
		log.Printf("Textures: no directory, generating %dpx sprites", cellSize)
		return Generate(cellSize), nil
	}

	set := &Set{}
	targets := []struct {
		name string
		dst  **ebiten.Image
	}{
		{FileTile, &set.Tile},
		{FileWall, &set.Wall},
		{FileFood, &set.Food},
		{FileHead, &set.Head},
		{FileBody, &set.Body},
		{FileTail, &set.Tail},
	}

	for _, t := range targets {
		path := filepath.Join(dir, t.name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
		}
		*t.dst = img
	}

	log.Printf("Textures: loaded %d sprites from %s", len(targets), dir)
	return set, nil
}

func Generate(cellSize int) *Set {
	s := float32(cellSize)

	tile := ebiten.NewImage(cellSize, cellSize)
	tile.Fill(types.ColorFieldBg)
	vector.StrokeRect(tile, 0, 0, s, s, 1, types.ColorGrid, false)

	wall := ebiten.NewImage(cellSize, cellSize)
	wall.Fill(types.ColorWall)
	vector.StrokeRect(wall, 1, 1, s-2, s-2, 2, types.ColorWallEdge, false)
	vector.StrokeLine(wall, 0, s/2, s, s/2, 1, types.ColorWallEdge, false)

	food := ebiten.NewImage(cellSize, cellSize)
	vector.DrawFilledCircle(food, s/2, s/2, s*0.35, types.ColorFood, true)
	vector.DrawFilledCircle(food, s*0.4, s*0.4, s*0.08, types.Lighten(types.ColorFood, 1.4), true)

	body := ebiten.NewImage(cellSize, cellSize)
	vector.DrawFilledCircle(body, s/2, s/2, s*0.45, types.ColorSnakeBody, true)

	head := ebiten.NewImage(cellSize, cellSize)
	vector.DrawFilledCircle(head, s/2, s/2, s*0.5, types.ColorSnakeHead, true)
	vector.DrawFilledCircle(head, s*0.68, s*0.32, s*0.09, types.ColorEye, true)
	vector.DrawFilledCircle(head, s*0.68, s*0.68, s*0.09, types.ColorEye, true)

	tail := ebiten.NewImage(cellSize, cellSize)
	for i, r := range []float32{0.4, 0.3, 0.2, 0.12} {
		cx := s * (0.6 - 0.15*float32(i))
		vector.DrawFilledCircle(tail, cx, s/2, s*r, types.ColorSnakeTail, true)
	}

	return &Set{
		Tile: tile,
		Wall: wall,
		Food: food,
		Head: head,
		Body: body,
		Tail: tail,
	}
}
