package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlaceFoodAvoidsSnakeAndWalls(t *testing.T) {
	field := NewField(20, 20)
	snake := NewSnake(field.Center(), 10, DirectionRight)
	occupied := Occupied(snake.Body)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		pos, err := PlaceFood(field, occupied, rng, 100)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if field.IsWall(pos) {
			t.Fatalf("Food placed on wall at %v", pos)
		}
		if occupied[pos] {
			t.Fatalf("Food placed on snake at %v", pos)
		}
	}
}

func TestPlaceFoodFindsLastFreeCell(t *testing.T) {
	field := NewField(6, 6)
	occupied := make(map[Coord]bool)
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			occupied[Coord{x, y}] = true
		}
	}
	delete(occupied, Coord{3, 2})

	pos, err := PlaceFood(field, occupied, rand.New(rand.NewSource(7)), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !pos.Equals(Coord{3, 2}) {
		t.Errorf("Expected {3 2}, got %v", pos)
	}
}

func TestPlaceFoodBoardFull(t *testing.T) {
	field := NewField(4, 4)
	occupied := Occupied([]Coord{{1, 1}, {2, 1}, {2, 2}, {1, 2}})

	_, err := PlaceFood(field, occupied, rand.New(rand.NewSource(3)), 50)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Expected ErrNoFreeCell, got %v", err)
	}
}

func TestFieldWalls(t *testing.T) {
	field := NewField(20, 20)

	tests := []struct {
		c    Coord
		wall bool
	}{
		{Coord{0, 5}, true},
		{Coord{19, 5}, true},
		{Coord{5, 0}, true},
		{Coord{5, 19}, true},
		{Coord{-1, 5}, true},
		{Coord{1, 1}, false},
		{Coord{18, 18}, false},
	}
	for _, tt := range tests {
		if got := field.IsWall(tt.c); got != tt.wall {
			t.Errorf("IsWall(%v): expected %v, got %v", tt.c, tt.wall, got)
		}
		if got := field.IsInterior(tt.c); got == tt.wall {
			t.Errorf("IsInterior(%v): expected %v, got %v", tt.c, !tt.wall, got)
		}
	}

	if field.InteriorCells() != 18*18 {
		t.Errorf("Expected %d interior cells, got %d", 18*18, field.InteriorCells())
	}
}
