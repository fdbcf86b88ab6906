package domain

import "errors"

// ErrNoFreeCell is returned when every interior cell is occupied.
var ErrNoFreeCell = errors.New("no free cell for food")

type Rand interface {
	Intn(n int) int
}

// Occupied returns the set of cells covered by the given bodies.
func Occupied(bodies ...[]Coord) map[Coord]bool {
	occupied := make(map[Coord]bool)
	for _, body := range bodies {
		for _, cell := range body {
			occupied[cell] = true
		}
	}
	return occupied
}

// PlaceFood picks a random free interior cell. It tries rejection sampling
// first and falls back to choosing among the remaining free cells, so it
// terminates even when the board is almost full.
func PlaceFood(field *Field, occupied map[Coord]bool, rng Rand, maxAttempts int) (Coord, error) {
	innerW := field.Width - 2
	innerH := field.Height - 2
	if innerW <= 0 || innerH <= 0 {
		return Coord{}, ErrNoFreeCell
	}

	for attempts := 0; attempts < maxAttempts; attempts++ {
		pos := Coord{
			X: 1 + rng.Intn(innerW),
			Y: 1 + rng.Intn(innerH),
		}
		if !occupied[pos] {
			return pos, nil
		}
	}

	free := make([]Coord, 0)
	for y := 1; y <= innerH; y++ {
		for x := 1; x <= innerW; x++ {
			pos := Coord{X: x, Y: y}
			if !occupied[pos] {
				free = append(free, pos)
			}
		}
	}

	if len(free) == 0 {
		return Coord{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}
