package domain

// Snake is an ordered list of cells; Body[0] is the head.
type Snake struct {
	Body      []Coord
	Direction Direction
}

// NewSnake lays out length cells starting at head and trailing away from dir.
func NewSnake(head Coord, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}

	back := dir.Opposite().Delta()
	body := make([]Coord, 0, length)
	cell := head
	for i := 0; i < length; i++ {
		body = append(body, cell)
		cell = cell.Add(back)
	}

	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

func (s *Snake) Head() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) NextHead() Coord {
	return s.Head().Add(s.Direction.Delta())
}

// SetDirection turns the snake unless dir would reverse it onto itself.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.Direction) {
		return false
	}
	s.Direction = dir
	return true
}

func (s *Snake) Move() {
	if len(s.Body) == 0 {
		return
	}

	newHead := s.NextHead()
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Grow appends a tail cell extrapolated along the current tail direction.
// A single-cell snake gets a duplicate of that cell.
func (s *Snake) Grow() {
	if len(s.Body) == 0 {
		return
	}

	tail := s.Tail()
	if len(s.Body) < 2 {
		s.Body = append(s.Body, tail)
		return
	}

	beforeTail := s.Body[len(s.Body)-2]
	s.Body = append(s.Body, tail.Add(tail.Sub(beforeTail)))
}

func (s *Snake) CollidesWithSelf() bool {
	if len(s.Body) < 2 {
		return false
	}

	head := s.Body[0]
	for _, cell := range s.Body[1:] {
		if cell.Equals(head) {
			return true
		}
	}
	return false
}

func (s *Snake) Clone() []Coord {
	body := make([]Coord, len(s.Body))
	copy(body, s.Body)
	return body
}
