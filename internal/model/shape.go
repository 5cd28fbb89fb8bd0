package model

import "fmt"

// Shape is the pure geometry of a piece: a named, ordered set of (row, col)
// offsets from an implicit origin. Shapes are values; every transform
// returns a new Shape and leaves the receiver untouched.
type Shape struct {
	Name  string
	Cells []Position
}

// Size returns the number of cells in the shape
func (s Shape) Size() int {
	return len(s.Cells)
}

// Rotated returns the shape rotated clockwise by 90, 180 or 270 degrees.
// Any other angle fails with ErrInvalidRotation.
func (s Shape) Rotated(angle int) (Shape, error) {
	var mapped func(Position) Position
	switch angle {
	case 90:
		mapped = func(p Position) Position { return Position{Row: -p.Col, Col: p.Row} }
	case 180:
		mapped = func(p Position) Position { return Position{Row: -p.Row, Col: -p.Col} }
	case 270:
		mapped = func(p Position) Position { return Position{Row: p.Col, Col: -p.Row} }
	default:
		return Shape{}, fmt.Errorf("%w: %d", ErrInvalidRotation, angle)
	}
	out := Shape{Name: s.Name, Cells: make([]Position, len(s.Cells))}
	for i, c := range s.Cells {
		out.Cells[i] = mapped(c)
	}
	return out, nil
}

// Flipped returns the shape mirrored across its column axis: (r,c) -> (r,-c).
// Flipping twice restores the exact original coordinates.
func (s Shape) Flipped() Shape {
	out := Shape{Name: s.Name, Cells: make([]Position, len(s.Cells))}
	for i, c := range s.Cells {
		out.Cells[i] = Position{Row: c.Row, Col: -c.Col}
	}
	return out
}

// Oriented applies a move's rotation and flip in one step. Rotation 0 is
// the identity; other angles go through Rotated and share its error.
func (s Shape) Oriented(rotation int, flip bool) (Shape, error) {
	out := s
	if rotation != 0 {
		rotated, err := s.Rotated(rotation)
		if err != nil {
			return Shape{}, err
		}
		out = rotated
	}
	if flip {
		out = out.Flipped()
	}
	return out, nil
}

// Absolute translates every cell by the anchor position
func (s Shape) Absolute(anchor Position) []Position {
	out := make([]Position, len(s.Cells))
	for i, c := range s.Cells {
		out[i] = Position{Row: anchor.Row + c.Row, Col: anchor.Col + c.Col}
	}
	return out
}

// connected reports whether every cell is reachable from the first via
// orthogonal steps over the shape's own cells. Checked once at table load,
// never per placement.
func (s Shape) connected() bool {
	if len(s.Cells) == 0 {
		return false
	}
	members := make(map[Position]bool, len(s.Cells))
	for _, c := range s.Cells {
		if members[c] {
			return false // duplicate cell
		}
		members[c] = true
	}

	visited := make(map[Position]bool, len(s.Cells))
	queue := []Position{s.Cells[0]}
	visited[s.Cells[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.OrthogonalNeighbors() {
			if members[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(s.Cells)
}
