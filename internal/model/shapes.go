package model

import "fmt"

// The canonical Blokus piece set: 1 monomino, 1 domino, 2 triominoes,
// 5 tetrominoes and the 12 free pentominoes, 89 cells in all. Offsets are
// (row, col) from the piece origin, growing down and right. Mirrored forms
// are not listed; flips are applied at move time.
var shapeTable = []Shape{
	{Name: "I1", Cells: []Position{{0, 0}}},
	{Name: "I2", Cells: []Position{{0, 0}, {1, 0}}},
	{Name: "I3", Cells: []Position{{0, 0}, {1, 0}, {2, 0}}},
	{Name: "V3", Cells: []Position{{0, 0}, {1, 0}, {1, 1}}},
	{Name: "I4", Cells: []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{Name: "O4", Cells: []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{Name: "T4", Cells: []Position{{0, 0}, {0, 1}, {0, 2}, {1, 1}}},
	{Name: "L4", Cells: []Position{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
	{Name: "Z4", Cells: []Position{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
	{Name: "F5", Cells: []Position{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}},
	{Name: "I5", Cells: []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
	{Name: "L5", Cells: []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}},
	{Name: "N5", Cells: []Position{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{Name: "P5", Cells: []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}},
	{Name: "T5", Cells: []Position{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}}},
	{Name: "U5", Cells: []Position{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}},
	{Name: "V5", Cells: []Position{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
	{Name: "W5", Cells: []Position{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}},
	{Name: "X5", Cells: []Position{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}},
	{Name: "Y5", Cells: []Position{{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{Name: "Z5", Cells: []Position{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}},
}

// PieceCount is the number of pieces each player starts with
const PieceCount = 21

func init() {
	if err := validateShapeTable(); err != nil {
		panic(err)
	}
}

// validateShapeTable enforces the static shape invariants: exactly 21
// uniquely named shapes, each orthogonally connected with no duplicate
// cells. Runs once at load; placement validation never repeats it.
func validateShapeTable() error {
	if len(shapeTable) != PieceCount {
		return fmt.Errorf("shape table holds %d shapes, want %d", len(shapeTable), PieceCount)
	}
	seen := make(map[string]bool, len(shapeTable))
	for _, s := range shapeTable {
		if s.Name == "" {
			return fmt.Errorf("shape with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate shape name %q", s.Name)
		}
		seen[s.Name] = true
		if !s.connected() {
			return fmt.Errorf("shape %q is not orthogonally connected", s.Name)
		}
	}
	return nil
}

// Shapes returns a copy of the canonical shape table in definition order
func Shapes() []Shape {
	out := make([]Shape, len(shapeTable))
	for i, s := range shapeTable {
		out[i] = copyShape(s)
	}
	return out
}

// ShapeByName returns a copy of the named canonical shape
func ShapeByName(name string) (Shape, bool) {
	for _, s := range shapeTable {
		if s.Name == name {
			return copyShape(s), true
		}
	}
	return Shape{}, false
}

func copyShape(s Shape) Shape {
	out := Shape{Name: s.Name, Cells: make([]Position, len(s.Cells))}
	copy(out.Cells, s.Cells)
	return out
}
