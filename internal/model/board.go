package model

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Neighbors that share a full side with a cell
var orthogonalOffsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Neighbors that share only a corner point with a cell
var diagonalOffsets = [4]Position{
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 1},
}

// OrthogonalNeighbors returns the four edge-sharing neighbor cells
func (p Position) OrthogonalNeighbors() [4]Position {
	var out [4]Position
	for i, d := range orthogonalOffsets {
		out[i] = Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
	}
	return out
}

// DiagonalNeighbors returns the four corner-touching neighbor cells
func (p Position) DiagonalNeighbors() [4]Position {
	var out [4]Position
	for i, d := range diagonalOffsets {
		out[i] = Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
	}
	return out
}

// BoardSize is the side length of the standard Blokus board
const BoardSize = 20

// Board is the shared occupancy grid. Each cell holds the PlayerID that
// claimed it, or NoPlayer for empty. The rule validator only reads boards;
// mutation happens at move application, outside the engine services.
type Board struct {
	size  int
	cells []PlayerID // row-major
}

// NewBoard creates an empty square board of the given side length
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]PlayerID, size*size),
	}
}

// NewStandardBoard creates an empty 20x20 board
func NewStandardBoard() *Board {
	return NewBoard(BoardSize)
}

// Size returns the board's side length
func (b *Board) Size() int {
	return b.size
}

// At returns the owner of the given cell, or NoPlayer if empty or out of bounds
func (b *Board) At(pos Position) PlayerID {
	if !b.IsValidPosition(pos) {
		return NoPlayer
	}
	return b.cells[pos.Row*b.size+pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

// IsOccupied returns true if the cell is claimed by any player
func (b *Board) IsOccupied(pos Position) bool {
	return b.At(pos) != NoPlayer
}

// IsEmpty returns true if the position is in bounds and unclaimed
func (b *Board) IsEmpty(pos Position) bool {
	return b.IsValidPosition(pos) && b.At(pos) == NoPlayer
}

// Set claims a single cell for a player. Out-of-bounds positions are ignored.
func (b *Board) Set(pos Position, player PlayerID) {
	if b.IsValidPosition(pos) {
		b.cells[pos.Row*b.size+pos.Col] = player
	}
}

// Place claims every listed cell for a player
func (b *Board) Place(cells []Position, player PlayerID) {
	for _, pos := range cells {
		b.Set(pos, player)
	}
}

// OccupiedPositions returns every claimed cell in row-major order
func (b *Board) OccupiedPositions() []Position {
	var out []Position
	for i, owner := range b.cells {
		if owner != NoPlayer {
			out = append(out, Position{Row: i / b.size, Col: i % b.size})
		}
	}
	return out
}

// PlayerPositions returns every cell claimed by the given player in
// row-major order
func (b *Board) PlayerPositions(player PlayerID) []Position {
	var out []Position
	for i, owner := range b.cells {
		if owner == player {
			out = append(out, Position{Row: i / b.size, Col: i % b.size})
		}
	}
	return out
}

// CellCount returns the number of cells claimed by the given player
func (b *Board) CellCount(player PlayerID) int {
	count := 0
	for _, owner := range b.cells {
		if owner == player {
			count++
		}
	}
	return count
}

// EmptyCount returns the number of unclaimed cells
func (b *Board) EmptyCount() int {
	return b.CellCount(NoPlayer)
}

// Clone returns an independent copy of the board, used for AI simulation
func (b *Board) Clone() *Board {
	clone := &Board{
		size:  b.size,
		cells: make([]PlayerID, len(b.cells)),
	}
	copy(clone.cells, b.cells)
	return clone
}
