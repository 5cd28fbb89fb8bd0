package ai

import (
	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// CornerWeights tunes the medium tier's candidate score
type CornerWeights struct {
	CornerContact int
	PieceSize     int
	EdgeBonus     int
	// EdgeDistance is how close to a board edge a cell must be for the
	// bonus to apply
	EdgeDistance int
}

// DefaultCornerWeights returns the medium tier's standard weights
func DefaultCornerWeights() CornerWeights {
	return CornerWeights{
		CornerContact: 10,
		PieceSize:     2,
		EdgeBonus:     3,
		EdgeDistance:  2,
	}
}

// StrategicWeights tunes the hard tier's simulation score. Cell count
// always contributes with weight 1.
type StrategicWeights struct {
	CornerContact int
	Mobility      int
}

// DefaultStrategicWeights returns the hard tier's standard weights
func DefaultStrategicWeights() StrategicWeights {
	return StrategicWeights{
		CornerContact: 15,
		Mobility:      2,
	}
}

// moveCells resolves a move to the absolute cells it would occupy
func moveCells(inv rules.Inventory, move model.Move) ([]model.Position, bool) {
	piece, ok := inv.Piece(move.Piece)
	if !ok {
		return nil, false
	}
	oriented, err := piece.Oriented(move.Rotation, move.Flip)
	if err != nil {
		return nil, false
	}
	return oriented.Absolute(move.Anchor), true
}

// cornerContacts counts the corner-to-corner touches the cells would create
// with the player's cells already on the board. Each (new cell, existing
// cell) diagonal pair counts once.
func cornerContacts(board *model.Board, player model.PlayerID, cells []model.Position) int {
	count := 0
	for _, cell := range cells {
		for _, n := range cell.DiagonalNeighbors() {
			if board.At(n) == player {
				count++
			}
		}
	}
	return count
}

// mobility counts the empty cells orthogonally adjacent to any of the
// player's cells, a rough measure of room left to grow into
func mobility(board *model.Board, player model.PlayerID) int {
	seen := make(map[model.Position]bool)
	for _, own := range board.PlayerPositions(player) {
		for _, n := range own.OrthogonalNeighbors() {
			if board.IsEmpty(n) && !seen[n] {
				seen[n] = true
			}
		}
	}
	return len(seen)
}

// nearEdge reports whether any cell lies within distance cells of a board
// edge
func nearEdge(board *model.Board, cells []model.Position, distance int) bool {
	size := board.Size()
	for _, cell := range cells {
		if cell.Row <= distance || cell.Col <= distance ||
			cell.Row >= size-1-distance || cell.Col >= size-1-distance {
			return true
		}
	}
	return false
}
