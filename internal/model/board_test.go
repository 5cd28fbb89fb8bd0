package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardBoard(t *testing.T) {
	b := NewStandardBoard()
	assert.Equal(t, BoardSize, b.Size())
	assert.Equal(t, 0, b.CellCount(Player1))
	assert.Equal(t, BoardSize*BoardSize, b.EmptyCount())
}

func TestBoardAtAndSet(t *testing.T) {
	b := NewBoard(5)
	pos := Position{Row: 2, Col: 3}

	assert.Equal(t, NoPlayer, b.At(pos))
	assert.True(t, b.IsEmpty(pos))

	b.Set(pos, Player2)
	assert.Equal(t, Player2, b.At(pos))
	assert.True(t, b.IsOccupied(pos))
	assert.False(t, b.IsEmpty(pos))
}

func TestBoardOutOfBoundsQueries(t *testing.T) {
	b := NewBoard(5)
	outside := []Position{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 5, Col: 0},
		{Row: 0, Col: 5},
	}
	for _, pos := range outside {
		assert.False(t, b.IsValidPosition(pos), "%v", pos)
		assert.Equal(t, NoPlayer, b.At(pos), "%v", pos)
		assert.False(t, b.IsOccupied(pos), "%v", pos)
		assert.False(t, b.IsEmpty(pos), "%v", pos)
	}

	// Writes outside the board are dropped rather than panicking.
	b.Set(Position{Row: -1, Col: 0}, Player1)
	assert.Equal(t, 0, b.CellCount(Player1))
}

func TestBoardPlace(t *testing.T) {
	b := NewBoard(5)
	cells := []Position{{0, 0}, {1, 0}, {1, 1}}
	b.Place(cells, Player3)

	for _, pos := range cells {
		assert.Equal(t, Player3, b.At(pos))
	}
	assert.Equal(t, 3, b.CellCount(Player3))
	assert.Equal(t, 22, b.EmptyCount())
	assert.ElementsMatch(t, cells, b.PlayerPositions(Player3))
	assert.ElementsMatch(t, cells, b.OccupiedPositions())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(5)
	b.Set(Position{Row: 0, Col: 0}, Player1)

	clone := b.Clone()
	require.Equal(t, Player1, clone.At(Position{Row: 0, Col: 0}))

	clone.Set(Position{Row: 4, Col: 4}, Player4)
	assert.Equal(t, NoPlayer, b.At(Position{Row: 4, Col: 4}))
	assert.Equal(t, Player4, clone.At(Position{Row: 4, Col: 4}))
}

func TestPositionNeighbors(t *testing.T) {
	pos := Position{Row: 3, Col: 3}

	assert.ElementsMatch(t, [4]Position{{2, 3}, {4, 3}, {3, 2}, {3, 4}}, pos.OrthogonalNeighbors())
	assert.ElementsMatch(t, [4]Position{{2, 2}, {2, 4}, {4, 2}, {4, 4}}, pos.DiagonalNeighbors())
}
