package model

import "fmt"

// Rotations lists the legal move rotations in degrees
var Rotations = [4]int{0, 90, 180, 270}

// Move is one candidate placement: a named piece, an orientation and the
// anchor cell its origin translates to. Moves are ephemeral; they are
// constructed during enumeration and discarded after application or
// rejection. A move with an empty piece name is the pass sentinel.
type Move struct {
	Player   PlayerID
	Piece    string
	Rotation int // 0, 90, 180 or 270
	Flip     bool
	Anchor   Position
}

// NewMove creates a placement move
func NewMove(player PlayerID, piece string, anchor Position, rotation int, flip bool) Move {
	return Move{
		Player:   player,
		Piece:    piece,
		Rotation: rotation,
		Flip:     flip,
		Anchor:   anchor,
	}
}

// PassMove creates the pass sentinel for a player
func PassMove(player PlayerID) Move {
	return Move{Player: player}
}

// IsPass returns true for the pass sentinel
func (m Move) IsPass() bool {
	return m.Piece == ""
}

func (m Move) String() string {
	if m.IsPass() {
		return fmt.Sprintf("player %d passes", m.Player)
	}
	flip := ""
	if m.Flip {
		flip = " flipped"
	}
	return fmt.Sprintf("player %d plays %s at (%d,%d) rot %d%s",
		m.Player, m.Piece, m.Anchor.Row, m.Anchor.Col, m.Rotation, flip)
}
