package model

// PlayerID identifies one of the up to four players. Zero is reserved for
// empty board cells.
type PlayerID uint8

const (
	// NoPlayer marks an empty board cell
	NoPlayer PlayerID = 0

	Player1 PlayerID = 1
	Player2 PlayerID = 2
	Player3 PlayerID = 3
	Player4 PlayerID = 4

	// MinPlayer and MaxPlayer bound the valid player id range
	MinPlayer = Player1
	MaxPlayer = Player4
)

// IsValid returns true for a real player id (1-4)
func (p PlayerID) IsValid() bool {
	return p >= MinPlayer && p <= MaxPlayer
}

// StartingCorner returns the board corner a player's first piece must cover:
// player 1 top-left, 2 top-right, 3 bottom-right, 4 bottom-left. The second
// return is false for an unknown player id.
func StartingCorner(player PlayerID, boardSize int) (Position, bool) {
	last := boardSize - 1
	switch player {
	case 1:
		return Position{Row: 0, Col: 0}, true
	case 2:
		return Position{Row: 0, Col: last}, true
	case 3:
		return Position{Row: last, Col: last}, true
	case 4:
		return Position{Row: last, Col: 0}, true
	default:
		return Position{}, false
	}
}

// Inventory is one player's set of 21 pieces. Pieces transition from
// unplaced to placed exactly once and are never removed.
type Inventory struct {
	player     PlayerID
	pieces     map[string]*Piece
	order      []string // canonical table order, for stable iteration
	lastPlaced string
}

// NewInventory creates a full 21-piece inventory for a player
func NewInventory(player PlayerID) *Inventory {
	inv := &Inventory{
		player: player,
		pieces: make(map[string]*Piece, len(shapeTable)),
		order:  make([]string, 0, len(shapeTable)),
	}
	for _, shape := range shapeTable {
		inv.pieces[shape.Name] = &Piece{Shape: copyShape(shape), Owner: player}
		inv.order = append(inv.order, shape.Name)
	}
	return inv
}

// Player returns the owning player's id
func (inv *Inventory) Player() PlayerID {
	return inv.player
}

// Piece returns the named piece by value. The piece carries its current
// placed state; transforming or mutating the copy never touches the
// inventory.
func (inv *Inventory) Piece(name string) (Piece, bool) {
	p, ok := inv.pieces[name]
	if !ok {
		return Piece{}, false
	}
	return p.detached(), true
}

// UnplacedPieces returns copies of the pieces still available, in table order
func (inv *Inventory) UnplacedPieces() []Piece {
	out := make([]Piece, 0, len(inv.order))
	for _, name := range inv.order {
		if p := inv.pieces[name]; !p.Placed {
			out = append(out, p.detached())
		}
	}
	return out
}

// PlacedCount returns how many pieces have been placed. A zero count marks
// the player's first move, which must cover the starting corner.
func (inv *Inventory) PlacedCount() int {
	count := 0
	for _, p := range inv.pieces {
		if p.Placed {
			count++
		}
	}
	return count
}

// LastPlaced returns the name of the most recently placed piece, or ""
// before the first placement. Final scoring awards a bonus when the
// monomino went down last.
func (inv *Inventory) LastPlaced() string {
	return inv.lastPlaced
}

// MarkPlaced transitions a piece to its placed-at state. It fails with
// ErrPieceNotFound for an unknown name and ErrAlreadyPlaced if the piece
// was placed before; pieces never leave the placed state.
func (inv *Inventory) MarkPlaced(name string, anchor Position) error {
	p, ok := inv.pieces[name]
	if !ok {
		return ErrPieceNotFound
	}
	if p.Placed {
		return ErrAlreadyPlaced
	}
	p.Placed = true
	p.PlacedAt = anchor
	inv.lastPlaced = name
	return nil
}
