package rules

import (
	"fmt"

	"github.com/tmorgal/blokus-go/internal/model"
)

// Inventory is the piece-state view the validator reads. It is satisfied by
// *model.Inventory; tests may substitute lighter fakes.
type Inventory interface {
	Player() model.PlayerID
	Piece(name string) (model.Piece, bool)
	UnplacedPieces() []model.Piece
	PlacedCount() int
}

var _ Inventory = (*model.Inventory)(nil)

// Service validates piece placements against the full rule set. It is pure:
// it never mutates the board or inventory it is handed, and identical inputs
// always produce identical results.
type Service struct{}

// New creates a new rules Service
func New() *Service {
	return &Service{}
}

// ValidateMove resolves a move's piece and orientation against the player's
// inventory, then checks the placement. A move naming an unknown piece or
// orientation comes back as an ownership violation, never an error.
func (s *Service) ValidateMove(board *model.Board, inv Inventory, move model.Move) model.ValidationResult {
	if move.IsPass() {
		return model.InvalidResult(model.RuleOwnership, "a pass places no piece")
	}
	piece, ok := inv.Piece(move.Piece)
	if !ok {
		return model.InvalidResult(model.RuleOwnership,
			fmt.Sprintf("player %d does not own a piece named %q", move.Player, move.Piece))
	}
	oriented, err := piece.Oriented(move.Rotation, move.Flip)
	if err != nil {
		return model.InvalidResult(model.RuleOwnership,
			fmt.Sprintf("piece %s has no %d degree orientation", move.Piece, move.Rotation))
	}
	return s.ValidatePlacement(board, inv, move.Player, oriented, move.Anchor)
}

// ValidatePlacement checks an already-oriented piece at an anchor. Checks
// run in a fixed order and stop at the first violation: ownership, bounds,
// overlap, own-color edge adjacency, then the starting-corner rule for a
// player's first piece or the diagonal-contact rule for every later one.
func (s *Service) ValidatePlacement(
	board *model.Board,
	inv Inventory,
	player model.PlayerID,
	piece model.Piece,
	anchor model.Position,
) model.ValidationResult {
	if !player.IsValid() {
		return model.InvalidResult(model.RuleOwnership,
			fmt.Sprintf("unknown player id %d", player))
	}
	if inv.Player() != player {
		return model.InvalidResult(model.RuleOwnership,
			fmt.Sprintf("inventory belongs to player %d, not player %d", inv.Player(), player))
	}
	stored, ok := inv.Piece(piece.Name())
	if !ok {
		return model.InvalidResult(model.RuleOwnership,
			fmt.Sprintf("player %d does not own a piece named %q", player, piece.Name()))
	}
	if stored.Placed {
		return model.InvalidResult(model.RuleOwnership,
			fmt.Sprintf("piece %s has already been placed", piece.Name()))
	}

	cells := piece.Absolute(anchor)

	for _, cell := range cells {
		if !board.IsValidPosition(cell) {
			return model.InvalidResult(model.RuleBounds,
				fmt.Sprintf("cell (%d,%d) is outside the board", cell.Row, cell.Col))
		}
	}

	for _, cell := range cells {
		if board.IsOccupied(cell) {
			return model.InvalidResult(model.RuleOverlap,
				fmt.Sprintf("cell (%d,%d) is already occupied", cell.Row, cell.Col))
		}
	}

	// Edge contact with an opponent is fine; only own-color edges are barred.
	for _, cell := range cells {
		for _, n := range cell.OrthogonalNeighbors() {
			if board.At(n) == player {
				return model.InvalidResult(model.RuleEdgeAdjacency,
					fmt.Sprintf("cell (%d,%d) shares an edge with your cell (%d,%d)",
						cell.Row, cell.Col, n.Row, n.Col))
			}
		}
	}

	if inv.PlacedCount() == 0 {
		corner, _ := model.StartingCorner(player, board.Size())
		for _, cell := range cells {
			if cell == corner {
				return model.ValidResult()
			}
		}
		return model.InvalidResult(model.RuleCorner,
			fmt.Sprintf("first piece must cover your starting corner (%d,%d)", corner.Row, corner.Col))
	}

	for _, cell := range cells {
		for _, n := range cell.DiagonalNeighbors() {
			if board.At(n) == player {
				return model.ValidResult()
			}
		}
	}
	return model.InvalidResult(model.RuleDiagonalContact,
		"piece must touch one of your pieces corner to corner")
}

// ValidAnchors scans every board anchor for an oriented piece and returns
// those where placement is legal, in row-major order.
func (s *Service) ValidAnchors(
	board *model.Board,
	inv Inventory,
	player model.PlayerID,
	piece model.Piece,
) []model.Position {
	var out []model.Position
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			anchor := model.Position{Row: row, Col: col}
			if s.ValidatePlacement(board, inv, player, piece, anchor).Valid {
				out = append(out, anchor)
			}
		}
	}
	return out
}

// InvalidAnchors scans every board anchor for an oriented piece and returns
// the failing ones with the rule each violated. Meant for diagnostics and
// board displays, not the move-generation hot path.
func (s *Service) InvalidAnchors(
	board *model.Board,
	inv Inventory,
	player model.PlayerID,
	piece model.Piece,
) map[model.Position]model.ValidationResult {
	out := make(map[model.Position]model.ValidationResult)
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			anchor := model.Position{Row: row, Col: col}
			if result := s.ValidatePlacement(board, inv, player, piece, anchor); !result.Valid {
				out[anchor] = result
			}
		}
	}
	return out
}

// ServiceInterface captures the validator surface other services consume
type ServiceInterface interface {
	ValidateMove(board *model.Board, inv Inventory, move model.Move) model.ValidationResult
	ValidatePlacement(board *model.Board, inv Inventory, player model.PlayerID, piece model.Piece, anchor model.Position) model.ValidationResult
	ValidAnchors(board *model.Board, inv Inventory, player model.PlayerID, piece model.Piece) []model.Position
	InvalidAnchors(board *model.Board, inv Inventory, player model.PlayerID, piece model.Piece) map[model.Position]model.ValidationResult
}

var _ ServiceInterface = (*Service)(nil)
