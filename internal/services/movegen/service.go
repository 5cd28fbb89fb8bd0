package movegen

import (
	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// FastConfig bounds the sampled enumeration. Zero values fall back to the
// unrestricted setting for that axis.
type FastConfig struct {
	// MaxPieces caps how many unplaced pieces are considered, in
	// inventory table order. 0 means all of them.
	MaxPieces int
	// Rotations lists the rotation angles to try. Empty means all four.
	Rotations []int
	// IncludeFlips adds the mirrored orientation of each rotation
	IncludeFlips bool
	// AnchorStride samples every nth anchor along both axes. Values
	// below 1 behave as 1.
	AnchorStride int
}

// DefaultFastConfig returns the sampling bounds the easy tier runs with
func DefaultFastConfig() FastConfig {
	return FastConfig{
		MaxPieces:    8,
		Rotations:    []int{0, 90},
		IncludeFlips: false,
		AnchorStride: 2,
	}
}

// Service enumerates candidate moves for a player. Like the validator it is
// pure over the snapshots it is given and safe for concurrent use.
type Service struct {
	rules *rules.Service
}

// New creates a new movegen Service
func New(rules *rules.Service) *Service {
	return &Service{rules: rules}
}

// LegalMoves exhaustively enumerates every legal move for the inventory's
// player: each unplaced piece, in each of the eight orientations, at every
// anchor. A cheap bounds and overlap pre-filter rejects most candidates
// before the full validator runs. Order is deterministic: inventory table
// order, then rotation, then flip, then row-major anchors.
func (s *Service) LegalMoves(board *model.Board, inv rules.Inventory) []model.Move {
	player := inv.Player()
	size := board.Size()

	var out []model.Move
	for _, piece := range inv.UnplacedPieces() {
		for _, rotation := range model.Rotations {
			for _, flip := range []bool{false, true} {
				oriented, err := piece.Oriented(rotation, flip)
				if err != nil {
					continue
				}
				for row := 0; row < size; row++ {
					for col := 0; col < size; col++ {
						anchor := model.Position{Row: row, Col: col}
						if !fitsOnBoard(board, oriented, anchor) {
							continue
						}
						if !s.rules.ValidatePlacement(board, inv, player, oriented, anchor).Valid {
							continue
						}
						out = append(out, model.NewMove(player, piece.Name(), anchor, rotation, flip))
					}
				}
			}
		}
	}
	return out
}

// FastMoves enumerates a strided sample of the move space filtered only by
// bounds and overlap. The contact rules are deliberately not applied, so a
// returned move may still be illegal; callers that need rule-exact moves
// must validate each candidate or use LegalMoves instead.
func (s *Service) FastMoves(board *model.Board, inv rules.Inventory, cfg FastConfig) []model.Move {
	player := inv.Player()
	size := board.Size()

	pieces := inv.UnplacedPieces()
	if cfg.MaxPieces > 0 && len(pieces) > cfg.MaxPieces {
		pieces = pieces[:cfg.MaxPieces]
	}
	rotations := cfg.Rotations
	if len(rotations) == 0 {
		rotations = model.Rotations[:]
	}
	flips := []bool{false}
	if cfg.IncludeFlips {
		flips = []bool{false, true}
	}
	stride := cfg.AnchorStride
	if stride < 1 {
		stride = 1
	}

	var out []model.Move
	for _, piece := range pieces {
		for _, rotation := range rotations {
			for _, flip := range flips {
				oriented, err := piece.Oriented(rotation, flip)
				if err != nil {
					continue
				}
				for row := 0; row < size; row += stride {
					for col := 0; col < size; col += stride {
						anchor := model.Position{Row: row, Col: col}
						if fitsOnBoard(board, oriented, anchor) {
							out = append(out, model.NewMove(player, piece.Name(), anchor, rotation, flip))
						}
					}
				}
			}
		}
	}
	return out
}

// FirstLegalMove returns the first move that passes full validation, trying
// the cheap sampled candidates before the exhaustive scan. A nil result
// means the player has no legal move at all and must pass.
func (s *Service) FirstLegalMove(board *model.Board, inv rules.Inventory) *model.Move {
	for _, move := range s.FastMoves(board, inv, DefaultFastConfig()) {
		if s.rules.ValidateMove(board, inv, move).Valid {
			return &move
		}
	}
	// The sample can miss every legal move; the exhaustive scan is what
	// makes a nil return mean a true pass.
	if moves := s.LegalMoves(board, inv); len(moves) > 0 {
		return &moves[0]
	}
	return nil
}

// fitsOnBoard is the cheap pre-filter: every cell in bounds and unoccupied.
// It checks none of the contact rules.
func fitsOnBoard(board *model.Board, piece model.Piece, anchor model.Position) bool {
	for _, cell := range piece.Absolute(anchor) {
		if !board.IsValidPosition(cell) || board.IsOccupied(cell) {
			return false
		}
	}
	return true
}

// ServiceInterface captures the enumerator surface other services consume
type ServiceInterface interface {
	LegalMoves(board *model.Board, inv rules.Inventory) []model.Move
	FastMoves(board *model.Board, inv rules.Inventory, cfg FastConfig) []model.Move
	FirstLegalMove(board *model.Board, inv rules.Inventory) *model.Move
}

var _ ServiceInterface = (*Service)(nil)
