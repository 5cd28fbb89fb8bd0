package ai

import (
	"time"

	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// CornerStrategy is the medium tier. It enumerates exhaustively and keeps
// the candidate with the best weighted sum of new corner contacts, piece
// size and edge proximity. Ties keep the first candidate seen.
type CornerStrategy struct {
	boardEvaluator
	gen     *movegen.Service
	weights CornerWeights
}

// NewCornerStrategy creates a new medium-tier strategy. A zero weights
// value means DefaultCornerWeights.
func NewCornerStrategy(gen *movegen.Service, weights CornerWeights) *CornerStrategy {
	if weights == (CornerWeights{}) {
		weights = DefaultCornerWeights()
	}
	return &CornerStrategy{
		gen:     gen,
		weights: weights,
	}
}

// Name returns the difficulty name
func (s *CornerStrategy) Name() string {
	return DifficultyMedium
}

// DefaultTimeout is the medium tier's per-move budget
func (s *CornerStrategy) DefaultTimeout() time.Duration {
	return mediumTimeout
}

// ComputeMove scores every legal move and returns the best one, or nil
// when no legal move exists. The heuristic is one pass over the candidate
// list, so the time limit is not polled.
func (s *CornerStrategy) ComputeMove(board *model.Board, inv rules.Inventory, _ time.Duration) *model.Move {
	moves := s.gen.LegalMoves(board, inv)

	bestIdx := -1
	bestScore := 0
	for i, move := range moves {
		cells, ok := moveCells(inv, move)
		if !ok {
			continue
		}
		score := s.scoreCells(board, move.Player, cells)
		if bestIdx < 0 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx < 0 {
		return nil
	}
	return &moves[bestIdx]
}

func (s *CornerStrategy) scoreCells(board *model.Board, player model.PlayerID, cells []model.Position) int {
	score := s.weights.CornerContact*cornerContacts(board, player, cells) +
		s.weights.PieceSize*len(cells)
	if nearEdge(board, cells, s.weights.EdgeDistance) {
		score += s.weights.EdgeBonus
	}
	return score
}

var _ Strategy = (*CornerStrategy)(nil)
