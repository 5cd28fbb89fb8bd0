package ai

import (
	"time"

	"github.com/tmorgal/blokus-go/internal/dependencies/clock"
	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// StrategicStrategy is the hard tier. It exhaustively enumerates, then
// walks the candidates under a polled deadline: each one is simulated on a
// board copy and scored for territory, new corner contacts and mobility.
// The deadline is checked between candidates, never mid-evaluation, so a
// single evaluation is the unit of work the budget cannot split.
type StrategicStrategy struct {
	boardEvaluator
	gen     *movegen.Service
	clock   clock.Clock
	weights StrategicWeights
}

// NewStrategicStrategy creates a new hard-tier strategy. A zero weights
// value means DefaultStrategicWeights.
func NewStrategicStrategy(gen *movegen.Service, clk clock.Clock, weights StrategicWeights) *StrategicStrategy {
	if weights == (StrategicWeights{}) {
		weights = DefaultStrategicWeights()
	}
	return &StrategicStrategy{
		gen:     gen,
		clock:   clk,
		weights: weights,
	}
}

// Name returns the difficulty name
func (s *StrategicStrategy) Name() string {
	return DifficultyHard
}

// DefaultTimeout is the hard tier's per-move budget
func (s *StrategicStrategy) DefaultTimeout() time.Duration {
	return hardTimeout
}

// ComputeMove evaluates legal moves until the deadline and returns the best
// seen. If the deadline fires before any evaluation completes, the first
// candidate wins over passing. Nil means no legal move exists.
func (s *StrategicStrategy) ComputeMove(board *model.Board, inv rules.Inventory, timeLimit time.Duration) *model.Move {
	if timeLimit <= 0 {
		timeLimit = s.DefaultTimeout()
	}
	deadline := s.clock.Now().Add(timeLimit)

	moves := s.gen.LegalMoves(board, inv)
	if len(moves) == 0 {
		return nil
	}

	bestIdx := -1
	bestScore := 0
	for i, move := range moves {
		if !s.clock.Now().Before(deadline) {
			break
		}
		cells, ok := moveCells(inv, move)
		if !ok {
			continue
		}
		score := s.scorePlacement(board, move.Player, cells)
		if bestIdx < 0 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx < 0 {
		return &moves[0]
	}
	return &moves[bestIdx]
}

// scorePlacement simulates the placement on a copy of the board and scores
// the resulting position. Corner contacts are measured against the board
// before the placement, so only contacts the move creates count.
func (s *StrategicStrategy) scorePlacement(board *model.Board, player model.PlayerID, cells []model.Position) int {
	sim := board.Clone()
	sim.Place(cells, player)
	return sim.CellCount(player) +
		s.weights.CornerContact*cornerContacts(board, player, cells) +
		s.weights.Mobility*mobility(sim, player)
}

var _ Strategy = (*StrategicStrategy)(nil)
