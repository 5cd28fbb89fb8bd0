package ai

import (
	"fmt"
	"time"

	"github.com/tmorgal/blokus-go/internal/dependencies/clock"
	"github.com/tmorgal/blokus-go/internal/dependencies/random"
	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// Difficulty names accepted by NewStrategy
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Per-move budgets applied when the caller supplies no limit
const (
	easyTimeout   = 3 * time.Second
	mediumTimeout = 5 * time.Second
	hardTimeout   = 8 * time.Second
)

// Strategy defines how an opponent picks its next move. Implementations own
// private mutable state (caches, counters) and are not safe for concurrent
// calls; dedicate one instance per active player.
type Strategy interface {
	// Name returns the difficulty name the strategy plays at
	Name() string
	// DefaultTimeout is the per-move budget used when the caller
	// supplies none
	DefaultTimeout() time.Duration
	// ComputeMove picks a move for the inventory's player, or nil to
	// pass. A zero or negative timeLimit means DefaultTimeout.
	ComputeMove(board *model.Board, inv rules.Inventory, timeLimit time.Duration) *model.Move
	// EvaluateBoard scores a position for a player
	EvaluateBoard(board *model.Board, player model.PlayerID) int
}

// Difficulties lists the accepted difficulty names, easiest first
func Difficulties() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// NewStrategy returns a fresh strategy instance for a difficulty name
func NewStrategy(
	difficulty string,
	gen *movegen.Service,
	clk clock.Clock,
	rnd random.Random,
) (Strategy, error) {
	switch difficulty {
	case DifficultyEasy:
		return NewRandomStrategy(gen, rnd), nil
	case DifficultyMedium:
		return NewCornerStrategy(gen, DefaultCornerWeights()), nil
	case DifficultyHard:
		return NewStrategicStrategy(gen, clk, DefaultStrategicWeights()), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownDifficulty, difficulty)
	}
}

// boardEvaluator supplies the position score shared by every tier: the
// count of cells the player owns.
type boardEvaluator struct{}

// EvaluateBoard scores a position for a player
func (boardEvaluator) EvaluateBoard(board *model.Board, player model.PlayerID) int {
	return board.CellCount(player)
}
