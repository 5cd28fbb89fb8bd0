package ai

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/tmorgal/blokus-go/internal/dependencies/clock"
	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// Controller states observable between and during calls
const (
	StateIdle        = "idle"
	StateCalculating = "calculating"
)

// Controller wraps a strategy with the guarantees the game loop needs: a
// panic or a bad result inside the strategy degrades to the first legal
// move instead of breaking the turn, and a nil result is returned only when
// the player genuinely has no legal move. One controller serves one player
// in one game and is not safe for concurrent calls.
type Controller struct {
	strategy Strategy
	gen      *movegen.Service
	clock    clock.Clock
	logger   *slog.Logger

	state string
	stats Diagnostics
}

// NewController creates a controller around a strategy
func NewController(
	strategy Strategy,
	gen *movegen.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		strategy: strategy,
		gen:      gen,
		clock:    clk,
		logger: logger.With(
			slog.String("component", "ai-controller"),
			slog.String("difficulty", strategy.Name()),
		),
		state: StateIdle,
	}
}

// Strategy returns the wrapped strategy
func (c *Controller) Strategy() Strategy {
	return c.strategy
}

// State reports idle or calculating
func (c *Controller) State() string {
	return c.state
}

// Diagnostics returns a copy of the rolling counters
func (c *Controller) Diagnostics() Diagnostics {
	out := c.stats
	out.Durations = append([]time.Duration(nil), c.stats.Durations...)
	return out
}

// ComputeMove runs the strategy under the effective time limit (the
// caller's, or the strategy default when the caller passes zero) and
// applies the fallback rules. Nil means the player must pass.
func (c *Controller) ComputeMove(board *model.Board, inv rules.Inventory, timeLimit time.Duration) *model.Move {
	effective := timeLimit
	if effective <= 0 {
		effective = c.strategy.DefaultTimeout()
	}

	c.state = StateCalculating
	start := c.clock.Now()
	move := c.runStrategy(board, inv, effective)
	elapsed := c.clock.Since(start)
	c.state = StateIdle

	c.stats.record(elapsed)
	if elapsed > effective {
		c.stats.Timeouts++
		c.logger.Warn("strategy overran its time limit",
			slog.Duration("elapsed", elapsed),
			slog.Duration("limit", effective))
	}

	switch {
	case move == nil:
		move = c.fallback(board, inv, "strategy returned no move")
	case !available(inv, move.Piece):
		c.logger.Warn("strategy proposed an unavailable piece",
			slog.String("piece", move.Piece),
			slog.Int("player", int(inv.Player())))
		move = c.fallback(board, inv, "move references an unavailable piece")
	}

	if move == nil {
		c.stats.Passes++
		c.logger.Info("no legal move, passing",
			slog.Int("player", int(inv.Player())))
		return nil
	}
	c.stats.Moves++
	return move
}

// runStrategy isolates the strategy call so a panic inside it lands on the
// fallback path instead of unwinding the game loop
func (c *Controller) runStrategy(board *model.Board, inv rules.Inventory, timeLimit time.Duration) (move *model.Move) {
	defer func() {
		if err := recover(); err != nil {
			c.logger.Error("panic recovered in strategy",
				slog.Any("error", err),
				slog.String("stack", string(debug.Stack())))
			move = nil
		}
	}()
	return c.strategy.ComputeMove(board, inv, timeLimit)
}

// fallback substitutes the first legal move. A nil return here is the true
// pass condition: the enumerator found nothing either.
func (c *Controller) fallback(board *model.Board, inv rules.Inventory, reason string) *model.Move {
	move := c.gen.FirstLegalMove(board, inv)
	if move != nil {
		c.stats.Fallbacks++
		c.logger.Info("falling back to first legal move",
			slog.String("reason", reason),
			slog.String("move", move.String()))
	}
	return move
}

// available reports whether the inventory still holds the piece unplaced
func available(inv rules.Inventory, name string) bool {
	piece, ok := inv.Piece(name)
	return ok && !piece.Placed
}
