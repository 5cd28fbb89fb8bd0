package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tmorgal/blokus-go/internal/dependencies/clock"
	"github.com/tmorgal/blokus-go/internal/dependencies/random"
	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/ai"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/services/rules"
	"github.com/tmorgal/blokus-go/internal/services/scoring"
)

var (
	// ErrDifficultyCount is returned when the config names difficulties
	// for anything other than all four seats
	ErrDifficultyCount = errors.New("exactly four difficulties required")
)

// seats is the fixed turn order
var seats = [4]model.PlayerID{model.Player1, model.Player2, model.Player3, model.Player4}

// Config controls one simulated game
type Config struct {
	// BoardSize is the board edge length. 0 means the standard 20.
	BoardSize int
	// Difficulties maps seats in player order. Empty means all easy.
	Difficulties []string
	// TimeLimit is the per-move budget. 0 means each strategy's default.
	TimeLimit time.Duration
	// MaxTurns guards against a loop that never finishes. 0 means the
	// default guard.
	MaxTurns int
	// Seed makes the run reproducible. 0 draws a fresh seed per player.
	Seed uint64
}

// DefaultMaxTurns bounds a game's turn loop. Four players can place at
// most 84 pieces, so the guard only fires on a bug.
const DefaultMaxTurns = 200

// Result summarizes one finished game
type Result struct {
	// Board is the final position
	Board *model.Board
	// Turns counts played turns, passes included
	Turns int
	// Placements counts moves applied to the board
	Placements int
	// Substitutions counts proposals that failed validation and were
	// replaced by the first legal move
	Substitutions int
	// Scores is each player's final count of cells on the board
	Scores map[model.PlayerID]int
	// Standings holds the official final scores with penalties and
	// bonuses applied, best first
	Standings []scoring.PlayerScore
	// Winners holds the top scorer(s), ascending by player id
	Winners []model.PlayerID
	// History records applied moves and passes in play order
	History []model.Move
	// Diagnostics carries each seat's controller counters
	Diagnostics map[model.PlayerID]ai.Diagnostics
}

// Runner plays complete games between four engine opponents. The runner
// itself is stateless between games; every Run builds fresh controllers,
// so independent runs may execute in parallel.
type Runner struct {
	rules   *rules.Service
	gen     *movegen.Service
	scoring *scoring.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// NewRunner creates a game runner
func NewRunner(
	rul *rules.Service,
	gen *movegen.Service,
	scr *scoring.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		rules:   rul,
		gen:     gen,
		scoring: scr,
		clock:   clk,
		logger:  logger.With(slog.String("component", "sim-runner")),
	}
}

// Run plays one game to completion. Players act in seat order; a player
// with no legal move passes and is out for the rest of the game. The game
// ends when every seat has passed.
func (r *Runner) Run(cfg Config) (*Result, error) {
	size := cfg.BoardSize
	if size <= 0 {
		size = model.BoardSize
	}
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	controllers, err := r.buildControllers(cfg)
	if err != nil {
		return nil, err
	}

	board := model.NewBoard(size)
	inventories := make(map[model.PlayerID]*model.Inventory, len(seats))
	for _, player := range seats {
		inventories[player] = model.NewInventory(player)
	}

	result := &Result{
		Scores:      make(map[model.PlayerID]int, len(seats)),
		Diagnostics: make(map[model.PlayerID]ai.Diagnostics, len(seats)),
	}
	passed := make(map[model.PlayerID]bool, len(seats))

	seat := 0
	for len(passed) < len(seats) {
		if result.Turns >= maxTurns {
			r.logger.Warn("turn guard reached, ending game early",
				slog.Int("max_turns", maxTurns))
			break
		}
		player := seats[seat%len(seats)]
		seat++
		if passed[player] {
			continue
		}
		result.Turns++

		inv := inventories[player]
		move := controllers[player].ComputeMove(board, inv, cfg.TimeLimit)
		if move == nil {
			passed[player] = true
			result.History = append(result.History, model.PassMove(player))
			r.logger.Debug("player passes",
				slog.Int("player", int(player)),
				slog.Int("turn", result.Turns))
			continue
		}

		if verdict := r.rules.ValidateMove(board, inv, *move); !verdict.Valid {
			// The easy tier samples past the contact rules, so its
			// proposals can be illegal. Swap in the first legal move.
			r.logger.Debug("substituting illegal proposal",
				slog.Int("player", int(player)),
				slog.String("proposal", move.String()),
				slog.String("rule", verdict.Category.String()))
			result.Substitutions++
			move = r.gen.FirstLegalMove(board, inv)
			if move == nil {
				passed[player] = true
				result.History = append(result.History, model.PassMove(player))
				continue
			}
		}

		if err := Apply(board, inv, *move); err != nil {
			return nil, fmt.Errorf("applying move %s: %w", move, err)
		}
		result.Placements++
		result.History = append(result.History, *move)
		r.logger.Debug("move applied",
			slog.Int("player", int(player)),
			slog.String("move", move.String()))
	}

	result.Board = board
	ordered := make([]*model.Inventory, 0, len(seats))
	for _, player := range seats {
		result.Scores[player] = board.CellCount(player)
		result.Diagnostics[player] = controllers[player].Diagnostics()
		ordered = append(ordered, inventories[player])
	}
	result.Standings = r.scoring.ScoreGame(ordered)
	result.Winners = r.scoring.Winners(result.Standings)

	r.logger.Info("game finished",
		slog.Int("turns", result.Turns),
		slog.Int("placements", result.Placements),
		slog.Int("substitutions", result.Substitutions),
		slog.Any("scores", result.Scores))
	return result, nil
}

// RunMany plays n independent games, at most parallelism at a time, and
// returns their results. Each game gets its own controllers and a distinct
// seed derived from the configured one.
func (r *Runner) RunMany(ctx context.Context, cfg Config, n, parallelism int) ([]*Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	var mu sync.Mutex
	results := make([]*Result, 0, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := 0; i < n; i++ {
		gameCfg := cfg
		if cfg.Seed != 0 {
			gameCfg.Seed = cfg.Seed + uint64(i)*uint64(len(seats))
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.Run(gameCfg)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// buildControllers creates one controller per seat from the configured
// difficulties
func (r *Runner) buildControllers(cfg Config) (map[model.PlayerID]*ai.Controller, error) {
	difficulties := cfg.Difficulties
	if len(difficulties) == 0 {
		difficulties = []string{ai.DifficultyEasy, ai.DifficultyEasy, ai.DifficultyEasy, ai.DifficultyEasy}
	}
	if len(difficulties) != len(seats) {
		return nil, fmt.Errorf("%w: got %d", ErrDifficultyCount, len(difficulties))
	}

	controllers := make(map[model.PlayerID]*ai.Controller, len(seats))
	for i, player := range seats {
		var rnd random.Random
		if cfg.Seed != 0 {
			rnd = random.NewSeeded(cfg.Seed + uint64(player))
		} else {
			rnd = random.New()
		}
		strategy, err := ai.NewStrategy(difficulties[i], r.gen, r.clock, rnd)
		if err != nil {
			return nil, err
		}
		controllers[player] = ai.NewController(strategy, r.gen, r.clock,
			r.logger.With(slog.Int("player", int(player))))
	}
	return controllers, nil
}

// Apply writes a move onto the board and inventory. The caller is expected
// to have validated it; Apply only refuses moves the inventory cannot
// represent at all.
func Apply(board *model.Board, inv *model.Inventory, move model.Move) error {
	piece, ok := inv.Piece(move.Piece)
	if !ok {
		return model.ErrPieceNotFound
	}
	oriented, err := piece.Oriented(move.Rotation, move.Flip)
	if err != nil {
		return err
	}
	board.Place(oriented.Absolute(move.Anchor), move.Player)
	return inv.MarkPlaced(move.Piece, move.Anchor)
}
