package factory

import (
	"io"
	"log/slog"

	"github.com/tmorgal/blokus-go/internal/dependencies/clock"
	"github.com/tmorgal/blokus-go/internal/dependencies/random"
	"github.com/tmorgal/blokus-go/internal/services/ai"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/services/rules"
	"github.com/tmorgal/blokus-go/internal/services/scoring"
	"github.com/tmorgal/blokus-go/internal/sim"
)

// App contains all wired engine components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RulesService   *rules.Service
	MovegenService *movegen.Service
	ScoringService *scoring.Service
	Runner         *sim.Runner

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed fixes the shared random source for reproducible output
	// (optional). 0 keeps the time-seeded default.
	Seed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()
	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	return newWithDependencies(clk, rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	rulesService := rules.New()
	movegenService := movegen.New(rulesService)
	scoringService := scoring.New()
	runner := sim.NewRunner(rulesService, movegenService, scoringService, clk, logger)

	return &App{
		Clock:          clk,
		Random:         rnd,
		RulesService:   rulesService,
		MovegenService: movegenService,
		ScoringService: scoringService,
		Runner:         runner,
		logger:         logger,
	}
}

// NewOpponent builds a controller with a dedicated strategy instance for
// one player. Strategy state is private per instance, so each concurrently
// active player needs its own opponent.
func (a *App) NewOpponent(difficulty string) (*ai.Controller, error) {
	strategy, err := ai.NewStrategy(difficulty, a.MovegenService, a.Clock, a.Random)
	if err != nil {
		return nil, err
	}
	return ai.NewController(strategy, a.MovegenService, a.Clock, a.logger), nil
}
