package factory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/ai"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/sim"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
}

// Test: a single opponent turn driven through the wired services,
// applied to the board the way a host application would
func (s *IntegrationSuite) TestSingleTurnFlow() {
	board := model.NewStandardBoard()
	inventory := model.NewInventory(model.Player1)

	opponent, err := s.app.NewOpponent(ai.DifficultyMedium)
	s.Require().NoError(err)

	move := opponent.ComputeMove(board, inventory, 0)
	s.Require().NotNil(move)
	s.Require().True(s.app.RulesService.ValidateMove(board, inventory, *move).Valid)

	piece, ok := inventory.Piece(move.Piece)
	s.Require().True(ok)
	oriented, err := piece.Oriented(move.Rotation, move.Flip)
	s.Require().NoError(err)
	board.Place(oriented.Absolute(move.Anchor), move.Player)
	s.Require().NoError(inventory.MarkPlaced(move.Piece, move.Anchor))

	s.Equal(1, inventory.PlacedCount())
	s.Equal(board.CellCount(model.Player1), opponent.Strategy().EvaluateBoard(board, model.Player1))
	s.Equal(1, opponent.Diagnostics().Moves)
}

// Test: the easy opponent draws from the app-wide random source, so a
// queued value selects a known candidate
func (s *IntegrationSuite) TestEasyOpponentUsesSharedRandom() {
	board := model.NewStandardBoard()
	inventory := model.NewInventory(model.Player1)

	candidates := s.app.MovegenService.FastMoves(board, inventory, movegen.DefaultFastConfig())
	s.Require().NotEmpty(candidates)

	opponent, err := s.app.NewOpponent(ai.DifficultyEasy)
	s.Require().NoError(err)

	s.app.MockRandom.QueueIntn(0)
	move := opponent.ComputeMove(board, inventory, 0)
	s.Require().NotNil(move)
	s.Equal(candidates[0], *move)
}

// Test: a complete simulated game through the factory-wired runner
func (s *IntegrationSuite) TestSimulatedGameThroughFactory() {
	result, err := s.app.Runner.Run(sim.Config{BoardSize: 8, Seed: 9})
	s.Require().NoError(err)

	s.Positive(result.Placements)
	s.Equal(result.Turns, len(result.History))

	total := 0
	for _, score := range result.Scores {
		total += score
	}
	s.Equal(total, result.Board.CellCount(model.Player1)+
		result.Board.CellCount(model.Player2)+
		result.Board.CellCount(model.Player3)+
		result.Board.CellCount(model.Player4))

	s.Require().Len(result.Standings, 4)
	for _, standing := range result.Standings {
		s.Equal(result.Scores[standing.Player], standing.PlacedCells)
		s.Equal(standing.Bonus-standing.UnplacedCells, standing.Score)
	}
}

// Test: opponents can be built for every difficulty, and unknown
// difficulties are rejected
func (s *IntegrationSuite) TestNewOpponentPerDifficulty() {
	for _, difficulty := range ai.Difficulties() {
		opponent, err := s.app.NewOpponent(difficulty)
		s.Require().NoError(err, difficulty)
		s.Equal(difficulty, opponent.Strategy().Name())
	}

	_, err := s.app.NewOpponent("impossible")
	s.ErrorIs(err, model.ErrUnknownDifficulty)
}
