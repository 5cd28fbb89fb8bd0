package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tmorgal/blokus-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// Helper to mark pieces placed; anchors are irrelevant to scoring
func (s *ServiceSuite) place(inv *model.Inventory, names ...string) {
	for _, name := range names {
		s.Require().NoError(inv.MarkPlaced(name, model.Position{}))
	}
}

// Helper to empty an inventory, finishing with the given piece
func (s *ServiceSuite) emptyInventory(inv *model.Inventory, last string) {
	for _, piece := range inv.UnplacedPieces() {
		if piece.Name() == last {
			continue
		}
		s.place(inv, piece.Name())
	}
	s.place(inv, last)
}

func (s *ServiceSuite) TestScoreFreshInventory() {
	inv := model.NewInventory(model.Player1)

	score := s.service.ScorePlayer(inv)

	s.Equal(model.Player1, score.Player)
	s.Equal(0, score.PlacedCells)
	s.Equal(89, score.UnplacedCells)
	s.Equal(0, score.Bonus)
	s.Equal(-89, score.Score)
}

func (s *ServiceSuite) TestScoreCountsPlacedCells() {
	inv := model.NewInventory(model.Player2)
	s.place(inv, "I2", "V3", "F5")

	score := s.service.ScorePlayer(inv)

	s.Equal(10, score.PlacedCells)
	s.Equal(79, score.UnplacedCells)
	s.Equal(0, score.Bonus)
	s.Equal(-79, score.Score)
}

func (s *ServiceSuite) TestAllPiecesBonus() {
	inv := model.NewInventory(model.Player1)
	s.emptyInventory(inv, "V5")

	score := s.service.ScorePlayer(inv)

	s.Equal(89, score.PlacedCells)
	s.Equal(0, score.UnplacedCells)
	s.Equal(AllPiecesBonus, score.Bonus)
	s.Equal(15, score.Score)
}

func (s *ServiceSuite) TestMonominoLastBonus() {
	inv := model.NewInventory(model.Player1)
	s.emptyInventory(inv, "I1")

	score := s.service.ScorePlayer(inv)

	s.Equal(AllPiecesBonus+MonominoLastBonus, score.Bonus)
	s.Equal(20, score.Score)
}

func (s *ServiceSuite) TestMonominoBonusNeedsEmptyInventory() {
	// I1 placed last so far, but pieces remain: no bonus of any kind.
	inv := model.NewInventory(model.Player1)
	s.place(inv, "X5", "I1")

	score := s.service.ScorePlayer(inv)

	s.Equal(0, score.Bonus)
	s.Equal(-83, score.Score)
}

func (s *ServiceSuite) TestScoreGameSortsBestFirst() {
	inv1 := model.NewInventory(model.Player1)
	inv2 := model.NewInventory(model.Player2)
	inv3 := model.NewInventory(model.Player3)
	inv4 := model.NewInventory(model.Player4)
	s.place(inv1, "I1")          // -88
	s.place(inv2, "X5", "W5")    // -79
	s.emptyInventory(inv3, "T4") // +15
	s.place(inv4, "I5", "L5")    // -79, ties with player 2

	scores := s.service.ScoreGame([]*model.Inventory{inv1, inv2, inv3, inv4})

	s.Require().Len(scores, 4)
	s.Equal(model.Player3, scores[0].Player)
	s.Equal(15, scores[0].Score)
	// Equal scores order by player id.
	s.Equal(model.Player2, scores[1].Player)
	s.Equal(model.Player4, scores[2].Player)
	s.Equal(model.Player1, scores[3].Player)
}

func (s *ServiceSuite) TestWinnersSharesTies() {
	inv1 := model.NewInventory(model.Player1)
	inv2 := model.NewInventory(model.Player2)
	s.place(inv1, "P5")
	s.place(inv2, "N5")

	scores := s.service.ScoreGame([]*model.Inventory{inv1, inv2})
	winners := s.service.Winners(scores)

	s.Equal([]model.PlayerID{model.Player1, model.Player2}, winners)

	s.Nil(s.service.Winners(nil))
}
