package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tmorgal/blokus-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
	inv     *model.Inventory
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.board = model.NewStandardBoard()
	s.inv = model.NewInventory(model.Player1)
}

// Helper to place a piece onto the board and mark it in the inventory
func (s *ServiceSuite) place(inv *model.Inventory, name string, anchor model.Position) {
	piece, ok := inv.Piece(name)
	s.Require().True(ok, "piece %s", name)
	s.board.Place(piece.Absolute(anchor), inv.Player())
	s.Require().NoError(inv.MarkPlaced(name, anchor))
}

func (s *ServiceSuite) pieceFor(inv *model.Inventory, name string) model.Piece {
	piece, ok := inv.Piece(name)
	s.Require().True(ok, "piece %s", name)
	return piece
}

// First-move corner rule

func (s *ServiceSuite) TestFirstMoveMustCoverStartingCorner() {
	i2 := s.pieceFor(s.inv, "I2")

	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, i2, model.Position{Row: 0, Col: 0})
	s.True(result.Valid)
	s.Equal(model.RuleNone, result.Category)

	result = s.service.ValidatePlacement(s.board, s.inv, model.Player1, i2, model.Position{Row: 5, Col: 5})
	s.False(result.Valid)
	s.Equal(model.RuleCorner, result.Category)
	s.Contains(result.Detail, "corner")
}

func (s *ServiceSuite) TestFirstMoveCornersPerPlayer() {
	inv3 := model.NewInventory(model.Player3)
	i2 := s.pieceFor(inv3, "I2")

	// I2 occupies the anchor and the cell below it, so (18,19) covers (19,19).
	result := s.service.ValidatePlacement(s.board, inv3, model.Player3, i2, model.Position{Row: 18, Col: 19})
	s.True(result.Valid)

	result = s.service.ValidatePlacement(s.board, inv3, model.Player3, i2, model.Position{Row: 0, Col: 0})
	s.False(result.Valid)
	s.Equal(model.RuleCorner, result.Category)
}

// Later moves: edge adjacency and diagonal contact

func (s *ServiceSuite) TestOwnEdgeContactRejected() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})

	i1 := s.pieceFor(s.inv, "I1")
	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, i1, model.Position{Row: 0, Col: 1})
	s.False(result.Valid)
	s.Equal(model.RuleEdgeAdjacency, result.Category)
}

func (s *ServiceSuite) TestDiagonalContactAccepted() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})

	// V3 at (2,1) covers (2,1),(3,1),(3,2): corner to corner with (1,0),
	// no shared edge with player 1's cells.
	v3 := s.pieceFor(s.inv, "V3")
	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, v3, model.Position{Row: 2, Col: 1})
	s.True(result.Valid)
}

func (s *ServiceSuite) TestLaterMoveWithoutDiagonalContactRejected() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})

	i1 := s.pieceFor(s.inv, "I1")
	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, i1, model.Position{Row: 10, Col: 10})
	s.False(result.Valid)
	s.Equal(model.RuleDiagonalContact, result.Category)
	s.NotEmpty(result.Detail)
}

func (s *ServiceSuite) TestOpponentEdgeContactAllowed() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})
	s.board.Set(model.Position{Row: 3, Col: 1}, model.Player2)

	// (2,1) shares an edge with player 2's cell and only a corner with
	// player 1's own cell at (1,0).
	i1 := s.pieceFor(s.inv, "I1")
	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, i1, model.Position{Row: 2, Col: 1})
	s.True(result.Valid)
}

// Bounds and overlap

func (s *ServiceSuite) TestOutOfBoundsRejected() {
	i2 := s.pieceFor(s.inv, "I2")

	// Anchor inside, second cell at row 20.
	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, i2, model.Position{Row: 19, Col: 0})
	s.False(result.Valid)
	s.Equal(model.RuleBounds, result.Category)

	result = s.service.ValidatePlacement(s.board, s.inv, model.Player1, i2, model.Position{Row: -1, Col: 0})
	s.False(result.Valid)
	s.Equal(model.RuleBounds, result.Category)
}

func (s *ServiceSuite) TestOverlapRejected() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})

	i1 := s.pieceFor(s.inv, "I1")
	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, i1, model.Position{Row: 0, Col: 0})
	s.False(result.Valid)
	// Overlap outranks the edge-adjacency and contact rules in check order.
	s.Equal(model.RuleOverlap, result.Category)
}

// Ownership

func (s *ServiceSuite) TestUnknownPlayerRejected() {
	i1 := s.pieceFor(s.inv, "I1")

	result := s.service.ValidatePlacement(s.board, s.inv, model.NoPlayer, i1, model.Position{Row: 0, Col: 0})
	s.False(result.Valid)
	s.Equal(model.RuleOwnership, result.Category)

	result = s.service.ValidatePlacement(s.board, s.inv, model.PlayerID(9), i1, model.Position{Row: 0, Col: 0})
	s.False(result.Valid)
	s.Equal(model.RuleOwnership, result.Category)
}

func (s *ServiceSuite) TestWrongInventoryRejected() {
	inv2 := model.NewInventory(model.Player2)
	i1 := s.pieceFor(inv2, "I1")

	result := s.service.ValidatePlacement(s.board, inv2, model.Player1, i1, model.Position{Row: 0, Col: 0})
	s.False(result.Valid)
	s.Equal(model.RuleOwnership, result.Category)
}

func (s *ServiceSuite) TestAlreadyPlacedPieceRejected() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})

	i2 := s.pieceFor(s.inv, "I2")
	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, i2, model.Position{Row: 5, Col: 5})
	s.False(result.Valid)
	s.Equal(model.RuleOwnership, result.Category)
	s.Contains(result.Detail, "already")
}

func (s *ServiceSuite) TestUnknownPieceRejected() {
	ghost := model.Piece{Shape: model.Shape{Name: "Q9", Cells: []model.Position{{Row: 0, Col: 0}}}, Owner: model.Player1}

	result := s.service.ValidatePlacement(s.board, s.inv, model.Player1, ghost, model.Position{Row: 0, Col: 0})
	s.False(result.Valid)
	s.Equal(model.RuleOwnership, result.Category)
}

// ValidateMove

func (s *ServiceSuite) TestValidateMove() {
	move := model.NewMove(model.Player1, "I2", model.Position{Row: 0, Col: 0}, 0, false)
	s.True(s.service.ValidateMove(s.board, s.inv, move).Valid)

	pass := model.PassMove(model.Player1)
	result := s.service.ValidateMove(s.board, s.inv, pass)
	s.False(result.Valid)
	s.Equal(model.RuleOwnership, result.Category)

	badRotation := model.NewMove(model.Player1, "I2", model.Position{Row: 0, Col: 0}, 45, false)
	result = s.service.ValidateMove(s.board, s.inv, badRotation)
	s.False(result.Valid)
	s.Equal(model.RuleOwnership, result.Category)
}

func (s *ServiceSuite) TestValidateMoveAppliesOrientation() {
	// I2 rotated 90 degrees lies horizontal, cells (0,0),(0,1), so the
	// anchor itself must sit on the starting corner.
	move := model.NewMove(model.Player1, "I2", model.Position{Row: 0, Col: 0}, 90, false)
	s.True(s.service.ValidateMove(s.board, s.inv, move).Valid)

	shifted := model.NewMove(model.Player1, "I2", model.Position{Row: 0, Col: 1}, 90, false)
	result := s.service.ValidateMove(s.board, s.inv, shifted)
	s.False(result.Valid)
	s.Equal(model.RuleCorner, result.Category)
}

// Purity and determinism

func (s *ServiceSuite) TestValidationIsPure() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})
	v3 := s.pieceFor(s.inv, "V3")
	anchor := model.Position{Row: 2, Col: 1}

	before := s.board.Clone()
	first := s.service.ValidatePlacement(s.board, s.inv, model.Player1, v3, anchor)
	second := s.service.ValidatePlacement(s.board, s.inv, model.Player1, v3, anchor)

	s.Equal(first, second)
	s.Equal(before.OccupiedPositions(), s.board.OccupiedPositions())
	s.Equal(1, s.inv.PlacedCount())
}

// Bulk anchor scans

func (s *ServiceSuite) TestValidAnchorsOnEmptyBoard() {
	i1 := s.pieceFor(s.inv, "I1")
	anchors := s.service.ValidAnchors(s.board, s.inv, model.Player1, i1)
	s.Equal([]model.Position{{Row: 0, Col: 0}}, anchors)

	inv3 := model.NewInventory(model.Player3)
	v3 := s.pieceFor(inv3, "V3")
	anchors = s.service.ValidAnchors(s.board, inv3, model.Player3, v3)
	s.Equal([]model.Position{{Row: 18, Col: 18}}, anchors)
}

func (s *ServiceSuite) TestAnchorScansAgree() {
	s.place(s.inv, "I2", model.Position{Row: 0, Col: 0})
	v3 := s.pieceFor(s.inv, "V3")

	valid := s.service.ValidAnchors(s.board, s.inv, model.Player1, v3)
	invalid := s.service.InvalidAnchors(s.board, s.inv, model.Player1, v3)

	size := s.board.Size()
	s.Len(invalid, size*size-len(valid))

	for _, anchor := range valid {
		s.True(s.service.ValidatePlacement(s.board, s.inv, model.Player1, v3, anchor).Valid)
		_, clash := invalid[anchor]
		s.False(clash, "anchor %v in both scans", anchor)
	}
	for anchor, result := range invalid {
		s.False(result.Valid)
		s.NotEmpty(result.Detail, "anchor %v", anchor)
		recheck := s.service.ValidatePlacement(s.board, s.inv, model.Player1, v3, anchor)
		s.Equal(result, recheck)
	}
}
