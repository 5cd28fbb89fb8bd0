package scoring

import (
	"sort"

	"github.com/tmorgal/blokus-go/internal/model"
)

// Bonuses from the official rules: emptying the inventory is worth 15
// points, 5 more when the monomino went down last.
const (
	AllPiecesBonus    = 15
	MonominoLastBonus = 5
)

// monomino is the piece whose last placement earns the extra bonus
const monomino = "I1"

// PlayerScore is one player's final standing. Score follows the official
// convention: remaining cells count against the player, so totals are
// negative unless the inventory was emptied.
type PlayerScore struct {
	Player model.PlayerID
	// PlacedCells is the number of board squares the player's pieces cover
	PlacedCells int
	// UnplacedCells is the number of squares left in unplaced pieces
	UnplacedCells int
	// Bonus holds the all-pieces and monomino-last bonuses, if earned
	Bonus int
	// Score is Bonus minus UnplacedCells
	Score int
}

// Service computes final standings from player inventories. Placement is
// one-way, so the inventory alone determines the score; the board is not
// consulted.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ScorePlayer computes one player's standing from their inventory
func (s *Service) ScorePlayer(inv *model.Inventory) PlayerScore {
	result := PlayerScore{Player: inv.Player()}

	for _, shape := range model.Shapes() {
		piece, ok := inv.Piece(shape.Name)
		if !ok {
			continue
		}
		if piece.Placed {
			result.PlacedCells += piece.Size()
		} else {
			result.UnplacedCells += piece.Size()
		}
	}

	if result.UnplacedCells == 0 {
		result.Bonus = AllPiecesBonus
		if inv.LastPlaced() == monomino {
			result.Bonus += MonominoLastBonus
		}
	}
	result.Score = result.Bonus - result.UnplacedCells
	return result
}

// ScoreGame scores every inventory and returns the standings, best score
// first, ties ordered by player id
func (s *Service) ScoreGame(inventories []*model.Inventory) []PlayerScore {
	scores := make([]PlayerScore, 0, len(inventories))
	for _, inv := range inventories {
		scores = append(scores, s.ScorePlayer(inv))
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Player < scores[j].Player
	})
	return scores
}

// Winners returns every player sharing the top score, ascending by id.
// Shared wins are real in Blokus; ties are not broken further.
func (s *Service) Winners(scores []PlayerScore) []model.PlayerID {
	if len(scores) == 0 {
		return nil
	}

	top := scores[0].Score
	for _, score := range scores {
		if score.Score > top {
			top = score.Score
		}
	}

	var out []model.PlayerID
	for _, score := range scores {
		if score.Score == top {
			out = append(out, score.Player)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ServiceInterface captures the scoring surface collaborators consume
type ServiceInterface interface {
	ScorePlayer(inv *model.Inventory) PlayerScore
	ScoreGame(inventories []*model.Inventory) []PlayerScore
	Winners(scores []PlayerScore) []model.PlayerID
}

var _ ServiceInterface = (*Service)(nil)
