package ai

import (
	"time"

	"github.com/tmorgal/blokus-go/internal/dependencies/random"
	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/movegen"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// RandomStrategy is the easy tier: it draws uniformly from the sampled
// candidate list. The sample skips the contact rules, so a proposal may be
// illegal; the controller and game loop validate before applying. Candidate
// lists are cached per board fingerprint to keep repeated positions cheap.
type RandomStrategy struct {
	boardEvaluator
	gen    *movegen.Service
	random random.Random
	cfg    movegen.FastConfig
	cache  *candidateCache
}

// NewRandomStrategy creates a new easy-tier strategy
func NewRandomStrategy(gen *movegen.Service, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{
		gen:    gen,
		random: rnd,
		cfg:    movegen.DefaultFastConfig(),
		cache:  newCandidateCache(DefaultCacheSize),
	}
}

// Name returns the difficulty name
func (s *RandomStrategy) Name() string {
	return DifficultyEasy
}

// DefaultTimeout is the easy tier's per-move budget
func (s *RandomStrategy) DefaultTimeout() time.Duration {
	return easyTimeout
}

// ComputeMove draws a uniform candidate from the fast enumeration, reusing
// a cached candidate list when the position fingerprint matches. Nil means
// the sample found nothing at all.
func (s *RandomStrategy) ComputeMove(board *model.Board, inv rules.Inventory, _ time.Duration) *model.Move {
	key := fingerprint(board, inv)
	candidates, ok := s.cache.get(key)
	if !ok {
		candidates = s.gen.FastMoves(board, inv, s.cfg)
		s.cache.put(key, candidates)
	}
	if len(candidates) == 0 {
		return nil
	}
	move := candidates[s.random.Intn(len(candidates))]
	return &move
}

var _ Strategy = (*RandomStrategy)(nil)
