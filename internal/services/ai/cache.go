package ai

import (
	"fmt"
	"strings"

	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/rules"
)

// DefaultCacheSize bounds the easy tier's candidate cache
const DefaultCacheSize = 64

// fingerprintStride controls how coarsely the board is sampled into the
// cache key. The key is deliberately lossy; a collision only reuses a
// slightly stale candidate list, which the easy tier tolerates.
const fingerprintStride = 4

// fingerprint builds the cache key from a strided sample of board cells,
// the player id and the player's unplaced piece names
func fingerprint(board *model.Board, inv rules.Inventory) string {
	size := board.Size()
	var b strings.Builder
	b.Grow(size*size/(fingerprintStride*fingerprintStride) + 128)

	fmt.Fprintf(&b, "p%d:", inv.Player())
	for row := 0; row < size; row += fingerprintStride {
		for col := 0; col < size; col += fingerprintStride {
			b.WriteByte('0' + byte(board.At(model.Position{Row: row, Col: col})))
		}
	}
	b.WriteByte(':')
	for _, piece := range inv.UnplacedPieces() {
		b.WriteString(piece.Name())
		b.WriteByte(',')
	}
	return b.String()
}

// candidateCache is a bounded, insertion-ordered map of board fingerprint
// to candidate list. When the bound is reached it evicts the oldest quarter
// of its entries. Not safe for concurrent use; each strategy instance owns
// its own.
type candidateCache struct {
	maxEntries int
	entries    map[string][]model.Move
	order      []string // insertion order, oldest first
}

func newCandidateCache(maxEntries int) *candidateCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &candidateCache{
		maxEntries: maxEntries,
		entries:    make(map[string][]model.Move, maxEntries),
	}
}

func (c *candidateCache) get(key string) ([]model.Move, bool) {
	moves, ok := c.entries[key]
	return moves, ok
}

func (c *candidateCache) put(key string, moves []model.Move) {
	if _, exists := c.entries[key]; exists {
		c.entries[key] = moves
		return
	}
	if len(c.order) >= c.maxEntries {
		c.evictOldest()
	}
	c.entries[key] = moves
	c.order = append(c.order, key)
}

// evictOldest drops the oldest quarter of the entries, at least one
func (c *candidateCache) evictOldest() {
	n := len(c.order) / 4
	if n < 1 {
		n = 1
	}
	for _, key := range c.order[:n] {
		delete(c.entries, key)
	}
	c.order = append(c.order[:0:0], c.order[n:]...)
}

func (c *candidateCache) len() int {
	return len(c.entries)
}
