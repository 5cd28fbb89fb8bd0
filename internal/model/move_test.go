package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMove(t *testing.T) {
	m := NewMove(Player2, "L4", Position{Row: 3, Col: 4}, 90, true)
	assert.Equal(t, Player2, m.Player)
	assert.Equal(t, "L4", m.Piece)
	assert.Equal(t, 90, m.Rotation)
	assert.True(t, m.Flip)
	assert.False(t, m.IsPass())
}

func TestPassMove(t *testing.T) {
	m := PassMove(Player3)
	assert.True(t, m.IsPass())
	assert.Equal(t, Player3, m.Player)
	assert.Contains(t, m.String(), "pass")
}

func TestRuleCategoryString(t *testing.T) {
	assert.Equal(t, "none", RuleNone.String())
	assert.Equal(t, "ownership", RuleOwnership.String())
	assert.Equal(t, "bounds", RuleBounds.String())
	assert.Equal(t, "overlap", RuleOverlap.String())
	assert.Equal(t, "edge adjacency", RuleEdgeAdjacency.String())
	assert.Equal(t, "starting corner", RuleCorner.String())
	assert.Equal(t, "diagonal contact", RuleDiagonalContact.String())
	assert.Equal(t, "unknown", RuleCategory(99).String())
}

func TestValidationResults(t *testing.T) {
	ok := ValidResult()
	assert.True(t, ok.Valid)
	assert.Equal(t, RuleNone, ok.Category)

	bad := InvalidResult(RuleOverlap, "cell (3,4) is occupied")
	assert.False(t, bad.Valid)
	assert.Equal(t, RuleOverlap, bad.Category)
	assert.Equal(t, "cell (3,4) is occupied", bad.Detail)
}
