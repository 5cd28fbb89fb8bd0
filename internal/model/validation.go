package model

// RuleCategory tags the rule a candidate placement violated, so callers can
// branch on category instead of inspecting the detail text
type RuleCategory uint8

const (
	// RuleNone marks a valid result
	RuleNone RuleCategory = iota
	// RuleOwnership covers unknown players, unowned pieces and pieces
	// already placed
	RuleOwnership
	// RuleBounds fires when any cell falls outside the board
	RuleBounds
	// RuleOverlap fires when any cell is already occupied
	RuleOverlap
	// RuleEdgeAdjacency fires when any cell shares an edge with the same
	// player's existing cells
	RuleEdgeAdjacency
	// RuleCorner fires when a first move misses the starting corner
	RuleCorner
	// RuleDiagonalContact fires when a later move touches no own corner
	RuleDiagonalContact
)

func (c RuleCategory) String() string {
	switch c {
	case RuleNone:
		return "none"
	case RuleOwnership:
		return "ownership"
	case RuleBounds:
		return "bounds"
	case RuleOverlap:
		return "overlap"
	case RuleEdgeAdjacency:
		return "edge adjacency"
	case RuleCorner:
		return "starting corner"
	case RuleDiagonalContact:
		return "diagonal contact"
	default:
		return "unknown"
	}
}

// ValidationResult is the outcome of checking one candidate placement.
// Detail carries display text; Category is the stable branching signal.
type ValidationResult struct {
	Valid    bool
	Category RuleCategory
	Detail   string
}

// ValidResult returns the single valid outcome
func ValidResult() ValidationResult {
	return ValidationResult{Valid: true, Category: RuleNone}
}

// InvalidResult returns an invalid outcome tagged with the failed rule
func InvalidResult(category RuleCategory, detail string) ValidationResult {
	return ValidationResult{Valid: false, Category: category, Detail: detail}
}
