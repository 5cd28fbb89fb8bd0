package model

import "errors"

// Common errors used across the engine. Rule violations are not errors;
// they surface as ValidationResult values. These sentinels cover API misuse
// and state-machine violations.
var (
	// Shape errors
	ErrInvalidRotation = errors.New("rotation must be 90, 180 or 270 degrees")

	// Inventory errors
	ErrPieceNotFound = errors.New("piece not found in inventory")
	ErrAlreadyPlaced = errors.New("piece has already been placed")

	// Strategy errors
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
