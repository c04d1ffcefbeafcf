package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Economy errors
	ErrInsufficientEnergy = errors.New("insufficient energy")

	// VIP errors
	ErrInvalidPlan = errors.New("unknown VIP plan")

	// Achievement errors
	ErrUnknownAchievement = errors.New("unknown achievement")
	ErrNotClaimable       = errors.New("achievement is not claimable")
	ErrAlreadyClaimed     = errors.New("achievement already claimed")

	// Wheel errors
	ErrInvalidWeight = errors.New("wheel segment weight must be positive")

	// Storage errors
	ErrVersionConflict = errors.New("player state was modified concurrently")
)
