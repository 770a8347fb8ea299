package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Catalog errors
	ErrMsgCardNotFound = "card not found"
	ErrMsgEmptyTier    = "no cards in rarity tier"

	// Daily bonus errors
	ErrMsgAlreadyClaimed    = "daily bonus already claimed"
	ErrMsgInvalidRewardKind = "invalid reward kind"

	// Cooldown errors
	ErrMsgOnCooldown = "draw on cooldown"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrCardNotFound = errors.New(ErrMsgCardNotFound)

	// ErrEmptyTier marks a rarity tier with zero cards. It indicates a
	// catalog data bug, not a transient condition; callers must not retry.
	ErrEmptyTier = errors.New(ErrMsgEmptyTier)

	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	ErrInvalidRewardKind = errors.New(ErrMsgInvalidRewardKind)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ErrOnCooldown is returned when a draw is denied: the cooldown has not
// elapsed and no extra-draw credit was available. It is an expected,
// user-facing outcome rather than a failure.
type ErrOnCooldown struct {
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % 60
	return fmt.Sprintf("%s: %dh %dm remaining", ErrMsgOnCooldown, hours, minutes)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}
