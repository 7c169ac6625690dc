package game

import "errors"

// Participant action validation failures. Validation always happens before
// any mutation, so a returned error means balances and hands are unchanged.
var (
	ErrInvalidBet          = errors.New("bet amount must be greater than zero")
	ErrInsufficientBalance = errors.New("bet amount exceeds available balance")
	ErrNotSplittable       = errors.New("hand must have exactly two cards of the same rank to split")
	ErrNotDoubleable       = errors.New("cannot double down unless the active hand has exactly two cards")
)
