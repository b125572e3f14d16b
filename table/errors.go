package table

import "errors"

// Rule and misuse errors reported by table operations. All are synchronous
// and non-retryable; a rejected operation leaves the table unchanged.
// Callers test with errors.Is.
var (
	// ErrOutOfTurn is returned when an action is invoked by a player other
	// than the current actor.
	ErrOutOfTurn = errors.New("action invoked on player out of turn")

	// ErrIllegalAction is returned when the action is not in the actor's
	// legal-action set.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInvalidAmount is returned when an amount is missing or not a
	// valid number.
	ErrInvalidAmount = errors.New("amount is not a valid number")

	// ErrBelowMinimum is returned for a bet below the big blind or a raise
	// below the current minimum raise, when the player is not all-in.
	ErrBelowMinimum = errors.New("amount below minimum")

	// ErrExceedsStack is returned when an amount exceeds the player's stack.
	ErrExceedsStack = errors.New("amount exceeds stack")

	// ErrSeatUnavailable is returned when the table is full or the
	// requested seat is occupied.
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrDuplicatePlayer is returned when the id is already seated.
	ErrDuplicatePlayer = errors.New("player already joined this table")

	// ErrInsufficientPlayers is returned when fewer than two active players
	// are present at deal time.
	ErrInsufficientPlayers = errors.New("not enough players")

	// ErrActiveHand is returned for operations invalid while a hand is in
	// progress, such as dealing mid-hand.
	ErrActiveHand = errors.New("hand already in progress")

	// ErrPlayerNotFound is returned when an operation references an
	// unseated id.
	ErrPlayerNotFound = errors.New("no player found")
)
