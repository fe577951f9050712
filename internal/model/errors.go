package model

import "errors"

// Common errors used across the application
var (
	// Puzzle errors
	ErrPuzzleNotFound = errors.New("puzzle not found")

	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrAlreadyPlayed       = errors.New("game already submitted for this date")
	ErrCredentialsNotFound = errors.New("credentials not found")

	// Leaderboard errors
	ErrBoardNotFound    = errors.New("leaderboard not found")
	ErrInvalidBoardKind = errors.New("invalid leaderboard kind")

	// Input errors
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
