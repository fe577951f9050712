package model

import "time"

// CodeLength is the number of symbols in a daily code
const CodeLength = 4

// DailyPuzzle is the puzzle for a single calendar date. The solution is
// generated exactly once per date and never mutated afterwards; the aggregate
// counters are updated by each submission.
type DailyPuzzle struct {
	Date       Date  `json:"date"`
	Solution   []int `json:"solution"`
	Duplicates bool  `json:"duplicates"`

	// Aggregates, maintained incrementally by the submission processor.
	// TotalPlayers is monotonic non-decreasing; CompletedPlayers <= TotalPlayers.
	TotalPlayers     int     `json:"total_players"`
	CompletedPlayers int     `json:"completed_players"`
	TotalGuesses     int     `json:"total_guesses"`
	AverageGuesses   float64 `json:"average_guesses"`

	// FastestTime is the minimum winning time in milliseconds, 0 when no
	// player has completed the puzzle yet.
	FastestTime   int      `json:"fastest_time,omitempty"`
	FastestPlayer PlayerID `json:"fastest_player,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewDailyPuzzle creates a puzzle with zeroed aggregates
func NewDailyPuzzle(date Date, solution []int, duplicates bool, now time.Time) *DailyPuzzle {
	return &DailyPuzzle{
		Date:       date,
		Solution:   solution,
		Duplicates: duplicates,
		CreatedAt:  now,
	}
}

// RecordPlay updates the aggregate counters for one finished game.
// Order matters: AverageGuesses is recomputed from the updated totals.
func (p *DailyPuzzle) RecordPlay(playerID PlayerID, won bool, guesses, timeMs int) {
	p.TotalPlayers++
	if !won {
		return
	}

	p.CompletedPlayers++
	p.TotalGuesses += guesses
	p.AverageGuesses = float64(p.TotalGuesses) / float64(p.CompletedPlayers)

	if p.FastestTime == 0 || timeMs < p.FastestTime {
		p.FastestTime = timeMs
		p.FastestPlayer = playerID
	}
}
